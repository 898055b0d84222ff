package core

// rotateRaw relinks top and bottom, where bottom is top's child on
// side heavy, without touching either node's balance factor. This is
// the pointer-only half of a single rotation; teardown uses it
// directly since balance factors are meaningless once a subtree is
// being torn down node by node.
func rotateRaw(heavy Dir, top, bottom Handle) Handle {
	light := heavy.Opposite()
	top.SetChild(heavy, bottom.Child(light))
	bottom.SetChild(light, top)
	return bottom
}

// rotateSingle performs the rotation opposite bottom's light side and
// recomputes both balance factors. It covers both the case that
// arises during insertion, where bottom's balance factor always
// matches outer's sign, and the extra case that can arise during
// removal retrace, where bottom's balance factor is zero. In the
// first case both nodes end up with balance 0, the subtree got one
// level shorter, and retrace should continue; in the second, top and
// bottom end up with opposite-signed ±1 balances, the height is
// unchanged, and retrace should stop. The returned bool reports which
// happened.
func rotateSingle(outer Dir, top, bottom Handle) (Handle, bool) {
	heightReduced := bottom.Balance() != 0
	rotateRaw(outer, top, bottom)

	if heightReduced {
		top.SetBalance(0)
		bottom.SetBalance(0)
	} else {
		s := dirSign(outer)
		top.SetBalance(s)
		bottom.SetBalance(-s)
	}

	return bottom, heightReduced
}

// rotateDouble performs top's compound rotation: middle is rotated
// toward outer's opposite side first, then top is rotated toward
// outer, with bottom (middle's child on outer's opposite side,
// pre-rotation) ending up on top. A double rotation always leaves the
// subtree one level shorter than before, so retrace always continues
// past it.
func rotateDouble(outer Dir, top, middle, bottom Handle) (Handle, bool) {
	inner := outer.Opposite()

	top.SetChild(outer, rotateRaw(inner, middle, bottom))
	rotateRaw(outer, top, bottom)

	switch bottom.Balance() {
	case dirSign(inner):
		top.SetBalance(0)
		middle.SetBalance(dirSign(outer))
	case 0:
		top.SetBalance(0)
		middle.SetBalance(0)
	default:
		top.SetBalance(dirSign(inner))
		middle.SetBalance(0)
	}
	bottom.SetBalance(0)

	return bottom, true
}

// Rotate restores the AVL property at top, whose balance factor must
// be ±2, by picking one of the four rotation cases from the balance
// factor of its heavy child. It returns the new subtree root and
// whether the subtree's height decreased as a result, which callers
// doing a retrace use to decide whether to keep walking toward the
// root.
func Rotate(top Handle) (Handle, bool) {
	switch top.Balance() {
	case 2:
		child := top.Child(Right)
		if child.Balance() < 0 {
			return rotateDouble(Right, top, child, child.Child(Left))
		}
		return rotateSingle(Right, top, child)
	case -2:
		child := top.Child(Left)
		if child.Balance() > 0 {
			return rotateDouble(Left, top, child, child.Child(Right))
		}
		return rotateSingle(Left, top, child)
	default:
		panic("avltree: Rotate called on a node with a balance factor other than ±2")
	}
}
