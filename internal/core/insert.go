package core

// EqualHandler is invoked when Insert's descent reaches a node that
// already compares equal to the element being inserted. occupant is
// the handle that should end up at the existing node's structural
// position — either existing itself, left in place, or a different
// handle the facade wants spliced in instead — and previous is the
// handle Insert should report back to the caller as the replaced
// element. No rebalancing happens on this path, since the shape of
// the tree hasn't changed.
type EqualHandler func(existing Handle) (occupant, previous Handle)

// Insert descends from *rootSlot toward the position where a node
// comparing equal to leaf belongs. cmp compares leaf against a
// visited node: negative if leaf belongs in that node's left subtree,
// positive for the right subtree, zero on a match.
//
// On a genuine insertion, leaf is attached as a new leaf of the
// visited node where the descent ran out, and the single rotation
// needed to restore the balance invariant, if any, is applied at the
// deepest ancestor that already had a non-zero balance factor before
// the insert. Every node strictly below that ancestor must have had a
// balance factor of zero, or it would have been the deeper pivot
// instead, so the insertion path never needs more than one rotation.
//
// On a match, onEqual decides what happens and Insert reports back
// whatever it returns.
func Insert(rootSlot *Handle, leaf Handle, cmp func(Handle) int, onEqual EqualHandler) (previous Handle, replaced bool) {
	if *rootSlot == nil {
		*rootSlot = leaf
		return nil, false
	}

	pivot := *rootSlot
	var pivotParent Handle
	var pivotDir Dir
	var bits dirPath

	var parent Handle
	var parentDir Dir
	cur := *rootSlot

	for {
		c := cmp(cur)
		if c == 0 {
			occupant, prev := onEqual(cur)
			if occupant != cur {
				occupant.SetChild(Left, cur.Child(Left))
				occupant.SetChild(Right, cur.Child(Right))
				occupant.SetBalance(cur.Balance())
				if parent == nil {
					*rootSlot = occupant
				} else {
					parent.SetChild(parentDir, occupant)
				}
			}
			return prev, true
		}

		var dir Dir
		if c < 0 {
			dir = Left
		} else {
			dir = Right
		}

		if cur != pivot && cur.Balance() != 0 {
			pivot, pivotParent, pivotDir = cur, parent, parentDir
			bits.reset()
		}
		bits.push(dir)

		next := cur.Child(dir)
		if next == nil {
			cur.SetChild(dir, leaf)
			break
		}

		parent, parentDir = cur, dir
		cur = next
	}

	walk := pivot
	for i := 0; i < bits.len(); i++ {
		dir := bits.at(i)
		walk.SetBalance(walk.Balance() + dirSign(dir))
		walk = walk.Child(dir)
	}

	if pivot.Balance() != 2 && pivot.Balance() != -2 {
		return nil, false
	}

	newRoot, _ := Rotate(pivot)
	if pivotParent == nil {
		*rootSlot = newRoot
	} else {
		pivotParent.SetChild(pivotDir, newRoot)
	}

	return nil, false
}

// GetOrInsert descends exactly as Insert does, but on a match it
// returns the existing node untouched instead of invoking a
// replacement callback, and on a miss it calls factory to build the
// new leaf only once the insertion point has been found, so callers
// never pay for constructing a node they end up not needing.
func GetOrInsert(rootSlot *Handle, cmp func(Handle) int, factory func() Handle) (node Handle, inserted bool) {
	if *rootSlot == nil {
		leaf := factory()
		*rootSlot = leaf
		return leaf, true
	}

	pivot := *rootSlot
	var pivotParent Handle
	var pivotDir Dir
	var bits dirPath

	var parent Handle
	var parentDir Dir
	cur := *rootSlot

	for {
		c := cmp(cur)
		if c == 0 {
			return cur, false
		}

		var dir Dir
		if c < 0 {
			dir = Left
		} else {
			dir = Right
		}

		if cur != pivot && cur.Balance() != 0 {
			pivot, pivotParent, pivotDir = cur, parent, parentDir
			bits.reset()
		}
		bits.push(dir)

		next := cur.Child(dir)
		if next == nil {
			leaf := factory()
			cur.SetChild(dir, leaf)
			node = leaf
			break
		}

		parent, parentDir = cur, dir
		cur = next
	}

	walk := pivot
	for i := 0; i < bits.len(); i++ {
		dir := bits.at(i)
		walk.SetBalance(walk.Balance() + dirSign(dir))
		walk = walk.Child(dir)
	}

	if pivot.Balance() == 2 || pivot.Balance() == -2 {
		newRoot, _ := Rotate(pivot)
		if pivotParent == nil {
			*rootSlot = newRoot
		} else {
			pivotParent.SetChild(pivotDir, newRoot)
		}
	}

	return node, true
}
