package core

// Remove locates the node for which cmp returns zero, detaches it
// from the tree, retraces the path back to the root fixing up balance
// factors and rotating where needed, and returns the detached node.
// cmp must compare the sought key against a visited node the same way
// the tree's own comparator would: negative if the key sorts before
// the node, positive if after, zero on a match.
func Remove(rootSlot *Handle, cmp func(Handle) int) (Handle, bool) {
	if *rootSlot == nil {
		return nil, false
	}

	var nodes pointerStack
	var dirs bitStack

	cur := *rootSlot
	for {
		c := cmp(cur)
		if c == 0 {
			break
		}

		nodes.push(cur)
		var dir Dir
		if c < 0 {
			dir = Left
		} else {
			dir = Right
		}
		dirs.push(dir)

		next := cur.Child(dir)
		if next == nil {
			return nil, false
		}
		cur = next
	}

	target := cur
	targetIdx := nodes.len()
	nodes.push(target)

	left, right := target.Child(Left), target.Child(Right)

	switch {
	case left != nil && right != nil:
		occupant := spliceTwoChildren(&nodes, &dirs, target, left, right)
		nodes.set(targetIdx, occupant)
		if targetIdx == 0 {
			*rootSlot = occupant
		} else {
			nodes.at(targetIdx - 1).SetChild(dirs.at(targetIdx-1), occupant)
		}
	default:
		var occupant Handle
		if left != nil {
			occupant = left
		} else {
			occupant = right
		}

		nodes.pop() // target's own slot; the link to occupant is fixed below
		if targetIdx == 0 {
			*rootSlot = occupant
		} else {
			nodes.at(targetIdx - 1).SetChild(dirs.at(targetIdx-1), occupant)
		}
	}

	retrace(rootSlot, &nodes, &dirs)

	return target, true
}

// spliceTwoChildren detaches target, which has two children, by
// swapping it with its inorder successor: the leftmost node of
// target's right subtree. The path from target down to the successor
// is pushed onto nodes and dirs (the successor itself is not, since
// the successor doesn't keep its old position — it takes target's),
// so that the retrace that follows walks through exactly the nodes
// whose subtree actually lost height.
func spliceTwoChildren(nodes *pointerStack, dirs *bitStack, target, left, right Handle) Handle {
	dirs.push(Right) // target -> right is always on the path to the successor

	parent := target
	succ := right
	for succ.Child(Left) != nil {
		nodes.push(succ)
		dirs.push(Left)
		parent = succ
		succ = succ.Child(Left)
	}

	succRight := succ.Child(Right)
	if parent != target {
		parent.SetChild(Left, succRight)
		succ.SetChild(Right, right)
	}
	succ.SetChild(Left, left)
	succ.SetBalance(target.Balance())

	return succ
}

// retrace walks the recorded (node, direction) pairs from the deepest
// back to the root, adjusting each node's balance factor and rotating
// where the adjustment pushed it to ±2. It stops as soon as a
// subtree's height turns out to be unchanged, since nothing further
// up can need adjusting in that case.
func retrace(rootSlot *Handle, nodes *pointerStack, dirs *bitStack) {
	for nodes.len() > 0 {
		i := nodes.len() - 1
		node := nodes.at(i)
		dir := dirs.at(i)
		nodes.pop()
		dirs.truncate(i)

		if dir == Left {
			node.SetBalance(node.Balance() + 1)
		} else {
			node.SetBalance(node.Balance() - 1)
		}

		newRoot := node
		heightReduced := true

		switch node.Balance() {
		case -1, 1:
			heightReduced = false
		case 0:
			// height decreased, no rotation needed
		default:
			newRoot, heightReduced = Rotate(node)
		}

		if newRoot != node {
			if i == 0 {
				*rootSlot = newRoot
			} else {
				nodes.at(i - 1).SetChild(dirs.at(i-1), newRoot)
			}
		}

		if !heightReduced {
			return
		}
	}
}
