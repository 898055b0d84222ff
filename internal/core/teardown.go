package core

// Teardown empties a tree in O(n) time using O(1) auxiliary stack
// frames regardless of shape, the way AvlMap_clear does: repeatedly
// rotate the current node's left child up to the top until there is
// none left, hand the now-childless-on-the-left current node to
// deleter, then continue with what was its right child. Balance
// factors are never consulted or repaired here, since the whole
// subtree is being discarded.
func Teardown(rootSlot *Handle, deleter func(Handle)) {
	cur := *rootSlot
	for cur != nil {
		for cur.Child(Left) != nil {
			cur = rotateRaw(Left, cur, cur.Child(Left))
		}
		next := cur.Child(Right)
		deleter(cur)
		cur = next
	}
	*rootSlot = nil
}
