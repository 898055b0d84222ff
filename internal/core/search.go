package core

// Search walks down from root comparing each visited node with cmp
// until cmp reports a match (0), or a nil child ends the search. cmp
// is called with the currently visited node and must return a
// negative number if the sought key belongs to that node's left
// subtree, positive for the right subtree, and zero on a match.
func Search(root Handle, cmp func(Handle) int) (Handle, bool) {
	cur := root
	for cur != nil {
		c := cmp(cur)
		switch {
		case c == 0:
			return cur, true
		case c < 0:
			cur = cur.Child(Left)
		default:
			cur = cur.Child(Right)
		}
	}
	return nil, false
}
