package avltree

import "github.com/go-avl/avltree/internal/core"

// Walk calls visit once per entry in ascending key order, stopping
// early if visit returns false. It is a one-shot traversal, not a
// resumable iterator: there is no cursor type to pause and resume
// with.
func (t *Tree[K, V]) Walk(visit func(key K, value V) bool) {
	core.Walk(t.root, func(h core.Handle) bool {
		n := asMapNode[K, V](h)
		return visit(n.key, n.value)
	})
}
