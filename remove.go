package avltree

import "github.com/go-avl/avltree/internal/core"

// Remove deletes the element stored under key, if any, and returns
// the value it held.
func (t *Tree[K, V]) Remove(key K) (value V, removed bool) {
	h, ok := core.Remove(&t.root, t.cmp(key))
	if !ok {
		return value, false
	}
	t.count--
	return asMapNode[K, V](h).value, true
}

// Clear empties the Tree, discarding every key and value in O(n) time
// and O(1) auxiliary stack frames, regardless of the tree's shape.
func (t *Tree[K, V]) Clear() {
	core.Teardown(&t.root, func(core.Handle) {})
	t.count = 0
}

// Drop is equivalent to Clear. It exists for parity with the
// reference map's new/drop pair; Go's garbage collector reclaims the
// Tree value itself once nothing references it, so there's no
// separate deallocation step beyond emptying it out.
func (t *Tree[K, V]) Drop() {
	t.Clear()
}
