package avltree

import "github.com/go-avl/avltree/internal/core"

// Get returns the value stored under key, if any.
func (t *Tree[K, V]) Get(key K) (value V, found bool) {
	h, ok := core.Search(t.root, t.cmp(key))
	if !ok {
		return value, false
	}
	return asMapNode[K, V](h).value, true
}

// Has reports whether key is present.
func (t *Tree[K, V]) Has(key K) bool {
	_, ok := core.Search(t.root, t.cmp(key))
	return ok
}

// GetMut returns a pointer to the value stored under key so the
// caller can modify it in place without a separate Insert round trip.
// Mutating the pointee must never change how key compares against
// other keys in the tree; doing so corrupts the ordering invariant.
func (t *Tree[K, V]) GetMut(key K) (value *V, found bool) {
	h, ok := core.Search(t.root, t.cmp(key))
	if !ok {
		return nil, false
	}
	return &asMapNode[K, V](h).value, true
}
