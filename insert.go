package avltree

import "github.com/go-avl/avltree/internal/core"

// Insert stores value under key. If the tree already has an element
// comparing equal to key, only the stored value is replaced — the key
// passed in here is discarded, and the previous value is returned;
// the existing node itself, and its key, stay exactly where they
// were. This mirrors the reference map's insert, which also keeps the
// resident key on a match and only overwrites the value.
func (t *Tree[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	leaf := &mapNode[K, V]{key: key, value: value}

	_, replaced = core.Insert(&t.root, leaf, t.cmp(key), func(existing core.Handle) (core.Handle, core.Handle) {
		n := asMapNode[K, V](existing)
		previous = n.value
		n.value = value
		return existing, existing
	})

	if !replaced {
		t.count++
	}
	return previous, replaced
}

// GetOrInsert returns the value already stored under key, or, if
// there is none, calls build to produce one, stores it, and returns
// it. build is only called on a miss.
func (t *Tree[K, V]) GetOrInsert(key K, build func() V) (value V, inserted bool) {
	h, inserted := core.GetOrInsert(&t.root, t.cmp(key), func() core.Handle {
		return &mapNode[K, V]{key: key, value: build()}
	})
	if inserted {
		t.count++
	}
	return asMapNode[K, V](h).value, inserted
}
