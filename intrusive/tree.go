package intrusive

import "github.com/go-avl/avltree/internal/core"

// Compare orders two payloads the same way strcmp orders strings:
// negative if a sorts before b, positive if after, zero if they
// compare equal. It must form a total order over every value ever
// inserted into a given Tree.
type Compare[T any] func(a, b T) int

// HetCompare orders a lookup key of type K against a stored payload.
// It must agree with the Tree's Compare: whatever HetCompare says
// about key against a node's Value must be consistent with what
// Compare would say about a node holding that key and the candidate.
type HetCompare[K, T any] func(key K, candidate T) int

// Tree is an embedded-node, caller-owned AVL tree: it holds pointers
// to *Node[T] values the caller allocated and never frees any of
// them itself except when told to, through Clear's deleter.
type Tree[T any] struct {
	root  core.Handle
	cmp   Compare[T]
	count int
}

// New returns an empty Tree ordered by cmp.
func New[T any](cmp Compare[T]) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// Len returns the number of nodes currently linked into the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// Insert links n into the tree. If a node already compares equal to
// n, n takes its structural position — inheriting its children and
// balance factor — and the displaced node is returned for the caller
// to dispose of; ownership of it was never the tree's to begin with.
func (t *Tree[T]) Insert(n *Node[T]) (previous *Node[T], replaced bool) {
	prev, replaced := core.Insert(&t.root, n, func(h core.Handle) int {
		return t.cmp(n.Value, h.(*Node[T]).Value)
	}, func(existing core.Handle) (core.Handle, core.Handle) {
		return n, existing
	})

	if !replaced {
		t.count++
	}
	if prev == nil {
		return nil, replaced
	}
	return prev.(*Node[T]), replaced
}

// Get returns the node comparing equal to key, if any.
func Get[T, K any](t *Tree[T], key K, cmp HetCompare[K, T]) (*Node[T], bool) {
	h, ok := core.Search(t.root, func(h core.Handle) int {
		return cmp(key, h.(*Node[T]).Value)
	})
	if !ok {
		return nil, false
	}
	return h.(*Node[T]), true
}

// GetMut is identical to Get: every Node this tree hands back is
// already a live pointer the caller can mutate, so there is no
// separate mutable accessor to offer the way a value-owning container
// would need. It exists for parity with the reference map's
// get/get_mut split, which only matters in a language with a
// const-pointer distinction.
func GetMut[T, K any](t *Tree[T], key K, cmp HetCompare[K, T]) (*Node[T], bool) {
	return Get(t, key, cmp)
}

// GetOrInsert returns the node comparing equal to key, or, on a miss,
// builds one with factory, links it in, and returns it. factory is
// only called once the insertion point has been located.
func GetOrInsert[T, K any](t *Tree[T], key K, cmp HetCompare[K, T], factory func() *Node[T]) (node *Node[T], inserted bool) {
	h, inserted := core.GetOrInsert(&t.root, func(h core.Handle) int {
		return cmp(key, h.(*Node[T]).Value)
	}, func() core.Handle {
		return factory()
	})
	if inserted {
		t.count++
	}
	return h.(*Node[T]), inserted
}

// Remove unlinks the node comparing equal to key and returns it. The
// tree never frees it; the caller, who owned it from the start,
// decides what happens to it next.
func Remove[T, K any](t *Tree[T], key K, cmp HetCompare[K, T]) (*Node[T], bool) {
	h, ok := core.Remove(&t.root, func(h core.Handle) int {
		return cmp(key, h.(*Node[T]).Value)
	})
	if !ok {
		return nil, false
	}
	t.count--
	return h.(*Node[T]), true
}

// Clear unlinks every node in O(n) time and O(1) auxiliary stack
// frames, calling deleter, if non-nil, once per node in the order
// they're torn down, mirroring AvlMap_clear's use of its AvlDeleter.
func (t *Tree[T]) Clear(deleter func(*Node[T])) {
	core.Teardown(&t.root, func(h core.Handle) {
		if deleter != nil {
			deleter(h.(*Node[T]))
		}
	})
	t.count = 0
}

// Drop is equivalent to Clear. It exists for parity with the
// reference map's new/drop pair; Go's garbage collector reclaims the
// Tree value itself once nothing references it.
func (t *Tree[T]) Drop(deleter func(*Node[T])) {
	t.Clear(deleter)
}

// Walk calls visit once per node in ascending order, stopping early
// if visit returns false.
func (t *Tree[T]) Walk(visit func(*Node[T]) bool) {
	core.Walk(t.root, func(h core.Handle) bool {
		return visit(h.(*Node[T]))
	})
}
