// Package avltree implements an owning, key-ordered map backed by an
// AVL-balanced binary search tree: a tree whose subtrees never differ
// in height by more than one, kept that way through single and double
// rotations applied during insertion and removal.
//
// The tree owns every key and value stored in it; there is no sharing
// between trees and no persistence across mutation, unlike the
// copy-on-write forest this package's design started from. Lookup,
// insertion and removal run in O(log n) time (Clear and Walk visit
// every element, in O(n)), and no operation recurses: descent is a
// plain loop, and both insertion and removal need only a
// small, bounded amount of scratch space regardless of how deep the
// tree gets.
//
// See the intrusive subpackage for a variant where the caller owns
// node storage and embeds the balancing machinery directly into their
// own struct.
package avltree

import "github.com/go-avl/avltree/internal/core"

// LessThan reports whether a sorts before b. The Tree considers two
// keys equal, for ordering purposes, whenever neither is LessThan the
// other.
type LessThan[K any] func(a, b K) bool

// Tree is an ordered map from K to V, balanced so that no operation
// ever has to walk more than roughly 1.44*log2(n) nodes deep.
type Tree[K, V any] struct {
	root  core.Handle
	less  LessThan[K]
	count int
}

// New returns an empty Tree ordered by less.
func New[K, V any](less LessThan[K]) *Tree[K, V] {
	return &Tree[K, V]{less: less}
}

// Len returns the number of elements currently stored.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// Less returns the comparator the Tree was constructed with.
func (t *Tree[K, V]) Less() LessThan[K] {
	return t.less
}

// cmp builds a core-level comparator, rooted at key, out of the
// Tree's own LessThan.
func (t *Tree[K, V]) cmp(key K) func(core.Handle) int {
	return func(h core.Handle) int {
		other := asMapNode[K, V](h).key
		switch {
		case t.less(key, other):
			return -1
		case t.less(other, key):
			return 1
		default:
			return 0
		}
	}
}
