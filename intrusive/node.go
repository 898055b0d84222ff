// Package intrusive implements the embedded-node counterpart to the
// owning map at the root of this module. The tree never allocates a
// node or owns its storage: the caller builds a *Node[T] (typically as
// one field of a larger struct they already allocate for other
// reasons) and hands it to Insert; Remove hands the caller's node
// back so they decide what, if anything, to do with it. This mirrors
// the AvlNode/AvlMap split in bloodhound.h, where nodes are plain
// links the tree threads together and never frees on its own.
package intrusive

import "github.com/go-avl/avltree/internal/core"

// Node is the tree's unit of storage: two child slots, a balance
// factor, and the caller's payload. Comparators passed to a Tree
// (Compare and HetCompare) receive Value payloads, not the *Node.
type Node[T any] struct {
	children [2]core.Handle
	balance  int8
	Value    T
}

// NewNode allocates a node carrying value, ready to pass to Insert.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

func (n *Node[T]) Child(d core.Dir) core.Handle {
	c := n.children[d]
	if c == nil {
		return nil
	}
	return c
}

func (n *Node[T]) SetChild(d core.Dir, h core.Handle) {
	if h == nil {
		n.children[d] = nil
		return
	}
	n.children[d] = h
}

func (n *Node[T]) Balance() int8     { return n.balance }
func (n *Node[T]) SetBalance(b int8) { n.balance = b }
