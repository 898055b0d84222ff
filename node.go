package avltree

import "github.com/go-avl/avltree/internal/core"

// mapNode is the concrete node type behind the owning map: unlike the
// teacher's node[T], which packs a generation and height into genH to
// support copy-on-write sharing between forked trees, mapNode keeps a
// single mutable balance factor, since this tree owns its storage
// outright and is never shared between trees.
type mapNode[K, V any] struct {
	children [2]core.Handle
	key      K
	value    V
	balance  int8
}

func (n *mapNode[K, V]) Child(d core.Dir) core.Handle {
	c := n.children[d]
	if c == nil {
		return nil
	}
	return c
}

func (n *mapNode[K, V]) SetChild(d core.Dir, h core.Handle) {
	if h == nil {
		n.children[d] = nil
		return
	}
	n.children[d] = h
}

func (n *mapNode[K, V]) Balance() int8     { return n.balance }
func (n *mapNode[K, V]) SetBalance(b int8) { n.balance = b }

func asMapNode[K, V any](h core.Handle) *mapNode[K, V] {
	if h == nil {
		return nil
	}
	return h.(*mapNode[K, V])
}
