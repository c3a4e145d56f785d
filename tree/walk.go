package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "iter"

// PreOrder returns a lazy sequence of all the nodes of the subtree rooted at
// node, including node itself. Nodes are produced before their children,
// children in the order of the children list.
//
// Modifying the tree while consuming the sequence is not supported.
func (node *Node[T]) PreOrder() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if node == nil {
			return
		}
		node.preorder(yield)
	}
}

func (node *Node[T]) preorder(yield func(*Node[T]) bool) bool {
	if !yield(node) {
		return false
	}
	for _, ch := range node.children {
		if !ch.preorder(yield) {
			return false
		}
	}
	return true
}

// Ancestors returns a lazy sequence of the ancestors of node, starting with
// its parent and ending with the root. node itself is not included.
func (node *Node[T]) Ancestors() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if node == nil {
			return
		}
		for p := node.parent; p != nil; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Flatten collects the nodes of a subtree in pre-order.
func (node *Node[T]) Flatten() []*Node[T] {
	var nodes []*Node[T]
	for n := range node.PreOrder() {
		nodes = append(nodes, n)
	}
	return nodes
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// It is used as an argument for Filter to collect a selection of nodes.
type Predicate[T comparable] func(test *Node[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool {
		return true
	}
}

// Filter chains a predicate onto a sequence of nodes. The resulting sequence
// preserves the order of the input sequence. A nil predicate matches nothing.
func Filter[T comparable](seq iter.Seq[*Node[T]], pred Predicate[T]) iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if pred == nil {
			tracer().Errorf("tree filter called with nil predicate")
			return
		}
		for n := range seq {
			if pred(n) && !yield(n) {
				return
			}
		}
	}
}
