package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// ErrInconsistentTree is returned (or panicked with) if a node reports a parent
// which does not list it as a child, or a depth inconsistent with its parent's depth.
var ErrInconsistentTree = errors.New("inconsistent tree")

// ErrAlreadyAttached is raised if a node with a parent is inserted as a child
// of another node. Clients have to Isolate the node first.
var ErrAlreadyAttached = errors.New("node already has a parent")

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	Payload  T          // nodes may carry a payload of arbitrary type
	parent   *Node[T]   // parent node of this node, non-owning
	children []*Node[T] // ordered children
	depth    int        // distance from root
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d d=%d %v)", node.ChildCount(), node.depth, node.Payload)
}

// AddChild appends a new child node to the children of node.
// The newly inserted node is connected to this node as its parent.
// It returns the parent node to allow for chaining.
//
// ch must not have a parent; otherwise AddChild panics with ErrAlreadyAttached.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	return node.InsertChildAt(len(node.children), ch)
}

// InsertChildAt inserts a new child node into the tree.
// The child is set at a given position in relation to other children,
// shifting children at later positions. Positions beyond the end of
// the children list append ch.
// It returns the parent node to allow for chaining.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	if ch.parent != nil {
		panic(fmt.Errorf("%w: %v", ErrAlreadyAttached, ch))
	}
	assertThat(ch != node && !ch.isAncestorOf(node), "cannot insert ancestor %v as a child", ch)
	if i < 0 {
		i = 0
	}
	if i >= len(node.children) {
		node.children = append(node.children, ch)
	} else {
		node.children = append(node.children, nil)  // make room for one child
		copy(node.children[i+1:], node.children[i:]) // shift i+1..n
		node.children[i] = ch
	}
	ch.parent = node
	ch.setDepth(node.depth + 1)
	return node
}

// setDepth re-numbers the depth of a subtree.
func (node *Node[T]) setDepth(d int) {
	node.depth = d
	for _, ch := range node.children {
		ch.setDepth(d + 1)
	}
}

func (node *Node[T]) isAncestorOf(other *Node[T]) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == node {
			return true
		}
	}
	return false
}

// IsAncestorOf is a predicate, checking if node is a (proper) ancestor of other.
func (node *Node[T]) IsAncestorOf(other *Node[T]) bool {
	if node == nil || other == nil {
		return false
	}
	return node.isAncestorOf(other)
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Root returns the root of the tree node is part of.
func (node *Node[T]) Root() *Node[T] {
	r := node
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Depth returns the distance of node from the root of its tree.
func (node *Node[T]) Depth() int {
	return node.depth
}

// Isolate removes a node from its parent.
// The isolated node becomes the root of its own subtree, with depth 0.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	p := node.parent
	if i := p.IndexOfChild(node); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	node.parent = nil
	node.setDepth(0)
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	return len(node.children)
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || len(node.children) <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a slice with all children of a node.
// The slice is a copy and may be modified by clients.
func (node *Node[T]) Children() []*Node[T] {
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// Check verifies the structural invariants of the subtree rooted at node:
// every child lists node as its parent, and every child's depth is
// its parent's depth + 1. Violations are reported as ErrInconsistentTree.
func (node *Node[T]) Check() error {
	if node.parent != nil {
		if node.parent.IndexOfChild(node) < 0 {
			return fmt.Errorf("%w: parent of %v does not list it as a child", ErrInconsistentTree, node)
		}
		if node.depth != node.parent.depth+1 {
			return fmt.Errorf("%w: depth of %v is %d, parent depth is %d", ErrInconsistentTree,
				node, node.depth, node.parent.depth)
		}
	} else if node.depth != 0 {
		return fmt.Errorf("%w: root %v has depth %d", ErrInconsistentTree, node, node.depth)
	}
	for _, ch := range node.children {
		if ch == nil || ch.parent != node {
			return fmt.Errorf("%w: child of %v has a different parent", ErrInconsistentTree, node)
		}
		if err := ch.Check(); err != nil {
			return err
		}
	}
	return nil
}
