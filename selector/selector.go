package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"iter"

	"github.com/npillmayer/uicascade/element"
	"github.com/npillmayer/uicascade/tree"
)

// ErrOrderedUnsupported is raised (as a panic) if FilterOrdered is called on a
// selector which does not support filtering of ordered sequences.
var ErrOrderedUnsupported = errors.New("selector does not support ordered filtering")

// ErrImmutable is returned when clients try to modify a selector which has
// been constructed as fixed.
var ErrImmutable = errors.New("selector is immutable")

// Severity classifies how much re-matching a change demands.
// Greater severity means more re-matching is required.
type Severity uint8

const (
	// None: cached results remain valid.
	None Severity = iota
	// AddedElement: only newly inserted elements have to be tested.
	AddedElement
	// ChangedElement: membership of existing elements may have flipped.
	ChangedElement
)

func (s Severity) String() string {
	switch s {
	case None:
		return "none"
	case AddedElement:
		return "added-element"
	case ChangedElement:
		return "changed-element"
	}
	return fmt.Sprintf("severity(%d)", uint8(s))
}

// Max returns the greater of two severities.
func Max(a, b Severity) Severity {
	if a > b {
		return a
	}
	return b
}

// Selector is the interface all selectors implement.
type Selector interface {
	// Filter produces the matching elements of the subtree rooted at root,
	// in pre-order. The ancestors of root are taken into account where the
	// selector depends on them.
	Filter(root *element.Element) iter.Seq[*element.Element]
	// FilterOrdered filters an ordered sequence of elements, preserving
	// input order. It panics with ErrOrderedUnsupported if SupportsOrdered
	// is false.
	FilterOrdered(in iter.Seq[*element.Element]) iter.Seq[*element.Element]
	// SupportsOrdered reports whether FilterOrdered may be called.
	SupportsOrdered() bool
	// Match tests a single element.
	Match(e *element.Element) bool
	// NeedsReevaluation classifies a change of target.
	NeedsReevaluation(target *element.Element, property string,
		tc element.TreeChange, ic element.InputChange) Severity
	// Listen registers a listener for re-evaluation requests, i.e.
	// changes of the selection criteria.
	Listen(l Listener) Unregister
}

// Listener receives re-evaluation requests of a selector.
type Listener func(source Selector)

// Unregister removes a listener. Calling it more than once is harmless.
type Unregister func()

// SeverityOf is a convenience function to classify an element.Change.
func SeverityOf(s Selector, c element.Change) Severity {
	return s.NeedsReevaluation(c.Target, c.Property, c.Tree, c.Input)
}

// --- Listener registry -----------------------------------------------------

type listenerEntry struct {
	id int
	l  Listener
}

// notifier manages the listeners of a selector.
type notifier struct {
	listeners []listenerEntry
	nextID    int
}

// Listen registers a listener, returning a function to unregister it.
func (n *notifier) Listen(l Listener) Unregister {
	if l == nil {
		return func() {}
	}
	n.nextID++
	id := n.nextID
	n.listeners = append(n.listeners, listenerEntry{id: id, l: l})
	return func() {
		for i, entry := range n.listeners {
			if entry.id == id {
				n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

func (n *notifier) notify(source Selector) {
	for _, entry := range n.listeners {
		entry.l(source)
	}
}

func (n *notifier) listenerCount() int {
	return len(n.listeners)
}

// --- Helpers ---------------------------------------------------------------

// treeChangeOnly is the re-evaluation rule of selectors which are affected by
// insertion of elements only.
func treeChangeOnly(tc element.TreeChange) Severity {
	if tc == element.ElementAdded {
		return AddedElement
	}
	return None
}

// filterTree yields the elements of the subtree rooted at root matching pred,
// in pre-order.
func filterTree(root *element.Element, pred func(*element.Element) bool) iter.Seq[*element.Element] {
	if root == nil {
		return func(func(*element.Element) bool) {}
	}
	return elementsOf(tree.Filter(root.Node().PreOrder(), matching(pred)))
}

// filterSeq yields the elements of in matching pred, preserving their order.
func filterSeq(in iter.Seq[*element.Element], pred func(*element.Element) bool) iter.Seq[*element.Element] {
	return elementsOf(tree.Filter(nodesOf(in), matching(pred)))
}

func matching(pred func(*element.Element) bool) tree.Predicate[*element.Element] {
	return func(n *tree.Node[*element.Element]) bool {
		return pred(n.Payload)
	}
}

func nodesOf(in iter.Seq[*element.Element]) iter.Seq[*tree.Node[*element.Element]] {
	return func(yield func(*tree.Node[*element.Element]) bool) {
		for e := range in {
			if !yield(e.Node()) {
				return
			}
		}
	}
}

func elementsOf(in iter.Seq[*tree.Node[*element.Element]]) iter.Seq[*element.Element] {
	return func(yield func(*element.Element) bool) {
		for n := range in {
			if !yield(n.Payload) {
				return
			}
		}
	}
}

func unsupported(s Selector) {
	err := fmt.Errorf("%w: %v", ErrOrderedUnsupported, s)
	tracer().Errorf("%v", err)
	panic(err)
}

