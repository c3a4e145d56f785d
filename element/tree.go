package element

import (
	"errors"
	"fmt"

	"github.com/npillmayer/uicascade/tree"
)

// ErrNotARoot is raised if a tree is created for an element which has a parent.
var ErrNotARoot = errors.New("element is not a root")

// Tree is an element tree. It owns the root element and dispatches Change
// events of all attached elements to its observers.
type Tree struct {
	root      *Element
	observers []observerEntry
	nextID    int
}

type observerEntry struct {
	id int
	o  Observer
}

// NewTree creates a tree for a root element. All descendants of root become
// part of the tree.
func NewTree(root *Element) *Tree {
	if root == nil {
		panic(fmt.Errorf("%w: nil", ErrNotARoot))
	}
	if root.Parent() != nil {
		panic(fmt.Errorf("%w: %v", ErrNotARoot, root))
	}
	t := &Tree{root: root}
	root.setOwner(t)
	return t
}

// Root returns the root element of t.
func (t *Tree) Root() *Element {
	return t.root
}

// Check verifies the structural invariants of the tree, returning an error
// wrapping tree.ErrInconsistentTree if they are violated. Besides the
// parent/child links and depths of the nodes, every element must have been
// attached through the element API (and thus report t as its tree).
func (t *Tree) Check() error {
	if err := t.root.node.Check(); err != nil {
		return err
	}
	for e := range t.root.PreOrder() {
		if e.owner != t {
			return fmt.Errorf("%w: %v is not attached through its element tree", tree.ErrInconsistentTree, e)
		}
	}
	return nil
}

// Observe registers an observer for Change events. The returned function
// unregisters the observer again; calling it more than once is harmless.
//
// Observers must not be registered or unregistered while a Change is being
// dispatched.
func (t *Tree) Observe(o Observer) (unregister func()) {
	t.nextID++
	id := t.nextID
	t.observers = append(t.observers, observerEntry{id: id, o: o})
	return func() {
		for i, entry := range t.observers {
			if entry.id == id {
				t.observers = append(t.observers[:i], t.observers[i+1:]...)
				return
			}
		}
	}
}

func (t *Tree) notify(c Change) {
	if t == nil {
		return
	}
	tracer().Debugf("tree change %v", c)
	for _, entry := range t.observers {
		entry.o.OnChange(c)
	}
}

// Dump returns a printable representation of the tree, for debugging.
func (t *Tree) Dump() string {
	return tree.Dump(t.root.node, func(e *Element) string { return e.String() })
}
