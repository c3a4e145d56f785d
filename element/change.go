package element

import "fmt"

// TreeChange is the kind of a structural change of the element tree.
type TreeChange uint8

// Structural changes.
const (
	NoTreeChange TreeChange = iota
	ElementAdded
	ElementRemoved
)

func (tc TreeChange) String() string {
	switch tc {
	case ElementAdded:
		return "added"
	case ElementRemoved:
		return "removed"
	}
	return "none"
}

// InputChange is the kind of a change of an element's input state.
type InputChange uint8

// Input state changes.
const (
	NoInputChange InputChange = iota
	MousePress
	Focus
)

func (ic InputChange) String() string {
	switch ic {
	case MousePress:
		return "mouse-press"
	case Focus:
		return "focus"
	}
	return "none"
}

// Change is an event raised synchronously at the moment an element is
// mutated. Exactly one of Tree, Property and Input is set.
//
// For ElementAdded and ElementRemoved, Target is the root of the subtree
// inserted into or detached from the tree.
type Change struct {
	Target   *Element
	Tree     TreeChange
	Property string // name of the changed property, or TagsProperty
	Input    InputChange
}

func (c Change) String() string {
	switch {
	case c.Tree != NoTreeChange:
		return fmt.Sprintf("(%v %s)", c.Target, c.Tree)
	case c.Input != NoInputChange:
		return fmt.Sprintf("(%v input %s)", c.Target, c.Input)
	}
	return fmt.Sprintf("(%v property %s)", c.Target, c.Property)
}

// Observer receives Change events of a tree.
type Observer interface {
	OnChange(Change)
}

// ObserverFunc is an adapter to use a plain function as an Observer.
type ObserverFunc func(Change)

// OnChange calls f(c).
func (f ObserverFunc) OnChange(c Change) {
	f(c)
}
