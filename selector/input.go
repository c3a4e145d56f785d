package selector

import (
	"iter"

	"github.com/npillmayer/uicascade/element"
)

// InputSelector selects elements by an input flag, either the mouse-press
// state (Clicked) or the focus state (Focused), optionally inverted.
//
// Selection is inherited along the element tree: an element is selected if
// its own flag (xor invert) is set, or if this is true for one of its
// ancestors. Pressing a button thus selects the button's content as well.
type InputSelector struct {
	notifier
	input  element.InputChange
	invert bool
}

// Clicked creates a selector for pressed elements and their descendants.
// With invert set, it selects non-pressed elements and their descendants.
func Clicked(invert bool) *InputSelector {
	return &InputSelector{input: element.MousePress, invert: invert}
}

// Focused creates a selector for focused elements and their descendants.
// With invert set, it selects non-focused elements and their descendants.
func Focused(invert bool) *InputSelector {
	return &InputSelector{input: element.Focus, invert: invert}
}

// Inverted reports wether the selector is inverted.
func (s *InputSelector) Inverted() bool {
	return s.invert
}

// test checks the flag of e itself.
func (s *InputSelector) test(e *element.Element) bool {
	var flag bool
	if s.input == element.MousePress {
		flag = e.Pressed()
	} else {
		flag = e.Focused()
	}
	return flag != s.invert
}

// ancestorSelected checks the proper ancestors of e.
func (s *InputSelector) ancestorSelected(e *element.Element) bool {
	for a := range e.Ancestors() {
		if s.test(a) {
			return true
		}
	}
	return false
}

// Match tests e and its ancestors.
func (s *InputSelector) Match(e *element.Element) bool {
	return s.test(e) || s.ancestorSelected(e)
}

// Filter walks the subtree rooted at root, carrying the selection state of
// a parent down to its children.
func (s *InputSelector) Filter(root *element.Element) iter.Seq[*element.Element] {
	return func(yield func(*element.Element) bool) {
		if root == nil {
			return
		}
		s.walk(root, s.ancestorSelected(root), yield)
	}
}

func (s *InputSelector) walk(e *element.Element, inherited bool, yield func(*element.Element) bool) bool {
	selected := inherited || s.test(e)
	if selected && !yield(e) {
		return false
	}
	for i := 0; i < e.ChildCount(); i++ {
		ch, _ := e.Child(i)
		if !s.walk(ch, selected, yield) {
			return false
		}
	}
	return true
}

// frame is an entry of the ancestor path while filtering an ordered sequence.
type frame struct {
	e        *element.Element
	selected bool
}

// FilterOrdered filters a sequence of elements in pre-order. It walks the
// sequence once, keeping the path of ancestors seen so far, indexed by depth.
// Elements below a selected element are selected without testing their own
// flags, until an element at the same or a shallower depth resets the
// inherited state.
//
// If the input skips ancestors (e.g. it is the output of another selector),
// the actual ancestors of an element are consulted, so results are identical
// to the ones of Filter.
func (s *InputSelector) FilterOrdered(in iter.Seq[*element.Element]) iter.Seq[*element.Element] {
	return func(yield func(*element.Element) bool) {
		var path []frame
		for e := range in {
			d := e.Depth()
			for len(path) > 0 && path[len(path)-1].e.Depth() >= d {
				path = path[:len(path)-1]
			}
			var inherited bool
			if len(path) > 0 && path[len(path)-1].e == e.Parent() {
				inherited = path[len(path)-1].selected
			} else {
				path = path[:0] // gap in the sequence
				inherited = s.ancestorSelected(e)
			}
			selected := inherited || s.test(e)
			path = append(path, frame{e: e, selected: selected})
			if selected && !yield(e) {
				return
			}
		}
	}
}

// SupportsOrdered is true.
func (s *InputSelector) SupportsOrdered() bool { return true }

// NeedsReevaluation returns ChangedElement if the selector's input flag
// changed; otherwise it behaves like AllSelector.
func (s *InputSelector) NeedsReevaluation(_ *element.Element, _ string, tc element.TreeChange,
	ic element.InputChange) Severity {
	if ic == s.input {
		return ChangedElement
	}
	return treeChangeOnly(tc)
}

func (s *InputSelector) String() string {
	name := ":pressed"
	if s.input == element.Focus {
		name = ":focus"
	}
	if s.invert {
		return ":not(" + name + ")"
	}
	return name
}

var _ Selector = (*InputSelector)(nil)
