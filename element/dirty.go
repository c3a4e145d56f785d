package element

import "strings"

// Flags is a cumulative bitmask of dirty flags. Downstream stages (layout,
// paint) use these flags to limit their re-work.
type Flags uint8

// ContentChanged and LayoutChanged mark an element itself, the Child… flags
// mark ancestors of a changed element.
const (
	ContentChanged Flags = 1 << iota
	LayoutChanged
	ChildContentChanged
	ChildLayoutChanged
)

func (f Flags) String() string {
	var s []string
	if f&ContentChanged != 0 {
		s = append(s, "content")
	}
	if f&LayoutChanged != 0 {
		s = append(s, "layout")
	}
	if f&ChildContentChanged != 0 {
		s = append(s, "child-content")
	}
	if f&ChildLayoutChanged != 0 {
		s = append(s, "child-layout")
	}
	return "{" + strings.Join(s, "|") + "}"
}

// Dirty returns the dirty flags of e.
func (e *Element) Dirty() Flags {
	return e.dirty
}

// MarkDirty sets dirty flags for e. ContentChanged propagates to the
// ancestors of e as ChildContentChanged, LayoutChanged as ChildLayoutChanged.
// Propagation stops at the root or at the first ancestor which already
// carries the corresponding child flag.
func (e *Element) MarkDirty(f Flags) {
	e.dirty |= f
	if f&ContentChanged != 0 {
		e.propagate(ChildContentChanged)
	}
	if f&LayoutChanged != 0 {
		e.propagate(ChildLayoutChanged)
	}
}

func (e *Element) propagate(childFlag Flags) {
	for p := e.Parent(); p != nil; p = p.Parent() {
		if p.dirty&childFlag != 0 {
			return
		}
		p.dirty |= childFlag
	}
}

// ClearDirty resets the dirty flags of e and all its descendants.
func (e *Element) ClearDirty() {
	for x := range e.PreOrder() {
		x.dirty = 0
	}
}
