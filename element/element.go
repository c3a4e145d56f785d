package element

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/npillmayer/uicascade/style"
	"github.com/npillmayer/uicascade/tree"
)

// Kind is the type of an element, e.g. "button" or "label".
type Kind string

// TagsProperty is the property name reported in Change events when the tag
// set of an element changes.
const TagsProperty = "tags"

// Element is a node of the UI element tree.
type Element struct {
	node    *tree.Node[*Element] // we build on top of general purpose tree
	kind    Kind
	tags    map[string]struct{}
	pressed bool
	focused bool
	literal map[string]style.Property // property values assigned by clients
	styled  map[string]style.Property // property values resolved by the cascade
	dirty   Flags
	owner   *Tree // tree this element is attached to, if any
}

// New creates a new element of a given kind, carrying an optional set of tags.
func New(kind Kind, tags ...string) *Element {
	e := &Element{kind: kind}
	e.node = tree.NewNode(e) // Payload will always reference the element itself
	for _, t := range tags {
		e.addTag(t)
	}
	return e
}

// FromNode gets the element from a generic tree node.
func FromNode(n *tree.Node[*Element]) *Element {
	if n == nil {
		return nil
	}
	return n.Payload
}

// Node returns the generic tree node underlying e.
func (e *Element) Node() *tree.Node[*Element] {
	return e.node
}

func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	if len(e.tags) == 0 {
		return string(e.kind)
	}
	return fmt.Sprintf("%s[%s]", e.kind, strings.Join(e.Tags(), ","))
}

// Kind returns the kind of e.
func (e *Element) Kind() Kind {
	return e.kind
}

// Tree returns the tree e is attached to, or nil.
func (e *Element) Tree() *Tree {
	return e.owner
}

// --- Navigation ------------------------------------------------------------

// Parent returns the parent element or nil (for a root).
func (e *Element) Parent() *Element {
	return FromNode(e.node.Parent())
}

// Depth returns the distance of e from the root.
func (e *Element) Depth() int {
	return e.node.Depth()
}

// ChildCount returns the number of children of e.
func (e *Element) ChildCount() int {
	return e.node.ChildCount()
}

// Child returns the n-th child of e.
func (e *Element) Child(n int) (*Element, bool) {
	ch, ok := e.node.Child(n)
	return FromNode(ch), ok
}

// Children returns the children of e in order.
func (e *Element) Children() []*Element {
	nodes := e.node.Children()
	children := make([]*Element, len(nodes))
	for i, n := range nodes {
		children[i] = n.Payload
	}
	return children
}

// PreOrder returns a lazy sequence of e and all its descendants in pre-order.
func (e *Element) PreOrder() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for n := range e.node.PreOrder() {
			if !yield(n.Payload) {
				return
			}
		}
	}
}

// Ancestors returns a lazy sequence of the ancestors of e, parent first.
func (e *Element) Ancestors() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for n := range e.node.Ancestors() {
			if !yield(n.Payload) {
				return
			}
		}
	}
}

// IsAncestorOf is a predicate, checking if e is a proper ancestor of other.
func (e *Element) IsAncestorOf(other *Element) bool {
	if e == nil || other == nil {
		return false
	}
	return e.node.IsAncestorOf(other.node)
}

// Contains is a predicate, checking if other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	return e == other || e.IsAncestorOf(other)
}

// --- Tree structure --------------------------------------------------------

// Add appends a child element and returns e to allow for chaining.
// ch must not have a parent.
func (e *Element) Add(ch *Element) *Element {
	return e.Insert(e.ChildCount(), ch)
}

// Insert inserts a child element at position i and returns e.
// ch must not have a parent.
func (e *Element) Insert(i int, ch *Element) *Element {
	if ch == nil {
		return e
	}
	e.node.InsertChildAt(i, ch.node)
	ch.setOwner(e.owner)
	ch.MarkDirty(ContentChanged | LayoutChanged)
	e.owner.notify(Change{Target: ch, Tree: ElementAdded})
	return e
}

// Remove detaches e from its parent. The subtree rooted at e is kept intact
// and may be inserted elsewhere. Remove returns e.
func (e *Element) Remove() *Element {
	p := e.Parent()
	if p == nil {
		return e
	}
	owner := e.owner
	e.node.Isolate()
	p.MarkDirty(LayoutChanged | ContentChanged)
	owner.notify(Change{Target: e, Tree: ElementRemoved})
	e.setOwner(nil)
	return e
}

func (e *Element) setOwner(t *Tree) {
	for x := range e.PreOrder() {
		x.owner = t
	}
}

// --- Tags ------------------------------------------------------------------

// Tags returns the tags of e, sorted.
func (e *Element) Tags() []string {
	tags := make([]string, 0, len(e.tags))
	for t := range e.tags {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// HasTag is a predicate, checking for a single tag.
func (e *Element) HasTag(tag string) bool {
	_, ok := e.tags[tag]
	return ok
}

// HasTags is a predicate, checking if the tag set of e is a superset of
// required. An empty set of requirements is always satisfied.
func (e *Element) HasTags(required map[string]struct{}) bool {
	for t := range required {
		if _, ok := e.tags[t]; !ok {
			return false
		}
	}
	return true
}

func (e *Element) addTag(tag string) bool {
	if e.tags == nil {
		e.tags = make(map[string]struct{})
	}
	if _, ok := e.tags[tag]; ok {
		return false
	}
	e.tags[tag] = struct{}{}
	return true
}

// AddTag adds a tag to e.
func (e *Element) AddTag(tag string) *Element {
	if e.addTag(tag) {
		e.propertyChanged(TagsProperty, ContentChanged)
	}
	return e
}

// RemoveTag removes a tag from e.
func (e *Element) RemoveTag(tag string) *Element {
	if _, ok := e.tags[tag]; ok {
		delete(e.tags, tag)
		e.propertyChanged(TagsProperty, ContentChanged)
	}
	return e
}

// --- Input state -----------------------------------------------------------

// Pressed returns the mouse-press state of e.
func (e *Element) Pressed() bool {
	return e.pressed
}

// SetPressed sets the mouse-press state of e.
func (e *Element) SetPressed(b bool) {
	if e.pressed == b {
		return
	}
	e.pressed = b
	e.MarkDirty(ContentChanged)
	e.owner.notify(Change{Target: e, Input: MousePress})
}

// Focused returns the focus state of e.
func (e *Element) Focused() bool {
	return e.focused
}

// SetFocused sets the focus state of e.
func (e *Element) SetFocused(b bool) {
	if e.focused == b {
		return
	}
	e.focused = b
	e.MarkDirty(ContentChanged)
	e.owner.notify(Change{Target: e, Input: Focus})
}

// --- Properties ------------------------------------------------------------

// Set assigns a literal value to a property. Literal values are in effect
// whenever no style touches the property.
func (e *Element) Set(key string, value style.Property) *Element {
	key = style.NormalizeKey(key)
	if old, ok := e.literal[key]; ok && old == value {
		return e
	}
	if e.literal == nil {
		e.literal = make(map[string]style.Property)
	}
	e.literal[key] = value
	e.propertyChanged(key, flagsFor(key))
	return e
}

// Unset removes the literal value of a property.
func (e *Element) Unset(key string) *Element {
	key = style.NormalizeKey(key)
	if _, ok := e.literal[key]; ok {
		delete(e.literal, key)
		e.propertyChanged(key, flagsFor(key))
	}
	return e
}

// Literal returns the literal value of a property, if set.
func (e *Element) Literal(key string) (style.Property, bool) {
	p, ok := e.literal[style.NormalizeKey(key)]
	return p, ok
}

// Styled returns the value of a property as resolved by the cascade, if any.
func (e *Element) Styled(key string) (style.Property, bool) {
	p, ok := e.styled[style.NormalizeKey(key)]
	return p, ok
}

// Get returns the effective value of a property: the value resolved by the
// cascade, or the literal value if no style touches the property.
func (e *Element) Get(key string) (style.Property, bool) {
	key = style.NormalizeKey(key)
	if p, ok := e.styled[key]; ok {
		return p, true
	}
	p, ok := e.literal[key]
	return p, ok
}

// ApplyStyles replaces the resolved property values of e wholesale. Keys not
// present in values revert to their literal values. It is called by the
// cascade and does not raise Change events; it returns true if any effective
// value changed, and marks e dirty accordingly.
func (e *Element) ApplyStyles(values map[string]style.Property) bool {
	var flags Flags
	for k, v := range values {
		if old, ok := e.styled[k]; !ok || old != v {
			flags |= flagsFor(k)
		}
	}
	for k := range e.styled {
		if _, ok := values[k]; !ok {
			flags |= flagsFor(k)
		}
	}
	if len(values) == 0 {
		e.styled = nil
	} else {
		e.styled = values
	}
	if flags != 0 {
		tracer().Debugf("styles of %v changed", e)
		e.MarkDirty(flags)
		return true
	}
	return false
}

func (e *Element) propertyChanged(key string, flags Flags) {
	e.MarkDirty(flags)
	e.owner.notify(Change{Target: e, Property: key})
}

func flagsFor(key string) Flags {
	if style.CategoryOf(key) == style.LayoutProperty {
		return LayoutChanged | ContentChanged
	}
	return ContentChanged
}
