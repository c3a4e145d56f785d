package selector

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/npillmayer/uicascade/element"
	"github.com/npillmayer/uicascade/tree"
)

// --- All -------------------------------------------------------------------

// AllSelector matches every element. Its tree-walk order, pre-order, is the
// canonical order all other selectors reproduce.
type AllSelector struct {
	notifier
}

// All creates a selector matching every element.
func All() *AllSelector {
	return &AllSelector{}
}

var all = All()

// Filter yields every element of the subtree rooted at root, in pre-order.
func (s *AllSelector) Filter(root *element.Element) iter.Seq[*element.Element] {
	if root == nil {
		return func(func(*element.Element) bool) {}
	}
	return elementsOf(tree.Filter(root.Node().PreOrder(), tree.Whatever[*element.Element]()))
}

// FilterOrdered returns its input unchanged.
func (s *AllSelector) FilterOrdered(in iter.Seq[*element.Element]) iter.Seq[*element.Element] {
	return in
}

// SupportsOrdered is true.
func (s *AllSelector) SupportsOrdered() bool { return true }

// Match is always true.
func (s *AllSelector) Match(*element.Element) bool { return true }

// NeedsReevaluation returns AddedElement for inserted elements, None otherwise.
func (s *AllSelector) NeedsReevaluation(_ *element.Element, _ string, tc element.TreeChange,
	_ element.InputChange) Severity {
	return treeChangeOnly(tc)
}

func (s *AllSelector) String() string { return "*" }

// --- Tags ------------------------------------------------------------------

// TagSelector matches elements whose tag set is a superset of the selector's
// required tags.
type TagSelector struct {
	notifier
	required map[string]struct{}
	fixed    bool
}

// Tags creates a tag selector with a mutable set of required tags.
func Tags(tags ...string) *TagSelector {
	s := &TagSelector{required: make(map[string]struct{}, len(tags))}
	for _, t := range tags {
		s.required[t] = struct{}{}
	}
	return s
}

// FixedTags creates a tag selector whose required tags may not be changed.
func FixedTags(tags ...string) *TagSelector {
	s := Tags(tags...)
	s.fixed = true
	return s
}

// Required returns the required tags, sorted.
func (s *TagSelector) Required() []string {
	return sortedKeys(s.required)
}

// Add adds a required tag and notifies listeners.
func (s *TagSelector) Add(tag string) error {
	if s.fixed {
		return fmt.Errorf("%w: cannot add tag %q to %v", ErrImmutable, tag, s)
	}
	if _, ok := s.required[tag]; !ok {
		s.required[tag] = struct{}{}
		s.notify(s)
	}
	return nil
}

// Remove removes a required tag and notifies listeners.
func (s *TagSelector) Remove(tag string) error {
	if s.fixed {
		return fmt.Errorf("%w: cannot remove tag %q from %v", ErrImmutable, tag, s)
	}
	if _, ok := s.required[tag]; ok {
		delete(s.required, tag)
		s.notify(s)
	}
	return nil
}

// Filter yields the elements below root carrying all required tags.
func (s *TagSelector) Filter(root *element.Element) iter.Seq[*element.Element] {
	return filterTree(root, s.Match)
}

// FilterOrdered yields the elements of in matching s, preserving their order.
func (s *TagSelector) FilterOrdered(in iter.Seq[*element.Element]) iter.Seq[*element.Element] {
	return filterSeq(in, s.Match)
}

// SupportsOrdered is true. Matching depends on the element alone.
func (s *TagSelector) SupportsOrdered() bool { return true }

// Match tests if e carries all required tags.
func (s *TagSelector) Match(e *element.Element) bool {
	return e.HasTags(s.required)
}

// NeedsReevaluation returns ChangedElement if the tag set of target changed or
// an element has been added. Removal cannot introduce false matches.
func (s *TagSelector) NeedsReevaluation(_ *element.Element, property string, tc element.TreeChange,
	_ element.InputChange) Severity {
	if property == element.TagsProperty || tc == element.ElementAdded {
		return ChangedElement
	}
	return None
}

func (s *TagSelector) String() string {
	return "." + strings.Join(s.Required(), ".")
}

// --- Types -----------------------------------------------------------------

// TypeSelector matches elements by kind.
type TypeSelector struct {
	notifier
	kinds map[element.Kind]struct{}
	fixed bool
}

// Types creates a type selector with a mutable set of element kinds.
func Types(kinds ...element.Kind) *TypeSelector {
	s := &TypeSelector{kinds: make(map[element.Kind]struct{}, len(kinds))}
	for _, k := range kinds {
		s.kinds[k] = struct{}{}
	}
	return s
}

// FixedTypes creates a type selector whose set of kinds may not be changed.
func FixedTypes(kinds ...element.Kind) *TypeSelector {
	s := Types(kinds...)
	s.fixed = true
	return s
}

// Add adds an element kind and notifies listeners.
func (s *TypeSelector) Add(kind element.Kind) error {
	if s.fixed {
		return fmt.Errorf("%w: cannot add kind %q to %v", ErrImmutable, kind, s)
	}
	if _, ok := s.kinds[kind]; !ok {
		s.kinds[kind] = struct{}{}
		s.notify(s)
	}
	return nil
}

// Remove removes an element kind and notifies listeners.
func (s *TypeSelector) Remove(kind element.Kind) error {
	if s.fixed {
		return fmt.Errorf("%w: cannot remove kind %q from %v", ErrImmutable, kind, s)
	}
	if _, ok := s.kinds[kind]; ok {
		delete(s.kinds, kind)
		s.notify(s)
	}
	return nil
}

// Filter yields the elements below root of one of the selector's kinds.
func (s *TypeSelector) Filter(root *element.Element) iter.Seq[*element.Element] {
	return filterTree(root, s.Match)
}

// FilterOrdered yields the elements of in matching s, preserving their order.
func (s *TypeSelector) FilterOrdered(in iter.Seq[*element.Element]) iter.Seq[*element.Element] {
	return filterSeq(in, s.Match)
}

// SupportsOrdered is true. Matching depends on the element alone.
func (s *TypeSelector) SupportsOrdered() bool { return true }

// Match tests the kind of e.
func (s *TypeSelector) Match(e *element.Element) bool {
	_, ok := s.kinds[e.Kind()]
	return ok
}

// NeedsReevaluation returns AddedElement for inserted elements, None otherwise.
// The kind of an element never changes.
func (s *TypeSelector) NeedsReevaluation(_ *element.Element, _ string, tc element.TreeChange,
	_ element.InputChange) Severity {
	return treeChangeOnly(tc)
}

func (s *TypeSelector) String() string {
	kinds := make([]string, 0, len(s.kinds))
	for k := range s.kinds {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	return strings.Join(kinds, "|")
}

// --- Where -----------------------------------------------------------------

// Predicate tests a single element.
type Predicate func(e *element.Element) bool

// WhereSelector matches elements by a client predicate. As nothing is known
// about the predicate, every property or input change of an element is
// considered to affect it.
//
// Removal of elements is not reported as a reason to re-evaluate, and a
// change is considered to affect the changed element and its subtree only.
// Predicates depending on the tree structure elsewhere (e.g. on the number
// of siblings) are therefore not kept up to date incrementally; clients using
// them have to call Resolve on the cascade explicitly.
type WhereSelector struct {
	notifier
	pred Predicate
	name string
}

// Where creates a selector from a predicate. name is used for debugging only.
func Where(name string, pred Predicate) *WhereSelector {
	if pred == nil {
		pred = func(*element.Element) bool { return false }
	}
	return &WhereSelector{pred: pred, name: name}
}

// Filter yields the elements below root matching the predicate.
func (s *WhereSelector) Filter(root *element.Element) iter.Seq[*element.Element] {
	return filterTree(root, s.pred)
}

// FilterOrdered yields the elements of in matching the predicate.
func (s *WhereSelector) FilterOrdered(in iter.Seq[*element.Element]) iter.Seq[*element.Element] {
	return filterSeq(in, s.pred)
}

// SupportsOrdered is true.
func (s *WhereSelector) SupportsOrdered() bool { return true }

// Match calls the predicate.
func (s *WhereSelector) Match(e *element.Element) bool { return s.pred(e) }

// NeedsReevaluation returns ChangedElement for any property or input change,
// AddedElement for inserted elements.
func (s *WhereSelector) NeedsReevaluation(_ *element.Element, property string, tc element.TreeChange,
	ic element.InputChange) Severity {
	if property != "" || ic != element.NoInputChange {
		return ChangedElement
	}
	return treeChangeOnly(tc)
}

func (s *WhereSelector) String() string { return ":where(" + s.name + ")" }

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	_ Selector = (*AllSelector)(nil)
	_ Selector = (*TagSelector)(nil)
	_ Selector = (*TypeSelector)(nil)
	_ Selector = (*WhereSelector)(nil)
)
