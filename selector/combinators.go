package selector

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/uicascade/element"
)

// --- And -------------------------------------------------------------------

// AndSelector matches the intersection of the matches of two selectors.
type AndSelector struct {
	notifier
	a, b       Selector
	aOrdered   bool // capabilities of operands, cached at construction
	bOrdered   bool
	unregister []Unregister
}

// And creates a selector for the intersection of a and b.
// Re-evaluation requests of both operands are forwarded to the listeners
// of the new selector.
func And(a, b Selector) *AndSelector {
	s := &AndSelector{
		a:        a,
		b:        b,
		aOrdered: a.SupportsOrdered(),
		bOrdered: b.SupportsOrdered(),
	}
	s.unregister = []Unregister{a.Listen(s.forward), b.Listen(s.forward)}
	return s
}

func (s *AndSelector) forward(Selector) {
	s.notify(s)
}

// Release disconnects s from its operands. s must not be used afterwards.
func (s *AndSelector) Release() {
	for _, u := range s.unregister {
		u()
	}
	s.unregister = nil
}

// Operands returns the two operands of s.
func (s *AndSelector) Operands() (Selector, Selector) {
	return s.a, s.b
}

// Filter walks the tree once. If an operand supports ordered filtering, the
// other operand (or AllSelector, if both do) walks the tree and its output is
// filtered by the ordered-capable operand. Otherwise both operands walk the
// tree and the results are intersected.
func (s *AndSelector) Filter(root *element.Element) iter.Seq[*element.Element] {
	switch {
	case s.aOrdered && s.bOrdered:
		return s.b.FilterOrdered(s.a.FilterOrdered(all.Filter(root)))
	case s.bOrdered:
		return s.b.FilterOrdered(s.a.Filter(root))
	case s.aOrdered:
		return s.a.FilterOrdered(s.b.Filter(root))
	}
	return intersect(root, s.a, []Selector{s.b})
}

// FilterOrdered chains both operands. It panics with ErrOrderedUnsupported
// unless both operands support ordered filtering.
func (s *AndSelector) FilterOrdered(in iter.Seq[*element.Element]) iter.Seq[*element.Element] {
	if !s.SupportsOrdered() {
		unsupported(s)
	}
	return s.b.FilterOrdered(s.a.FilterOrdered(in))
}

// SupportsOrdered is true if both operands support ordered filtering.
func (s *AndSelector) SupportsOrdered() bool {
	return s.aOrdered && s.bOrdered
}

// Match tests e against both operands.
func (s *AndSelector) Match(e *element.Element) bool {
	return s.a.Match(e) && s.b.Match(e)
}

// NeedsReevaluation returns the maximum severity of the operands.
func (s *AndSelector) NeedsReevaluation(target *element.Element, property string, tc element.TreeChange,
	ic element.InputChange) Severity {
	return Max(s.a.NeedsReevaluation(target, property, tc, ic),
		s.b.NeedsReevaluation(target, property, tc, ic))
}

func (s *AndSelector) String() string {
	return "(" + toString(s.a) + " & " + toString(s.b) + ")"
}

// --- Compound --------------------------------------------------------------

// CompoundSelector is an N-ary logical AND of selectors. An empty compound
// matches every element.
type CompoundSelector struct {
	notifier
	members    []Selector
	ordered    bool // all members support ordered filtering
	unregister []Unregister
}

// Compound creates a selector for the intersection of the matches of all
// members. Re-evaluation requests of the members are forwarded to the
// listeners of the new selector.
func Compound(members ...Selector) *CompoundSelector {
	s := &CompoundSelector{
		members: append([]Selector(nil), members...),
		ordered: true,
	}
	for _, m := range s.members {
		s.ordered = s.ordered && m.SupportsOrdered()
		s.unregister = append(s.unregister, m.Listen(s.forward))
	}
	return s
}

func (s *CompoundSelector) forward(Selector) {
	s.notify(s)
}

// Release disconnects s from its members. s must not be used afterwards.
func (s *CompoundSelector) Release() {
	for _, u := range s.unregister {
		u()
	}
	s.unregister = nil
}

// Members returns the members of s.
func (s *CompoundSelector) Members() []Selector {
	return append([]Selector(nil), s.members...)
}

// Filter flattens the tree once and applies the ordered filter of every
// member, if all members support this. Otherwise it intersects the
// tree-walk results of all members.
func (s *CompoundSelector) Filter(root *element.Element) iter.Seq[*element.Element] {
	if len(s.members) == 0 {
		return all.Filter(root)
	}
	if s.ordered {
		return s.FilterOrdered(all.Filter(root))
	}
	return intersect(root, s.members[0], s.members[1:])
}

// FilterOrdered applies the ordered filter of every member in sequence.
// It panics with ErrOrderedUnsupported unless all members support ordered
// filtering.
func (s *CompoundSelector) FilterOrdered(in iter.Seq[*element.Element]) iter.Seq[*element.Element] {
	if !s.ordered {
		unsupported(s)
	}
	seq := in
	for _, m := range s.members {
		seq = m.FilterOrdered(seq)
	}
	return seq
}

// SupportsOrdered is true if all members support ordered filtering.
func (s *CompoundSelector) SupportsOrdered() bool {
	return s.ordered
}

// Match tests e against all members.
func (s *CompoundSelector) Match(e *element.Element) bool {
	for _, m := range s.members {
		if !m.Match(e) {
			return false
		}
	}
	return true
}

// NeedsReevaluation returns the maximum severity of all members. An empty
// compound behaves like AllSelector.
func (s *CompoundSelector) NeedsReevaluation(target *element.Element, property string, tc element.TreeChange,
	ic element.InputChange) Severity {
	if len(s.members) == 0 {
		return treeChangeOnly(tc)
	}
	sev := None
	for _, m := range s.members {
		sev = Max(sev, m.NeedsReevaluation(target, property, tc, ic))
	}
	return sev
}

func (s *CompoundSelector) String() string {
	if len(s.members) == 0 {
		return "*"
	}
	parts := make([]string, len(s.members))
	for i, m := range s.members {
		parts[i] = toString(m)
	}
	return "(" + strings.Join(parts, " & ") + ")"
}

// --- Helpers ---------------------------------------------------------------

// intersect walks the tree with every selector of others, collecting sets,
// and then yields the tree-walk results of first which are in all sets.
func intersect(root *element.Element, first Selector, others []Selector) iter.Seq[*element.Element] {
	return func(yield func(*element.Element) bool) {
		sets := make([]map[*element.Element]struct{}, len(others))
		for i, o := range others {
			sets[i] = make(map[*element.Element]struct{})
			for e := range o.Filter(root) {
				sets[i][e] = struct{}{}
			}
		}
	next:
		for e := range first.Filter(root) {
			for _, set := range sets {
				if _, ok := set[e]; !ok {
					continue next
				}
			}
			if !yield(e) {
				return
			}
		}
	}
}

func toString(s Selector) string {
	if str, ok := s.(fmt.Stringer); ok {
		return str.String()
	}
	return "?"
}

var (
	_ Selector = (*AndSelector)(nil)
	_ Selector = (*CompoundSelector)(nil)
)
