package cascade

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/uicascade/config"
	"github.com/npillmayer/uicascade/element"
	"github.com/npillmayer/uicascade/selector"
	"github.com/npillmayer/uicascade/style"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrNotInTree is returned if a style set is attached to an element which is
// not part of the resolver's tree.
var ErrNotInTree = errors.New("element is not part of the tree")

// Resolver computes the effective property values of the elements of a tree
// and keeps them up to date as the tree changes.
type Resolver struct {
	tree      *element.Tree
	attached  map[*element.Element]*attachment
	unobserve func()
	metrics   *Metrics
	checkTree bool
}

// attachment is a style set attached to an element, the scope.
type attachment struct {
	scope *element.Element
	set   *StyleSet
	rules []*rule
}

// rule is a binding of an attached style set, together with its cached
// match set.
type rule struct {
	Binding
	att      *attachment
	matches  map[*element.Element]struct{}
	unlisten selector.Unregister
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMetrics lets a resolver count its work.
func WithMetrics(m *Metrics) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}

// WithTreeCheck switches verification of the tree's structural invariants
// before resolving the full tree. It is on by default.
func WithTreeCheck(check bool) Option {
	return func(r *Resolver) {
		r.checkTree = check
	}
}

// WithConfig applies a resolver configuration.
func WithConfig(c config.ResolverConfig) Option {
	return func(r *Resolver) {
		r.checkTree = c.CheckTree
	}
}

// New creates a resolver for a tree. The resolver observes the tree until
// Close is called.
func New(t *element.Tree, opts ...Option) *Resolver {
	r := &Resolver{
		tree:      t,
		attached:  make(map[*element.Element]*attachment),
		checkTree: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.unobserve = t.Observe(r)
	return r
}

// FromConfig creates a resolver configured by c. Trace levels are applied,
// and if metrics are enabled they are registered with reg.
func FromConfig(t *element.Tree, c config.Config, reg prometheus.Registerer) (*Resolver, error) {
	if err := c.Apply(); err != nil {
		return nil, err
	}
	opts := []Option{WithConfig(c.Resolver)}
	if c.Metrics.Enabled {
		m, err := NewMetrics(c.Metrics.Namespace, reg)
		if err != nil {
			return nil, fmt.Errorf("cannot create resolver metrics: %w", err)
		}
		opts = append(opts, WithMetrics(m))
	}
	return New(t, opts...), nil
}

// Close stops observing the tree and releases all selector listeners.
// Resolved values already written to elements are kept.
func (r *Resolver) Close() {
	r.unobserve()
	for _, att := range r.attached {
		att.release()
	}
	r.attached = make(map[*element.Element]*attachment)
}

// Tree returns the tree r resolves.
func (r *Resolver) Tree() *element.Tree {
	return r.tree
}

// --- Style sets ------------------------------------------------------------

// Attach attaches a style set to an element, replacing a style set attached
// earlier. The style set becomes immutable. A nil style set detaches the
// current one. The subtree of e is re-resolved immediately.
func (r *Resolver) Attach(e *element.Element, ss *StyleSet) error {
	if e == nil {
		return fmt.Errorf("%w: nil element", ErrNotInTree)
	}
	if ss != nil && e.Tree() != r.tree {
		return fmt.Errorf("%w: %v", ErrNotInTree, e)
	}
	if old, ok := r.attached[e]; ok {
		tracer().Debugf("cascade: detaching style set from %v", e)
		old.release()
		delete(r.attached, e)
	}
	if ss != nil {
		tracer().Debugf("cascade: attaching style set %v to %v", ss, e)
		ss.Freeze()
		att := &attachment{scope: e, set: ss}
		for _, b := range ss.bindings {
			ru := &rule{Binding: b, att: att}
			ru.rebuild(r.metrics)
			ru.unlisten = b.Selector.Listen(func(selector.Selector) {
				r.criteriaChanged(ru)
			})
			att.rules = append(att.rules, ru)
		}
		r.attached[e] = att
	}
	r.resolveSubtree(e)
	return nil
}

// Detach removes the style set attached to e, if any. Every property the
// style set supplied reverts to the value of the next-nearest binding, or to
// the literal value.
func (r *Resolver) Detach(e *element.Element) {
	_ = r.Attach(e, nil)
}

// StyleSet returns the style set attached to e, or nil.
func (r *Resolver) StyleSet(e *element.Element) *StyleSet {
	if att, ok := r.attached[e]; ok {
		return att.set
	}
	return nil
}

func (att *attachment) release() {
	for _, ru := range att.rules {
		if ru.unlisten != nil {
			ru.unlisten()
			ru.unlisten = nil
		}
	}
}

// --- Resolution ------------------------------------------------------------

// Effective returns the effective value of a property of e.
func (r *Resolver) Effective(e *element.Element, key string) (style.Property, bool) {
	return e.Get(key)
}

// Applicable returns the bindings matching e, in order of precedence
// (winning binding first).
func (r *Resolver) Applicable(e *element.Element) []Binding {
	var bindings []Binding
	for a := e; a != nil; a = a.Parent() {
		att, ok := r.attached[a]
		if !ok {
			continue
		}
		for i := len(att.rules) - 1; i >= 0; i-- {
			if att.rules[i].contains(e) {
				bindings = append(bindings, att.rules[i].Binding)
			}
		}
	}
	return bindings
}

// resolveElement computes the effective property values of e and writes them
// to e. Nearer style sets win over farther ones, later bindings over earlier
// ones, and later entries of a style over earlier ones.
func (r *Resolver) resolveElement(e *element.Element) {
	var values map[string]style.Property
	for a := e; a != nil; a = a.Parent() {
		att, ok := r.attached[a]
		if !ok {
			continue
		}
		for i := len(att.rules) - 1; i >= 0; i-- {
			ru := att.rules[i]
			if !ru.contains(e) {
				continue
			}
			props := ru.Style.Properties()
			for j := len(props) - 1; j >= 0; j-- {
				if values == nil {
					values = make(map[string]style.Property)
				}
				if _, set := values[props[j].Key]; !set {
					values[props[j].Key] = props[j].Value
				}
			}
		}
	}
	e.ApplyStyles(values)
}

func (r *Resolver) resolveSubtree(root *element.Element) {
	n := 0
	for e := range root.PreOrder() {
		r.resolveElement(e)
		n++
	}
	r.metrics.resolve(n)
}

func (r *Resolver) resolveSet(elements map[*element.Element]struct{}) {
	for e := range elements {
		r.resolveElement(e)
	}
	r.metrics.resolve(len(elements))
}

// ScopeKind is the extent of an explicit resolution.
type ScopeKind uint8

// Kinds of resolution scopes.
const (
	ElementScope ScopeKind = iota // a single element
	SubtreeScope                  // an element and its descendants, e.g. an inserted subtree
	TreeScope                     // the whole tree
)

// Scope is the extent of an explicit resolution.
type Scope struct {
	Kind    ScopeKind
	Element *element.Element // unused for TreeScope
}

// Single is the scope of a single element.
func Single(e *element.Element) Scope {
	return Scope{Kind: ElementScope, Element: e}
}

// Subtree is the scope of an element and its descendants.
func Subtree(e *element.Element) Scope {
	return Scope{Kind: SubtreeScope, Element: e}
}

// WholeTree is the scope of the whole tree.
func WholeTree() Scope {
	return Scope{Kind: TreeScope}
}

// Resolve re-matches all bindings concerned with a scope and recomputes the
// effective property values of the scope's elements. Usually this is not
// necessary, as the resolver keeps track of changes of the tree by itself.
//
// Resolving the whole tree checks the tree's consistency first (unless
// switched off), and returns an error wrapping tree.ErrInconsistentTree if
// the check fails.
func (r *Resolver) Resolve(s Scope) error {
	switch s.Kind {
	case TreeScope:
		if r.checkTree {
			if err := r.tree.Check(); err != nil {
				tracer().Errorf("cascade: %v", err)
				return fmt.Errorf("cannot resolve styles: %w", err)
			}
		}
		for _, att := range r.attached {
			for _, ru := range att.rules {
				ru.rebuild(r.metrics)
			}
		}
		r.resolveSubtree(r.tree.Root())
		return nil
	case SubtreeScope, ElementScope:
		e := s.Element
		if e == nil || e.Tree() != r.tree {
			return fmt.Errorf("%w: %v", ErrNotInTree, e)
		}
		for _, att := range r.attached {
			for _, ru := range att.rules {
				switch {
				case s.Kind == ElementScope && att.scope.Contains(e):
					ru.retest(e, ru.Selector.Match(e), nil)
					r.metrics.rematch(1)
				case s.Kind == SubtreeScope && att.scope.Contains(e):
					ru.rematchRegion(e, r.metrics)
				case s.Kind == SubtreeScope && e.IsAncestorOf(att.scope):
					ru.rebuild(r.metrics)
				}
			}
		}
		if s.Kind == ElementScope {
			r.resolveElement(e)
			r.metrics.resolve(1)
		} else {
			r.resolveSubtree(e)
		}
		return nil
	}
	return fmt.Errorf("unknown resolution scope %d", s.Kind)
}

// ResolveAll resolves the whole tree.
func (r *Resolver) ResolveAll() error {
	return r.Resolve(WholeTree())
}

// --- Match sets ------------------------------------------------------------

func (ru *rule) contains(e *element.Element) bool {
	_, ok := ru.matches[e]
	return ok
}

// rebuild re-matches the rule against its full scope and returns the
// elements whose membership flipped.
func (ru *rule) rebuild(m *Metrics) []*element.Element {
	set := make(map[*element.Element]struct{})
	for e := range ru.Selector.Filter(ru.att.scope) {
		set[e] = struct{}{}
	}
	var flipped []*element.Element
	n := 0
	for e := range ru.att.scope.PreOrder() {
		_, was := ru.matches[e]
		_, is := set[e]
		if was != is {
			flipped = append(flipped, e)
		}
		n++
	}
	ru.matches = set
	m.rematch(n)
	return flipped
}

// retest sets the membership of a single element, appending e to flipped if
// its membership changed.
func (ru *rule) retest(e *element.Element, is bool, flipped []*element.Element) []*element.Element {
	_, was := ru.matches[e]
	if was == is {
		return flipped
	}
	if is {
		ru.matches[e] = struct{}{}
	} else {
		delete(ru.matches, e)
	}
	return append(flipped, e)
}

// rematchRegion re-matches the region affected by a change of target: the
// path from target up to the rule's scope, and the subtree of target.
// target has to be inside the scope.
func (ru *rule) rematchRegion(target *element.Element, m *Metrics) []*element.Element {
	var flipped []*element.Element
	n := 0
	if target != ru.att.scope {
		for a := range target.Ancestors() {
			flipped = ru.retest(a, ru.Selector.Match(a), flipped)
			n++
			if a == ru.att.scope {
				break
			}
		}
	}
	set := make(map[*element.Element]struct{})
	for e := range ru.Selector.Filter(target) {
		set[e] = struct{}{}
	}
	for e := range target.PreOrder() {
		_, is := set[e]
		flipped = ru.retest(e, is, flipped)
		n++
	}
	m.rematch(n)
	return flipped
}

// extend adds the matching elements of an inserted subtree.
func (ru *rule) extend(target *element.Element, m *Metrics) {
	n := 0
	for e := range ru.Selector.Filter(target) {
		ru.matches[e] = struct{}{}
		n++
	}
	m.rematch(n)
}

// drop removes the elements of a detached subtree.
func (ru *rule) drop(target *element.Element) {
	for e := range target.PreOrder() {
		delete(ru.matches, e)
	}
}

// --- Incremental invalidation ----------------------------------------------

// OnChange is called by the tree for every mutation of an element. It
// re-matches the bound selectors in the region the change may affect and
// re-resolves the elements whose match state flipped. Inserted subtrees are
// always resolved.
func (r *Resolver) OnChange(c element.Change) {
	target := c.Target
	if target == nil {
		return
	}
	if c.Tree == element.ElementRemoved {
		for _, att := range r.attached {
			if target.Contains(att.scope) {
				continue // travels with the detached subtree
			}
			for _, ru := range att.rules {
				r.metrics.reevaluation(selector.SeverityOf(ru.Selector, c))
				ru.drop(target)
			}
		}
		return
	}
	dirty := make(map[*element.Element]struct{})
	mark := func(elements []*element.Element) {
		for _, e := range elements {
			dirty[e] = struct{}{}
		}
	}
	if c.Tree == element.ElementAdded {
		for e := range target.PreOrder() {
			dirty[e] = struct{}{}
		}
	}
	for _, att := range r.attached {
		switch {
		case c.Tree == element.ElementAdded && target.Contains(att.scope):
			// style set arrived with the inserted subtree
			for _, ru := range att.rules {
				ru.rebuild(r.metrics)
			}
		case att.scope.Contains(target):
			for _, ru := range att.rules {
				sev := selector.SeverityOf(ru.Selector, c)
				r.metrics.reevaluation(sev)
				switch sev {
				case selector.AddedElement:
					ru.extend(target, r.metrics)
				case selector.ChangedElement:
					mark(ru.rematchRegion(target, r.metrics))
				}
			}
		case target.IsAncestorOf(att.scope):
			// a change above the scope may be inherited into it
			for _, ru := range att.rules {
				sev := selector.SeverityOf(ru.Selector, c)
				r.metrics.reevaluation(sev)
				if sev == selector.ChangedElement {
					flipped := ru.rebuild(r.metrics)
					mark(flipped)
				}
			}
		}
	}
	if len(dirty) > 0 {
		tracer().Debugf("cascade: %v re-resolves %d elements", c, len(dirty))
		r.resolveSet(dirty)
	}
}

// criteriaChanged is called when the criteria of a bound selector have been
// mutated. The rule is re-matched against its full scope.
func (r *Resolver) criteriaChanged(ru *rule) {
	tracer().Debugf("cascade: selector %v changed", ru.Selector)
	flipped := ru.rebuild(r.metrics)
	if len(flipped) == 0 {
		return
	}
	dirty := make(map[*element.Element]struct{}, len(flipped))
	for _, e := range flipped {
		dirty[e] = struct{}{}
	}
	r.resolveSet(dirty)
}
