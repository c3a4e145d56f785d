/*
Package selector implements selectors, i.e. predicate-like objects which
determine the set of elements a style applies to.

Selectors compose like a small query language. Primitives are

   All()              // every element
   Tags(t…)           // elements whose tag set is a superset of t…
   Types(k…)          // elements of one of the kinds k…
   Clicked(invert)    // elements pressed, or below a pressed element
   Focused(invert)    // elements focused, or below a focused element
   Where(predicate)   // elements matching a client predicate

and combinators are And(a, b) and Compound(s…), the latter being an N-ary
logical AND.

Matching strategies

Every selector can match against a tree, walking it in pre-order (Filter).
The primitives of this package can additionally filter an already produced,
ordered sequence of elements (FilterOrdered). Selectors implemented by
clients may decline to do so, and combinators then fall back to
intersecting tree walks. This lets combinators chain their operands in a
single traversal: one operand walks the tree, the others filter its output.
Both strategies produce identical results. Whether a selector supports
ordered filtering is fixed at construction time; calling FilterOrdered on a
selector which does not support it is a programmer error and panics with
ErrOrderedUnsupported.

Re-evaluation

Given a change of the element tree, NeedsReevaluation classifies how much
re-matching the change demands (see type Severity). Selectors with mutable
criteria (Tags, Types) notify their listeners when the criteria change;
combinators forward these notifications from their operands.

Selectors are not safe for concurrent use. Listener registration must not
happen while an evaluation is in progress, and a listener must not mutate
the criteria of the selector which notified it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uicascade.selector'.
func tracer() tracing.Trace {
	return tracing.Select("uicascade.selector")
}
