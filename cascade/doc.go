/*
Package cascade resolves style sets onto an element tree.

Style sets are collections of (selector, style) bindings, attached to
elements. A style set is scoped to the subtree rooted at the element it is
attached to. For every element and property, the Resolver determines the
effective value:

   - Among all bindings whose selector matches the element, the binding of
     the style set attached to the nearest ancestor-or-self element wins.
   - Within a style set, later bindings override earlier ones.
   - If no binding touches a property, the element's literal value applies.

Incremental resolution

The resolver caches the match set of every binding. It observes the element
tree and, for every change, asks each concerned selector how much
re-matching is required (see selector.Severity): none at all, testing the
inserted elements only, or re-testing the changed region. Only elements whose
membership in a match set flipped are re-resolved. Changes of a selector's
criteria (e.g. adding a required tag) re-match the full scope of every
binding using the selector.

Like the element tree, a Resolver is not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uicascade.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("uicascade.cascade")
}
