/*
Package element implements the UI element tree the styling engine operates on.

Elements are built on top of a general purpose tree type (package tree).
In a fully object oriented programming language we would subclass the tree
node type, but in Go we resort to composition, thus including a generic tree
node in every element.

Every element has a kind (e.g. "button"), a set of string tags, two input
flags (pressed and focused), a bag of literal property values and a bag of
property values resolved by the cascade. Mutations of an element attached to
a Tree are reported synchronously to the tree's observers as Change events,
and they mark the element dirty (see type Flags).

Concurrency

Element trees are not safe for concurrent use. All mutations and all
evaluations are expected to happen on a single logical thread, usually
the UI thread. Background work (e.g. font preparation) must hand its results
over to the UI thread as ordinary property writes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package element

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uicascade.element'.
func tracer() tracing.Trace {
	return tracing.Select("uicascade.element")
}
