/*
Package tree implements an all-purpose tree type for UI element trees.

The tree supports fairly simple structures: every node carries a payload and
holds an ordered list of children. Each node knows its parent (a plain
back-pointer, used for upward navigation only) and its depth, i.e. the
distance from the root. Depths are recomputed whenever a subtree is
re-parented.

Traversal

Nodes are visited in pre-order: a node comes before its children, children
come in the order of the children list. This is the canonical order for all
clients of this package. Traversals are lazy sequences (iter.Seq), producing
nodes on demand:

   for n := range root.PreOrder() {
       ...
   }

Predicates may be chained onto sequences with Filter, similar in concept to
JQuery, but with a much smaller set of functions.

Concurrency

Trees are not safe for concurrent mutation. All operations are expected to
happen on a single logical thread (usually the UI thread).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uicascade.tree'.
func tracer() tracing.Trace {
	return tracing.Select("uicascade.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("uicascade.tree: "+msg, msgargs...)
		tracer().Errorf(msg)
		panic(msg)
	}
}
