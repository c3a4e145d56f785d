package tree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump returns a printable representation of the subtree rooted at node.
// label converts a payload into a node label; if label is nil, the payload
// is formatted with %v.
//
// Dump is intended for debugging and test output.
func Dump[T comparable](node *Node[T], label func(T) string) string {
	if node == nil {
		return "<empty tree>"
	}
	if label == nil {
		label = func(p T) string { return fmt.Sprintf("%v", p) }
	}
	tp := treeprint.New()
	tp.SetValue(label(node.Payload))
	dumpChildren(tp, node, label)
	return tp.String()
}

func dumpChildren[T comparable](tp treeprint.Tree, node *Node[T], label func(T) string) {
	for _, ch := range node.children {
		if ch.ChildCount() == 0 {
			tp.AddNode(label(ch.Payload))
			continue
		}
		branch := tp.AddBranch(label(ch.Payload))
		dumpChildren(branch, ch, label)
	}
}
