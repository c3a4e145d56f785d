package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a
// ├── b
// │   ├── d
// │   └── e
// └── c
//     └── f
func buildTestTree() (*Node[string], map[string]*Node[string]) {
	nodes := map[string]*Node[string]{}
	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		nodes[s] = NewNode(s)
	}
	nodes["a"].AddChild(nodes["b"]).AddChild(nodes["c"])
	nodes["b"].AddChild(nodes["d"]).AddChild(nodes["e"])
	nodes["c"].AddChild(nodes["f"])
	return nodes["a"], nodes
}

func payloads(nodes []*Node[string]) []string {
	r := make([]string, len(nodes))
	for i, n := range nodes {
		r[i] = n.Payload
	}
	return r
}

func TestPreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uicascade.tree")
	defer teardown()
	//
	root, _ := buildTestTree()
	t.Logf("tree =\n%s", Dump(root, nil))
	assert.Equal(t, []string{"a", "b", "d", "e", "c", "f"}, payloads(root.Flatten()))
}

func TestPreOrderEarlyStop(t *testing.T) {
	root, _ := buildTestTree()
	var seen []string
	for n := range root.PreOrder() {
		seen = append(seen, n.Payload)
		if n.Payload == "d" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b", "d"}, seen)
}

func TestDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uicascade.tree")
	defer teardown()
	//
	root, nodes := buildTestTree()
	assert.Equal(t, 0, root.Depth())
	assert.Equal(t, 1, nodes["c"].Depth())
	assert.Equal(t, 2, nodes["f"].Depth())
	// re-parent c below d
	nodes["c"].Isolate()
	assert.Equal(t, 0, nodes["c"].Depth())
	assert.Equal(t, 1, nodes["f"].Depth())
	nodes["d"].AddChild(nodes["c"])
	assert.Equal(t, 3, nodes["c"].Depth())
	assert.Equal(t, 4, nodes["f"].Depth())
	require.NoError(t, root.Check())
	assert.Equal(t, []string{"a", "b", "d", "c", "f", "e"}, payloads(root.Flatten()))
}

func TestInsertChildAt(t *testing.T) {
	root, nodes := buildTestTree()
	x := NewNode("x")
	root.InsertChildAt(1, x)
	assert.Equal(t, 1, root.IndexOfChild(x))
	assert.Equal(t, nodes["c"], root.Children()[2])
	assert.Equal(t, 1, x.Depth())
}

func TestAddAttachedChildPanics(t *testing.T) {
	_, nodes := buildTestTree()
	assert.Panics(t, func() {
		nodes["c"].AddChild(nodes["d"])
	})
	assert.Panics(t, func() {
		nodes["d"].AddChild(nodes["a"])
	})
}

func TestCheckInconsistentTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uicascade.tree")
	defer teardown()
	//
	root, nodes := buildTestTree()
	require.NoError(t, root.Check())
	nodes["e"].depth = 7
	err := root.Check()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentTree))
	nodes["e"].depth = 2
	nodes["f"].parent = nodes["b"] // b does not list f
	assert.ErrorIs(t, root.Check(), ErrInconsistentTree)
}

func TestAncestors(t *testing.T) {
	_, nodes := buildTestTree()
	var anc []string
	for n := range nodes["e"].Ancestors() {
		anc = append(anc, n.Payload)
	}
	assert.Equal(t, []string{"b", "a"}, anc)
	assert.True(t, nodes["a"].IsAncestorOf(nodes["e"]))
	assert.False(t, nodes["c"].IsAncestorOf(nodes["e"]))
	assert.Equal(t, nodes["a"], nodes["f"].Root())
}

func TestFilter(t *testing.T) {
	root, _ := buildTestTree()
	leafs := Filter(root.PreOrder(), func(n *Node[string]) bool { return n.ChildCount() == 0 })
	var r []string
	for n := range leafs {
		r = append(r, n.Payload)
	}
	assert.Equal(t, []string{"d", "e", "f"}, r)
	all := 0
	for range Filter(root.PreOrder(), Whatever[string]()) {
		all++
	}
	assert.Equal(t, 6, all)
}
