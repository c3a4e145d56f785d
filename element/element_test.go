package element

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uicascade/style"
	"github.com/npillmayer/uicascade/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	changes []Change
}

func (r *recorder) OnChange(c Change) {
	r.changes = append(r.changes, c)
}

// window
// ├── button[primary]
// │   └── label
// └── panel
func buildTree() (*Tree, map[string]*Element) {
	m := map[string]*Element{
		"window": New("window"),
		"button": New("button", "primary"),
		"label":  New("label"),
		"panel":  New("panel"),
	}
	m["button"].Add(m["label"])
	m["window"].Add(m["button"]).Add(m["panel"])
	return NewTree(m["window"]), m
}

func TestTreeStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uicascade.element")
	defer teardown()
	//
	tr, m := buildTree()
	t.Logf("tree =\n%s", tr.Dump())
	require.NoError(t, tr.Check())
	assert.Equal(t, 2, m["label"].Depth())
	assert.Equal(t, m["button"], m["label"].Parent())
	assert.Equal(t, tr, m["label"].Tree())
	var kinds []Kind
	for e := range tr.Root().PreOrder() {
		kinds = append(kinds, e.Kind())
	}
	assert.Equal(t, []Kind{"window", "button", "label", "panel"}, kinds)
	assert.True(t, m["window"].Contains(m["label"]))
	assert.False(t, m["panel"].Contains(m["label"]))
}

func TestNewTreeForNonRootPanics(t *testing.T) {
	_, m := buildTree()
	assert.Panics(t, func() { NewTree(m["label"]) })
}

func TestChangeEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uicascade.element")
	defer teardown()
	//
	tr, m := buildTree()
	rec := &recorder{}
	unregister := tr.Observe(rec)
	//
	icon := New("icon")
	m["panel"].Add(icon)
	m["label"].AddTag("bold")
	m["label"].AddTag("bold") // no change
	m["button"].SetPressed(true)
	m["button"].SetFocused(true)
	m["label"].Set(style.Colour, "red")
	icon.Remove()
	require.Len(t, rec.changes, 6)
	assert.Equal(t, Change{Target: icon, Tree: ElementAdded}, rec.changes[0])
	assert.Equal(t, Change{Target: m["label"], Property: TagsProperty}, rec.changes[1])
	assert.Equal(t, Change{Target: m["button"], Input: MousePress}, rec.changes[2])
	assert.Equal(t, Change{Target: m["button"], Input: Focus}, rec.changes[3])
	assert.Equal(t, Change{Target: m["label"], Property: style.Colour}, rec.changes[4])
	assert.Equal(t, Change{Target: icon, Tree: ElementRemoved}, rec.changes[5])
	assert.Nil(t, icon.Tree())
	// detached elements do not report
	icon.Set(style.Colour, "blue")
	unregister()
	m["label"].Set(style.Colour, "green")
	assert.Len(t, rec.changes, 6)
}

func TestEffectiveProperty(t *testing.T) {
	_, m := buildTree()
	l := m["label"]
	l.Set(style.Colour, "red")
	p, ok := l.Get(style.Colour)
	require.True(t, ok)
	assert.Equal(t, style.Property("red"), p)
	l.ApplyStyles(map[string]style.Property{style.Colour: "blue"})
	p, _ = l.Get(style.Colour)
	assert.Equal(t, style.Property("blue"), p)
	l.ApplyStyles(nil)
	p, _ = l.Get(style.Colour)
	assert.Equal(t, style.Property("red"), p)
	_, ok = l.Styled(style.Colour)
	assert.False(t, ok)
}

func TestDirtyPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uicascade.element")
	defer teardown()
	//
	tr, m := buildTree()
	tr.Root().ClearDirty()
	m["label"].Set(style.Colour, "red") // content only
	assert.Equal(t, ContentChanged, m["label"].Dirty())
	assert.Equal(t, ChildContentChanged, m["button"].Dirty())
	assert.Equal(t, ChildContentChanged, m["window"].Dirty())
	assert.Equal(t, Flags(0), m["panel"].Dirty())
	m["label"].Set(style.FontSize, "12") // layout
	assert.Equal(t, ContentChanged|LayoutChanged, m["label"].Dirty())
	assert.Equal(t, ChildContentChanged|ChildLayoutChanged, m["button"].Dirty())
	assert.Equal(t, ChildContentChanged|ChildLayoutChanged, m["window"].Dirty())
}

func TestDirtyPropagationStopsAtDirtyAncestor(t *testing.T) {
	tr, m := buildTree()
	tr.Root().ClearDirty()
	m["button"].dirty = ChildContentChanged // pretend an earlier propagation
	m["label"].MarkDirty(ContentChanged)
	assert.Equal(t, Flags(0), m["window"].Dirty(), "propagation must stop at dirty button")
	assert.Equal(t, "{content}", m["label"].Dirty().String())
}

func TestCheckDetectsNodesBypassingElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uicascade.element")
	defer teardown()
	//
	tr, m := buildTree()
	require.NoError(t, tr.Check())
	stray := New("label")
	m["panel"].Node().AddChild(stray.Node()) // no Change event, no owner
	err := tr.Check()
	require.Error(t, err)
	assert.True(t, errors.Is(err, tree.ErrInconsistentTree))
	assert.Nil(t, stray.Tree())
}
