package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleLaterEntriesWin(t *testing.T) {
	st := NewStyle(KV(Colour, "red"), KV(FontSize, "30"), KV("Colour", "green"))
	p, ok := st.Get(Colour)
	require.True(t, ok)
	assert.Equal(t, Property("green"), p)
	assert.Equal(t, []string{Colour, FontSize}, st.Keys())
	assert.False(t, st.Touches(Rounding))
	assert.Equal(t, 3, st.Len())
}

func TestStyleWithDoesNotAlias(t *testing.T) {
	base := NewStyle(KV(Colour, "red"))
	a := base.With(Rounding, "4")
	b := base.With(Rounding, "8")
	pa, _ := a.Get(Rounding)
	pb, _ := b.Get(Rounding)
	assert.Equal(t, Property("4"), pa)
	assert.Equal(t, Property("8"), pb)
	assert.Equal(t, 1, base.Len())
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uicascade.style")
	defer teardown()
	//
	st, err := Parse("Rounding: 10; font-size: 30pt; colour: red !important")
	require.NoError(t, err)
	t.Logf("style = %s", st)
	assert.Equal(t, []string{Rounding, FontSize, Colour}, st.Keys())
	p, _ := st.Get(FontSize)
	assert.Equal(t, Property("30pt"), p)
	p, _ = st.Get(Colour)
	assert.Equal(t, Property("red"), p)
}

func TestDimen(t *testing.T) {
	d, err := Property("10").Dimen()
	require.NoError(t, err)
	assert.Equal(t, dimen.PT*10, d)
	d, err = Property("12pt").Dimen()
	require.NoError(t, err)
	assert.Equal(t, dimen.PT*12, d)
	d, err = Property("2.5pt").Dimen()
	require.NoError(t, err)
	assert.Equal(t, dimen.DU(2.5*float64(dimen.PT)), d)
	d, err = Property(" 3mm").Dimen()
	require.NoError(t, err)
	assert.Equal(t, dimen.MM*3, d)
	_, err = Property("auto").Dimen()
	assert.Error(t, err)
	_, err = Property("50%").Dimen()
	assert.Error(t, err, "percentages are no absolute dimensions")
}

func TestLength(t *testing.T) {
	d, percent, err := Property("80%").Length()
	require.NoError(t, err)
	assert.True(t, percent)
	assert.Equal(t, dimen.DU(80), d)
	d, percent, err = Property("2mm").Length()
	require.NoError(t, err)
	assert.False(t, percent)
	assert.Equal(t, dimen.MM*2, d)
	_, _, err = Property("2.5mm").Length()
	assert.Error(t, err, "fractional values are accepted in points only")
}

func TestColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uicascade.style")
	defer teardown()
	//
	c, err := Property("Red").Color()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, c)
	c, err = Property("#0f0").Color()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0xff, 0, 0xff}, c)
	c, err = Property("rgb(17, 34, 51)").Color()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x11, 0x22, 0x33, 0xff}, c)
	c, err = Property("rgba(17, 34, 51, 0.5)").Color()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x11, 0x22, 0x33, 0x80}, c)
	c, err = Property("transparent").Color()
	require.NoError(t, err)
	_, _, _, a := c.RGBA()
	assert.Equal(t, uint32(0), a)
	_, err = Property("currentColor").Color()
	assert.Error(t, err)
	_, err = Property("chartreuse-ish").Color()
	assert.Error(t, err)
}

func TestCategory(t *testing.T) {
	assert.Equal(t, LayoutProperty, CategoryOf("Font-Size"))
	assert.Equal(t, ContentProperty, CategoryOf(Colour))
	assert.Equal(t, ContentProperty, CategoryOf("unheard-of"))
}
