package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/benoitkugler/webrender/css/parser"
	"github.com/npillmayer/tyse/core/dimen"
)

// Color interprets a property value as a colour, given in CSS colour syntax
// (named colours, hex notation, rgb(), rgba(), hsl(), …).
// "currentColor" depends on context and is rejected.
func (p Property) Color() (color.Color, error) {
	c := parser.ParseColorString(strings.TrimSpace(string(p)))
	switch c.Type {
	case parser.ColorInvalid:
		return nil, fmt.Errorf("not a colour: %q", p)
	case parser.ColorCurrentColor:
		return nil, fmt.Errorf("colour %q depends on context", p)
	}
	return color.NRGBA{
		R: channel(c.RGBA.R),
		G: channel(c.RGBA.G),
		B: channel(c.RGBA.B),
		A: channel(c.RGBA.A),
	}, nil
}

// channel converts a colour channel in [0…1] to 8 bit.
func channel(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 0xff
	}
	return uint8(f*0xff + 0.5)
}

// Length interprets a property value as a length. Units are CSS units as
// understood by dimen.Parse (pt, mm, cm, in, px, bp, sp) or a percentage, in
// which case percent is true and d holds the percentage value. A value
// without a unit is taken as points.
//
// dimen.Parse accepts integral values only. Fractional values are accepted
// in points, with an optional unit suffix "pt" (e.g. "12.5pt").
func (p Property) Length() (d dimen.DU, percent bool, err error) {
	s := strings.TrimSpace(string(p))
	if _, err := strconv.Atoi(s); err == nil {
		s += "pt"
	}
	if d, percent, err = dimen.Parse(s); err == nil {
		return d, percent, nil
	}
	f, ferr := strconv.ParseFloat(strings.TrimSuffix(s, "pt"), 64)
	if ferr != nil {
		return 0, false, fmt.Errorf("not a dimension: %q: %w", p, err)
	}
	return dimen.DU(f * float64(dimen.PT)), false, nil
}

// Dimen interprets a property value as an absolute length (see Length).
// Percentages are rejected.
func (p Property) Dimen() (dimen.DU, error) {
	d, percent, err := p.Length()
	if err != nil {
		return 0, err
	}
	if percent {
		return 0, fmt.Errorf("not an absolute dimension: %q", p)
	}
	return d, nil
}
