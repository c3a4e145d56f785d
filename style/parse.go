package style

import (
	"fmt"

	"github.com/aymerick/douceur/parser"
)

// Parse creates a Style from a declaration block, e.g.
//
//     rounding: 10; font-size: 30pt; colour: red
//
// Declarations keep their order. Importance markers are accepted but ignored,
// as precedence is decided by the cascade alone.
func Parse(block string) (Style, error) {
	decls, err := parser.ParseDeclarations(block)
	if err != nil {
		return Style{}, fmt.Errorf("cannot parse style %q: %w", block, err)
	}
	st := Style{props: make([]KeyValue, 0, len(decls))}
	for _, d := range decls {
		if d.Important {
			tracer().P("key", d.Property).Debugf("style: ignoring !important for %s", d.Property)
		}
		st.props = append(st.props, KeyValue{Key: NormalizeKey(d.Property), Value: Property(d.Value)})
	}
	return st, nil
}

// MustParse is like Parse, but panics if the declaration block cannot be parsed.
// It is intended for styles defined in code.
func MustParse(block string) Style {
	st, err := Parse(block)
	if err != nil {
		panic(err)
	}
	return st
}
