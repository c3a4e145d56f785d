package cascade

import (
	"fmt"
	"strings"

	"github.com/npillmayer/uicascade/selector"
	"github.com/npillmayer/uicascade/style"
)

// Binding binds a style to a selector.
type Binding struct {
	Selector selector.Selector
	Style    style.Style
}

// Bind is a shortcut to create a binding.
func Bind(sel selector.Selector, st style.Style) Binding {
	return Binding{Selector: sel, Style: st}
}

func (b Binding) String() string {
	return fmt.Sprintf("%v %s", b.Selector, b.Style)
}

// StyleSet is an ordered collection of bindings. Later bindings override
// earlier ones. A style set becomes immutable as soon as it is attached to
// an element; it may then only be replaced wholesale.
type StyleSet struct {
	bindings []Binding
	frozen   bool
}

// NewStyleSet creates a style set from bindings, in declaration order.
// A binding without a selector applies to every element.
func NewStyleSet(bindings ...Binding) *StyleSet {
	ss := &StyleSet{bindings: append([]Binding(nil), bindings...)}
	for i := range ss.bindings {
		if ss.bindings[i].Selector == nil {
			ss.bindings[i].Selector = selector.All()
		}
	}
	return ss
}

// Add appends a binding. It returns an error wrapping selector.ErrImmutable
// if the style set has been frozen.
func (ss *StyleSet) Add(sel selector.Selector, st style.Style) error {
	if ss.frozen {
		return fmt.Errorf("%w: style set is attached", selector.ErrImmutable)
	}
	if sel == nil {
		sel = selector.All()
	}
	ss.bindings = append(ss.bindings, Binding{Selector: sel, Style: st})
	return nil
}

// Freeze makes ss immutable.
func (ss *StyleSet) Freeze() {
	ss.frozen = true
}

// Frozen reports wether ss is immutable.
func (ss *StyleSet) Frozen() bool {
	return ss.frozen
}

// Bindings returns the bindings of ss, in declaration order.
func (ss *StyleSet) Bindings() []Binding {
	return append([]Binding(nil), ss.bindings...)
}

// Len returns the number of bindings of ss.
func (ss *StyleSet) Len() int {
	return len(ss.bindings)
}

func (ss *StyleSet) String() string {
	parts := make([]string, len(ss.bindings))
	for i, b := range ss.bindings {
		parts[i] = b.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
