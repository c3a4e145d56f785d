package style

import (
	"strings"
)

// Style is an ordered list of property overrides. A Style is applied to every
// element its owning selector matches. If a property key occurs more than once,
// the later entry wins.
//
// The zero value is an empty style, ready to use.
type Style struct {
	props []KeyValue
}

// NewStyle creates a style from a list of key-value pairs, in declaration order.
func NewStyle(kvs ...KeyValue) Style {
	st := Style{}
	for _, kv := range kvs {
		st = st.With(kv.Key, kv.Value)
	}
	return st
}

// With returns a copy of st with a property override appended.
func (st Style) With(key string, value Property) Style {
	props := make([]KeyValue, len(st.props), len(st.props)+1)
	copy(props, st.props)
	props = append(props, KeyValue{Key: NormalizeKey(key), Value: value})
	return Style{props: props}
}

// Get returns the value of a property, if the style touches it.
func (st Style) Get(key string) (Property, bool) {
	key = NormalizeKey(key)
	for i := len(st.props) - 1; i >= 0; i-- {
		if st.props[i].Key == key {
			return st.props[i].Value, true
		}
	}
	return NullStyle, false
}

// Touches is a predicate: does st override property key?
func (st Style) Touches(key string) bool {
	_, ok := st.Get(key)
	return ok
}

// Properties returns all the property overrides of st in declaration order.
func (st Style) Properties() []KeyValue {
	r := make([]KeyValue, len(st.props))
	copy(r, st.props)
	return r
}

// Keys returns the distinct property names st touches, in order of first
// appearance.
func (st Style) Keys() []string {
	seen := make(map[string]bool, len(st.props))
	keys := make([]string, 0, len(st.props))
	for _, kv := range st.props {
		if !seen[kv.Key] {
			seen[kv.Key] = true
			keys = append(keys, kv.Key)
		}
	}
	return keys
}

// Len returns the number of entries of st.
func (st Style) Len() int {
	return len(st.props)
}

func (st Style) String() string {
	parts := make([]string, len(st.props))
	for i, kv := range st.props {
		parts[i] = kv.String()
	}
	return "{" + strings.Join(parts, "; ") + "}"
}
