package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Property is a raw value for a style property. For example, with
//
//     colour: red
//
// a property value of "red" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// KV is a shortcut to create a KeyValue.
func KV(key string, value Property) KeyValue {
	return KeyValue{Key: key, Value: value}
}

func (kv KeyValue) String() string {
	return fmt.Sprintf("%s: %s", kv.Key, kv.Value)
}

// Property names known to the toolkit. Clients are free to use other
// names as well; unknown names are treated as content properties.
const (
	Rounding    = "rounding"
	FontSize    = "font-size"
	FontFamily  = "font-family"
	Colour      = "colour"
	Background  = "background"
	BorderColor = "border-colour"
	BorderWidth = "border-width"
	Padding     = "padding"
	Margin      = "margin"
	Width       = "width"
	Height      = "height"
	Visibility  = "visibility"
)

// Category classifies properties by the kind of re-work a change causes
// downstream.
type Category uint8

// Property categories: a change of a content property requires a re-paint,
// a change of a layout property requires a re-layout.
const (
	ContentProperty Category = iota
	LayoutProperty
)

func (c Category) String() string {
	if c == LayoutProperty {
		return "layout"
	}
	return "content"
}

var categoryFromPropertyKey = map[string]Category{
	Rounding:    ContentProperty,
	Colour:      ContentProperty,
	Background:  ContentProperty,
	BorderColor: ContentProperty,
	FontSize:    LayoutProperty,
	FontFamily:  LayoutProperty,
	BorderWidth: LayoutProperty,
	Padding:     LayoutProperty,
	Margin:      LayoutProperty,
	Width:       LayoutProperty,
	Height:      LayoutProperty,
	Visibility:  LayoutProperty,
}

// CategoryOf returns the category of a property.
// Example:
//    CategoryOf("font-size") => LayoutProperty
//
// Unknown property keys are content properties.
func CategoryOf(key string) Category {
	if c, ok := categoryFromPropertyKey[NormalizeKey(key)]; ok {
		return c
	}
	return ContentProperty
}

// NormalizeKey trims and lower-cases a property name.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
