/*
Package style provides the vocabulary for styling UI elements.

A Style is an ordered list of property overrides, e.g.

    rounding: 10; font-size: 30; colour: red

Styles are bound to selectors within style sets (see package cascade). This
package knows nothing about selectors or element trees; it deals with raw
property values and a few convenient type conversions for them.

Property values are kept in their raw textual form (type Property). How values
are stored by the rendering backends is not a concern of this package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uicascade.style'.
func tracer() tracing.Trace {
	return tracing.Select("uicascade.style")
}
