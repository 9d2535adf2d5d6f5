/*
Package resources locates glyph images for the ligature builder.

Glyph images live in a flat folder, one file per glyph, named

   {identifier}_<anything>.png

A glyph identifier is resolved to the first file in directory order whose
name starts with the identifier followed by an underscore. Clients resolving
more than a handful of glyphs should build a GlyphIndex once and query it,
instead of scanning the folder for every glyph with LoadGlyph.

Besides PNG, the decoders for BMP, TIFF and WebP are registered, so glyph
folders may use these formats if the set of recognized extensions is
configured accordingly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'glyphstack.resources'.
func tracer() tracing.Trace {
	return tracing.Select("glyphstack.resources")
}
