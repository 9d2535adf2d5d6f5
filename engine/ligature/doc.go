/*
Package ligature stitches glyph images into composite ligature images.

A ligature, in this package, is a naive vertical stack of glyphs, as used
for Tibetan syllables, where consonants are stacked on top of each other.
There are no font metrics involved: every glyph image is trimmed to the
bounding box of its visible pixels, then the trimmed glyphs are stacked
top-to-bottom in the order given, each one centered horizontally on a
canvas as wide as the widest glyph. Finally a Morpher is applied to the
composite, which defaults to a slight Gaussian blur softening the seams.

	glyph images ──Trim──> trimmed glyphs ──Compose──> stack ──Morpher──> ligature

Images are never modified in place. All operations return new images,
except Trim for fully transparent input, which is returned unchanged.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ligature

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'glyphstack.ligature'.
func tracer() tracing.Trace {
	return tracing.Select("glyphstack.ligature")
}
