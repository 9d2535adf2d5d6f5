package ligature

import (
	"image"

	"github.com/npillmayer/glyphstack/core"
)

// Create builds a ligature from glyph images in stacking order: every glyph
// is trimmed, the trimmed glyphs are composed, and morph is applied to the
// result. If morph is nil, DefaultMorpher is used.
func Create(glyphs []image.Image, morph Morpher) (*image.NRGBA, error) {
	if len(glyphs) == 0 {
		return nil, core.Error(core.EINVALID, "cannot create a ligature from zero glyphs")
	}
	trimmed := make([]*image.NRGBA, len(glyphs))
	for i, g := range glyphs {
		if g == nil {
			return nil, core.Error(core.EINVALID, "glyph #%d of ligature is nil", i)
		}
		trimmed[i] = Trim(g)
	}
	stack, err := Compose(trimmed)
	if err != nil {
		return nil, err
	}
	if morph == nil {
		morph = DefaultMorpher
	}
	return morph(stack), nil
}
