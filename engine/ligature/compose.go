package ligature

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/npillmayer/glyphstack/core"
)

// Placements computes the layout of a vertical glyph stack. The canvas is
// as wide as the widest glyph and as high as all glyphs together. Glyph k
// is placed at the sum of the heights of glyphs 0…k-1 and is centered
// horizontally, rounding its offset down; the widest glyph has offset 0.
//
// Placements returns one rectangle per glyph, in canvas coordinates, plus
// the size of the canvas.
func Placements(glyphs []*image.NRGBA) ([]image.Rectangle, image.Point) {
	var size image.Point
	for _, g := range glyphs {
		if w := g.Bounds().Dx(); w > size.X {
			size.X = w
		}
		size.Y += g.Bounds().Dy()
	}
	places := make([]image.Rectangle, len(glyphs))
	y := 0
	for i, g := range glyphs {
		w, h := g.Bounds().Dx(), g.Bounds().Dy()
		x := (size.X - w) / 2
		places[i] = image.Rect(x, y, x+w, y+h)
		y += h
	}
	return places, size
}

// Compose stacks glyphs top-to-bottom onto a new, transparent canvas (see
// Placements for the layout). Glyphs are pasted using their own alpha
// channel as a mask, so transparent glyph pixels leave the canvas untouched.
// Glyphs are expected to be trimmed already.
//
// Composing zero glyphs is a precondition violation; Compose returns an error
// with code EINVALID instead of a degenerate, empty image.
func Compose(glyphs []*image.NRGBA) (*image.NRGBA, error) {
	if len(glyphs) == 0 {
		return nil, core.Error(core.EINVALID, "cannot compose a ligature from zero glyphs")
	}
	for i, g := range glyphs {
		if g == nil {
			return nil, core.Error(core.EINVALID, "glyph #%d of ligature is nil", i)
		}
	}
	places, size := Placements(glyphs)
	tracer().Debugf("ligature canvas of %d glyphs is %dx%d", len(glyphs), size.X, size.Y)
	canvas := imaging.New(size.X, size.Y, color.NRGBA{})
	for i, g := range glyphs {
		tracer().Debugf("glyph #%d placed at %v", i, places[i])
		canvas = imaging.Overlay(canvas, g, places[i].Min, 1.0)
	}
	return canvas, nil
}
