package ligature

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// BoundingBox returns the minimal rectangle enclosing all pixels of img which
// differ from a fully transparent background. The comparison is exact: a pixel
// with alpha 1 is content. Colour bits of pixels with alpha 0 do not count, as
// with non-premultiplied colour a pixel of alpha 0 is invisible whatever its
// colour. The rectangle is given in the coordinate space of img.
//
// If img is completely blank, BoundingBox returns an empty rectangle and false.
func BoundingBox(img image.Image) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	nrgba, fast := img.(*image.NRGBA)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var a uint8
			if fast {
				a = nrgba.Pix[nrgba.PixOffset(x, y)+3]
			} else {
				a = color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A
			}
			if a == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX || maxY < minY {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// Trim crops img to its bounding box (see BoundingBox). The result is a new
// image with origin (0,0).
//
// A completely blank image is not an error: it is returned unchanged, so
// callers have to expect zero-content glyphs. If img is not an NRGBA image
// anchored at the origin, a blank image is returned as an NRGBA copy.
func Trim(img image.Image) *image.NRGBA {
	bbox, ok := BoundingBox(img)
	if !ok {
		tracer().Debugf("glyph image %v is blank, not trimming", img.Bounds())
		if nrgba, isNRGBA := img.(*image.NRGBA); isNRGBA && nrgba.Rect.Min == (image.Point{}) {
			return nrgba
		}
		return imaging.Clone(img)
	}
	tracer().Debugf("trimming glyph image %v to %v", img.Bounds(), bbox)
	return imaging.Crop(img, bbox)
}
