package ligature

import (
	"image"

	"github.com/disintegration/imaging"
)

// Morpher is a post-pass over a composed ligature. It is the extension point
// for contour adjustments at the seams of stacked glyphs. A Morpher must not
// change the dimensions of its input and must not modify it in place.
type Morpher func(*image.NRGBA) *image.NRGBA

// DefaultSigma is the blur sigma of DefaultMorpher, in source pixels.
const DefaultSigma = 1.0

// DefaultMorpher smooths a ligature with GaussianBlur(DefaultSigma).
var DefaultMorpher = GaussianBlur(DefaultSigma)

// Identity is a Morpher returning its input.
func Identity(img *image.NRGBA) *image.NRGBA {
	return img
}

// GaussianBlur returns a Morpher blurring all channels, alpha included, with
// a Gaussian of the given sigma. This is a stand-in for real contour morphing
// and merely softens the seams. A sigma ≤ 0 yields Identity.
func GaussianBlur(sigma float64) Morpher {
	if sigma <= 0 {
		return Identity
	}
	return func(img *image.NRGBA) *image.NRGBA {
		tracer().Debugf("blurring ligature %v with sigma %.2f", img.Bounds(), sigma)
		return imaging.Blur(img, sigma)
	}
}

// Chain returns a Morpher applying morphers from left to right.
func Chain(morphers ...Morpher) Morpher {
	return func(img *image.NRGBA) *image.NRGBA {
		for _, m := range morphers {
			if m != nil {
				img = m(img)
			}
		}
		return img
	}
}
