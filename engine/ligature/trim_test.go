package ligature

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	transparent = color.NRGBA{}
	red         = color.NRGBA{R: 255, A: 255}
	blue        = color.NRGBA{B: 255, A: 255}
	green       = color.NRGBA{G: 255, A: 255}
)

// padded creates a transparent canvas of w×h with a filled rectangle r.
func padded(w, h int, r image.Rectangle, c color.Color) *image.NRGBA {
	canvas := imaging.New(w, h, transparent)
	return imaging.Paste(canvas, imaging.New(r.Dx(), r.Dy(), c), r.Min)
}

func TestTrimKnownRectangle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstack.ligature")
	defer teardown()
	//
	r := image.Rect(7, 12, 23, 40)
	img := padded(50, 60, r, red)
	bbox, ok := BoundingBox(img)
	require.True(t, ok)
	assert.Equal(t, r, bbox)
	//
	trimmed := Trim(img)
	assert.Equal(t, image.Rect(0, 0, 16, 28), trimmed.Bounds())
	for y := 0; y < 28; y++ {
		for x := 0; x < 16; x++ {
			if trimmed.NRGBAAt(x, y) != red {
				t.Fatalf("expected trimmed pixel (%d,%d) to be red, is %v", x, y, trimmed.NRGBAAt(x, y))
			}
		}
	}
	assert.Equal(t, image.Rect(0, 0, 50, 60), img.Bounds(), "source must not change")
}

func TestTrimIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstack.ligature")
	defer teardown()
	//
	img := padded(30, 30, image.Rect(3, 4, 20, 9), blue)
	img.SetNRGBA(25, 27, color.NRGBA{R: 10, A: 1})
	once := Trim(img)
	twice := Trim(once)
	assert.Equal(t, image.Rect(0, 0, 23, 24), once.Bounds())
	assert.Equal(t, once.Bounds(), twice.Bounds())
	assert.Equal(t, once.Pix, twice.Pix)
}

func TestTrimBlankImage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstack.ligature")
	defer teardown()
	//
	img := imaging.New(12, 8, transparent)
	_, ok := BoundingBox(img)
	assert.False(t, ok)
	trimmed := Trim(img)
	assert.Same(t, img, trimmed)
	assert.Equal(t, image.Rect(0, 0, 12, 8), trimmed.Bounds())
}

func TestTrimIgnoresColourOfInvisiblePixels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstack.ligature")
	defer teardown()
	//
	img := imaging.New(10, 10, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	img.SetNRGBA(4, 6, green)
	trimmed := Trim(img)
	assert.Equal(t, image.Rect(0, 0, 1, 1), trimmed.Bounds())
	assert.Equal(t, green, trimmed.NRGBAAt(0, 0))
}

func TestTrimGenericImage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstack.ligature")
	defer teardown()
	//
	rgba := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 5; y < 8; y++ {
		for x := 2; x < 12; x++ {
			rgba.Set(x, y, color.RGBA{R: 128, A: 128})
		}
	}
	sub := rgba.SubImage(image.Rect(1, 1, 19, 19))
	bbox, ok := BoundingBox(sub)
	require.True(t, ok)
	assert.Equal(t, image.Rect(2, 5, 12, 8), bbox)
	trimmed := Trim(sub)
	assert.Equal(t, image.Rect(0, 0, 10, 3), trimmed.Bounds())
	assert.Equal(t, uint8(128), trimmed.NRGBAAt(0, 0).A)
}
