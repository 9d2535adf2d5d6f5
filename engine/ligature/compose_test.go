package ligature

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/npillmayer/glyphstack/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeDimensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstack.ligature")
	defer teardown()
	//
	for k, sizes := range [][]image.Point{
		{{5, 7}},
		{{40, 60}, {60, 40}},
		{{3, 1}, {9, 2}, {4, 4}, {9, 1}},
	} {
		glyphs := make([]*image.NRGBA, len(sizes))
		maxW, sumH := 0, 0
		for i, sz := range sizes {
			glyphs[i] = imaging.New(sz.X, sz.Y, red)
			if sz.X > maxW {
				maxW = sz.X
			}
			sumH += sz.Y
		}
		lig, err := Compose(glyphs)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, maxW, sumH), lig.Bounds(), "case %d", k)
	}
}

func TestComposePlacements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstack.ligature")
	defer teardown()
	//
	glyphs := []*image.NRGBA{
		imaging.New(5, 3, red),
		imaging.New(12, 4, blue),
		imaging.New(6, 2, green),
	}
	places, size := Placements(glyphs)
	assert.Equal(t, image.Pt(12, 9), size)
	assert.Equal(t, []image.Rectangle{
		image.Rect(3, 0, 8, 3),  // (12-5)/2 = 3, rounded down
		image.Rect(0, 3, 12, 7), // widest glyph is not moved
		image.Rect(3, 7, 9, 9),
	}, places)
}

func TestComposeStackingOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstack.ligature")
	defer teardown()
	//
	glyphs := []*image.NRGBA{
		imaging.New(4, 2, red),
		imaging.New(4, 3, blue),
		imaging.New(4, 1, green),
	}
	lig, err := Compose(glyphs)
	require.NoError(t, err)
	expect := []color.NRGBA{red, red, blue, blue, blue, green}
	for y, c := range expect {
		assert.Equal(t, c, lig.NRGBAAt(2, y), "row %d", y)
	}
}

func TestComposeRespectsAlpha(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstack.ligature")
	defer teardown()
	//
	ring := imaging.New(3, 3, blue)
	ring.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	wide := imaging.New(7, 2, red)
	lig, err := Compose([]*image.NRGBA{ring, wide})
	require.NoError(t, err)
	assert.Equal(t, uint8(0), lig.NRGBAAt(0, 0).A, "canvas outside glyph must be transparent")
	assert.Equal(t, uint8(0), lig.NRGBAAt(3, 1).A, "transparent glyph pixel must not cover canvas")
	assert.Equal(t, blue, lig.NRGBAAt(2, 0))
	assert.Equal(t, red, lig.NRGBAAt(0, 4))
}

func TestComposeEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstack.ligature")
	defer teardown()
	//
	_, err := Compose(nil)
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = Compose([]*image.NRGBA{imaging.New(1, 1, red), nil})
	assert.Equal(t, core.EINVALID, core.Code(err))
}
