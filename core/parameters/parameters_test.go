package parameters

import (
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstack.core")
	defer teardown()
	//
	p := FromConfiguration(testconfig.Conf{})
	assert.Equal(t, Defaults(), p)
	assert.Equal(t, []string{".png"}, p.Extensions)
	assert.Equal(t, 1.0, p.BlurSigma)
}

func TestConfiguredValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstack.core")
	defer teardown()
	//
	p := FromConfiguration(testconfig.Conf{
		KeyInput:      "in.txt",
		KeyGlyphs:     "glyphs",
		KeyOutput:     "out",
		KeyExtensions: "PNG, .webp",
		KeyTokenizer:  "Fields",
		KeyNormalize:  "none",
		KeyBlur:       "0",
	})
	assert.Equal(t, "in.txt", p.InputFile)
	assert.Equal(t, "glyphs", p.GlyphDir)
	assert.Equal(t, "out", p.OutputDir)
	assert.Equal(t, []string{".png", ".webp"}, p.Extensions)
	assert.Equal(t, "fields", p.Tokenizer)
	assert.Equal(t, NormalizeNone, p.Normalize)
	assert.Equal(t, 0.0, p.BlurSigma)
}

func TestInvalidValuesFallBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphstack.core")
	defer teardown()
	//
	p := FromConfiguration(testconfig.Conf{
		KeyBlur:       "-2",
		KeyNormalize:  "NFKD",
		KeyExtensions: " , ",
	})
	assert.Equal(t, 1.0, p.BlurSigma)
	assert.Equal(t, NormalizeNone, p.Normalize)
	assert.Equal(t, []string{".png"}, p.Extensions)
	//
	p = FromConfiguration(testconfig.Conf{KeyNormalize: "nfc"})
	assert.Equal(t, NormalizeNFC, p.Normalize)
}
