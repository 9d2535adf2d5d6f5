/*
Package parameters collects the settings of a ligature batch run.

Settings are read from a schuko configuration. Every key has a default,
so an empty configuration yields a runnable set of parameters, pointing
to the conventional data folders relative to the working directory.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'glyphstack.core'.
func tracer() tracing.Trace {
	return tracing.Select("glyphstack.core")
}

// Configuration keys
const (
	KeyInput      = "ligature.input"
	KeyGlyphs     = "ligature.glyphs"
	KeyOutput     = "ligature.output"
	KeyExtensions = "ligature.extensions"
	KeyTokenizer  = "ligature.tokenizer"
	KeyNormalize  = "ligature.normalize"
	KeyBlur       = "ligature.blur"
)

// Normalization forms applied to ligature specifications before tokenizing.
// Glyph file names are matched as they are, so normalizing is opt-in:
// NFC decomposes some precomposed Tibetan letters (e.g. U+0F43).
const (
	NormalizeNFC  = "NFC"
	NormalizeNone = "none"
)

// Parameters is the explicit configuration of a batch run.
type Parameters struct {
	InputFile  string   // newline-delimited list of ligature specifications
	GlyphDir   string   // flat folder of glyph images, named "{id}_….png"
	OutputDir  string   // target folder for ligature images
	Extensions []string // recognized glyph file extensions, lower case, with dot
	Tokenizer  string   // name of the tokenizer splitting a line into glyph ids
	Normalize  string   // Unicode normalization of spec lines
	BlurSigma  float64  // sigma of the smoothing blur; 0 switches smoothing off
}

// Defaults returns the parameters used if nothing is configured.
func Defaults() Parameters {
	return Parameters{
		InputFile:  "data/Tibetan_Essential_Glyphs.txt",
		GlyphDir:   "data/cleaned_images",
		OutputDir:  "data/ligatures",
		Extensions: []string{".png"},
		Tokenizer:  "runes",
		Normalize:  NormalizeNone,
		BlurSigma:  1.0,
	}
}

// FromConfiguration reads the parameters from a configuration.
// Keys which are unset or carry an invalid value fall back to their defaults.
func FromConfiguration(conf schuko.Configuration) Parameters {
	p := Defaults()
	if conf == nil {
		return p
	}
	if s := conf.GetString(KeyInput); s != "" {
		p.InputFile = s
	}
	if s := conf.GetString(KeyGlyphs); s != "" {
		p.GlyphDir = s
	}
	if s := conf.GetString(KeyOutput); s != "" {
		p.OutputDir = s
	}
	if s := conf.GetString(KeyExtensions); s != "" {
		p.Extensions = ParseExtensions(s)
	}
	if s := conf.GetString(KeyTokenizer); s != "" {
		p.Tokenizer = strings.ToLower(strings.TrimSpace(s))
	}
	switch s := conf.GetString(KeyNormalize); {
	case s == "":
	case strings.EqualFold(s, NormalizeNFC):
		p.Normalize = NormalizeNFC
	case strings.EqualFold(s, NormalizeNone):
		p.Normalize = NormalizeNone
	default:
		tracer().Errorf("config[%s] = %q is not a known normalization, using %s", KeyNormalize, s, p.Normalize)
	}
	if s := conf.GetString(KeyBlur); s != "" {
		sigma, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || sigma < 0 {
			tracer().Errorf("config[%s] = %q is not a valid blur sigma, using %.2f", KeyBlur, s, p.BlurSigma)
		} else {
			p.BlurSigma = sigma
		}
	}
	tracer().Debugf("ligature parameters = %+v", p)
	return p
}

// ParseExtensions splits a comma-separated list of file extensions.
// Extensions are lower-cased and get a leading dot if it is missing.
func ParseExtensions(list string) []string {
	var exts []string
	for _, ext := range strings.Split(list, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		return Defaults().Extensions
	}
	return exts
}
