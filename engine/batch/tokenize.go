package batch

import (
	"strings"

	"github.com/npillmayer/glyphstack/core"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
)

// Tokenizer splits a ligature specification into glyph identifiers, in
// stacking order.
type Tokenizer interface {
	Tokens(spec string) []string
}

// Names of the tokenizers known to TokenizerByName.
const (
	RunesTokenizer     = "runes"
	GraphemesTokenizer = "graphemes"
	FieldsTokenizer    = "fields"
)

// TokenizerByName returns a tokenizer for one of the names "runes",
// "graphemes" or "fields". An empty name selects "runes".
func TokenizerByName(name string) (Tokenizer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", RunesTokenizer:
		return RuneTokenizer{}, nil
	case GraphemesTokenizer:
		return NewGraphemeTokenizer(), nil
	case FieldsTokenizer:
		return FieldTokenizer{}, nil
	}
	return nil, core.Error(core.EINVALID, "unknown tokenizer %q", name)
}

// RuneTokenizer makes every code point of a specification a glyph identifier.
// Nothing is skipped, not even spaces inside a specification.
type RuneTokenizer struct{}

// Tokens is part of interface Tokenizer.
func (RuneTokenizer) Tokens(spec string) []string {
	ids := make([]string, 0, len(spec))
	for _, r := range spec {
		ids = append(ids, string(r))
	}
	return ids
}

// FieldTokenizer splits a specification at white space, allowing for glyph
// identifiers of more than one character, e.g., "KA SA".
type FieldTokenizer struct{}

// Tokens is part of interface Tokenizer.
func (FieldTokenizer) Tokens(spec string) []string {
	return strings.Fields(spec)
}

// GraphemeTokenizer makes every extended grapheme cluster of a specification
// a glyph identifier. A Tibetan consonant followed by a vowel sign is one
// cluster, and thus one glyph.
type GraphemeTokenizer struct{}

// NewGraphemeTokenizer creates a grapheme tokenizer.
func NewGraphemeTokenizer() GraphemeTokenizer {
	grapheme.SetupGraphemeClasses()
	return GraphemeTokenizer{}
}

// Tokens is part of interface Tokenizer.
func (GraphemeTokenizer) Tokens(spec string) []string {
	onGraphemes := grapheme.NewBreaker(1)
	splitter := segment.NewSegmenter(onGraphemes)
	splitter.Init(strings.NewReader(spec))
	var ids []string
	for splitter.Next() {
		ids = append(ids, string(splitter.Bytes()))
	}
	return ids
}
