package resources

import (
	"image"
	"path/filepath"
	"sort"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// GlyphIndex maps glyph identifiers to image files of a glyph folder.
// It is built once by scanning the folder and answers lookups with the same
// result LoadGlyph would produce, without touching the folder again.
type GlyphIndex struct {
	sync.Mutex
	dir   string
	exts  []string
	paths map[string]string
}

// NewGlyphIndex scans folder dir once. Every image file with a recognized
// extension contributes one candidate identifier per underscore in its name:
// the name's prefix up to that underscore. A candidate is bound to the first
// file that produces it in directory order; later files never override it.
//
// If exts is empty, DefaultExtensions are recognized.
func NewGlyphIndex(dir string, exts ...string) (*GlyphIndex, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	entries, err := readDirUnsorted(dir)
	if err != nil {
		return nil, err
	}
	gi := &GlyphIndex{
		dir:   dir,
		exts:  exts,
		paths: make(map[string]string),
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !hasExtension(name, exts) {
			continue
		}
		for i := 0; i < len(name); i++ {
			if name[i] != '_' {
				continue
			}
			if _, ok := gi.paths[name[:i]]; !ok {
				gi.paths[name[:i]] = filepath.Join(dir, name)
			}
		}
	}
	tracer().Infof("glyph index for %s holds %d identifiers", dir, len(gi.paths))
	return gi, nil
}

// Dir returns the folder the index has been built from.
func (gi *GlyphIndex) Dir() string {
	return gi.dir
}

// Len returns the number of distinct identifiers in the index.
func (gi *GlyphIndex) Len() int {
	gi.Lock()
	defer gi.Unlock()
	return len(gi.paths)
}

// Lookup returns the path of the image file for glyph.
// If there is none, Lookup returns a NotFoundError.
func (gi *GlyphIndex) Lookup(glyph string) (string, error) {
	gi.Lock()
	defer gi.Unlock()
	if path, ok := gi.paths[glyph]; ok {
		return path, nil
	}
	return "", NotFound(glyph, gi.dir)
}

// Load looks up glyph and decodes its image.
func (gi *GlyphIndex) Load(glyph string) (*image.NRGBA, error) {
	path, err := gi.Lookup(glyph)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("glyph %s resolves to %s", glyph, path)
	return DecodeGlyph(path)
}

// Identifiers returns all identifiers of the index in sorted order.
func (gi *GlyphIndex) Identifiers() []string {
	gi.Lock()
	defer gi.Unlock()
	ids := make([]string, 0, len(gi.paths))
	for id := range gi.paths {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LogIndex dumps the index to the trace (log-level Info).
func (gi *GlyphIndex) LogIndex() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	tracer().Infof("--- glyph index %s ---", gi.dir)
	for _, id := range gi.Identifiers() {
		path, _ := gi.Lookup(id)
		tracer().Infof("glyph [%s] = %s", id, path)
	}
	tracer().Infof("------------------------")
}
