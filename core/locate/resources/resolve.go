package resources

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/npillmayer/glyphstack/core"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultExtensions are the glyph file extensions recognized if a client
// does not specify any.
var DefaultExtensions = []string{".png"}

// NotFoundError is returned if no glyph image matches a glyph identifier.
// It is an AppError with code EMISSING.
type NotFoundError struct {
	Glyph string // the glyph identifier searched for
	Dir   string // the folder searched
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("glyph image not found for %s in %s", e.Glyph, e.Dir)
}

func (e NotFoundError) ErrorCode() int {
	return core.EMISSING
}

func (e NotFoundError) UserMessage() string {
	return e.Error()
}

var _ core.AppError = NotFoundError{}

// NotFound returns an application error for a missing glyph image.
func NotFound(glyph, dir string) error {
	return NotFoundError{Glyph: glyph, Dir: dir}
}

// IsNotFound is true if err's chain contains a NotFoundError.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// --- Lookup ----------------------------------------------------------------

// LoadGlyph scans folder dir for the first image file named "{glyph}_…"
// and returns it decoded as NRGBA. Iteration follows the directory listing,
// not name order. If exts is empty, DefaultExtensions are recognized.
//
// If no file matches, LoadGlyph returns a NotFoundError.
func LoadGlyph(glyph, dir string, exts ...string) (*image.NRGBA, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	entries, err := readDirUnsorted(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasGlyphPrefix(entry.Name(), glyph) && hasExtension(entry.Name(), exts) {
			tracer().Debugf("glyph %s resolves to %s", glyph, entry.Name())
			return DecodeGlyph(filepath.Join(dir, entry.Name()))
		}
	}
	tracer().Infof("no image for glyph %s in %s", glyph, dir)
	return nil, NotFound(glyph, dir)
}

// DecodeGlyph reads an image file and converts it to NRGBA, i.e., to
// colour channels plus an independent alpha channel.
func DecodeGlyph(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot decode glyph image %s", path)
	}
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba, nil
	}
	return imaging.Clone(img), nil
}

// readDirUnsorted lists a folder in the order the file system delivers
// the entries. os.ReadDir would sort them by name.
func readDirUnsorted(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot open glyph folder %s", dir)
	}
	defer f.Close()
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot list glyph folder %s", dir)
	}
	return entries, nil
}

func hasGlyphPrefix(filename, glyph string) bool {
	return strings.HasPrefix(filename, glyph+"_")
}

func hasExtension(filename string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
