package batch

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/npillmayer/glyphstack/core"
	"github.com/npillmayer/glyphstack/core/locate/resources"
	"github.com/npillmayer/glyphstack/core/parameters"
	"github.com/npillmayer/glyphstack/engine/ligature"
)

// ErrUnsafeName flags a specification which cannot serve as a file name.
var ErrUnsafeName = errors.New("ligature specification is not usable as a file name")

// Runner renders ligature specifications to image files.
type Runner struct {
	Params    parameters.Parameters
	Index     *resources.GlyphIndex // if nil, glyphs are searched in Params.GlyphDir
	Tokenizer Tokenizer             // if nil, RuneTokenizer
	Morph     ligature.Morpher      // if nil, ligatures are not smoothed
	Reporter  Reporter              // if nil, TraceReporter
	normalize normalizer
}

// NewRunner creates a runner for a set of parameters. It builds the glyph
// index of params.GlyphDir once and selects the tokenizer, normalization and
// blur as configured. Clients may replace Tokenizer, Morph and Reporter
// afterwards.
func NewRunner(params parameters.Parameters) (*Runner, error) {
	tok, err := TokenizerByName(params.Tokenizer)
	if err != nil {
		return nil, err
	}
	index, err := resources.NewGlyphIndex(params.GlyphDir, params.Extensions...)
	if err != nil {
		return nil, err
	}
	r := &Runner{
		Params:    params,
		Index:     index,
		Tokenizer: tok,
		Morph:     ligature.GaussianBlur(params.BlurSigma),
		Reporter:  TraceReporter{},
		normalize: unnormalized,
	}
	if params.Normalize == parameters.NormalizeNFC {
		r.normalize = nfc
	}
	return r, nil
}

// Run reads the list of specifications from Params.InputFile, makes sure the
// output folder exists, and renders every specification. See RunSpecs.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	specs, err := ReadSpecFile(r.Params.InputFile)
	if err != nil {
		return Summary{}, err
	}
	if _, err = resources.PrepareDir(r.Params.OutputDir); err != nil {
		return Summary{}, err
	}
	return r.RunSpecs(ctx, specs)
}

// RunSpecs renders specifications in order. Missing glyphs and specifications
// unusable as file names are reported and skipped. Every other error stops the
// run and is returned together with the summary so far. Cancelling ctx stops
// the run before the next specification.
func (r *Runner) RunSpecs(ctx context.Context, specs []string) (Summary, error) {
	var summary Summary
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Total++
		path, err := r.RunSpec(spec)
		if err == nil {
			summary.Saved++
			r.reporter().Saved(spec, path)
			continue
		}
		if !Skippable(err) {
			tracer().Errorf("aborting batch at ligature %s: %v", spec, err)
			return summary, err
		}
		summary.Skipped++
		summary.addMissing(err)
		r.reporter().Skipped(spec, err)
	}
	tracer().Infof("batch done: %s", summary)
	return summary, nil
}

// RunSpec renders a single specification and writes it to the output
// folder. It returns the path of the image file.
func (r *Runner) RunSpec(spec string) (string, error) {
	path, err := r.OutputPath(spec)
	if err != nil {
		return "", err
	}
	lig, err := r.Render(spec)
	if err != nil {
		return "", err
	}
	if err = imaging.Save(lig, path); err != nil {
		return "", core.WrapError(err, core.EIO, "cannot write ligature image %s", path)
	}
	return path, nil
}

// Render creates the ligature image for a specification without saving it.
func (r *Runner) Render(spec string) (*image.NRGBA, error) {
	ids := r.tokenizer().Tokens(r.normalizer()(spec))
	if len(ids) == 0 {
		return nil, core.Error(core.EINVALID, "ligature specification %q holds no glyphs", spec)
	}
	tracer().Debugf("ligature %s = %v", spec, ids)
	glyphs := make([]image.Image, len(ids))
	for i, id := range ids {
		g, err := r.load(id)
		if err != nil {
			return nil, err
		}
		glyphs[i] = g
	}
	morph := r.Morph
	if morph == nil {
		morph = ligature.Identity
	}
	return ligature.Create(glyphs, morph)
}

// OutputPath returns the image file path for spec: the specification itself
// plus extension ".png", in the output folder. Specifications containing a
// path separator are rejected with ErrUnsafeName.
func (r *Runner) OutputPath(spec string) (string, error) {
	if spec == "" || spec == "." || spec == ".." || strings.ContainsAny(spec, `/\`) {
		return "", core.WrapError(ErrUnsafeName, core.EINVALID,
			"ligature specification %q is not usable as a file name", spec)
	}
	return filepath.Join(r.Params.OutputDir, spec+".png"), nil
}

// Skippable is true for errors which affect a single specification only:
// missing glyph images and unusable specification names.
func Skippable(err error) bool {
	if core.HasCode(err, core.EMISSING) {
		return resources.IsNotFound(err)
	}
	return errors.Is(err, ErrUnsafeName)
}

func (r *Runner) load(id string) (*image.NRGBA, error) {
	if r.Index != nil {
		return r.Index.Load(id)
	}
	return resources.LoadGlyph(id, r.Params.GlyphDir, r.Params.Extensions...)
}

func (r *Runner) tokenizer() Tokenizer {
	if r.Tokenizer == nil {
		return RuneTokenizer{}
	}
	return r.Tokenizer
}

func (r *Runner) normalizer() normalizer {
	if r.normalize == nil {
		return unnormalized
	}
	return r.normalize
}

func (r *Runner) reporter() Reporter {
	if r.Reporter == nil {
		return TraceReporter{}
	}
	return r.Reporter
}
