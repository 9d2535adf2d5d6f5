package batch

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/glyphstack/core"
	"github.com/npillmayer/glyphstack/core/locate/resources"
)

// Reporter is told about the outcome of every ligature specification.
type Reporter interface {
	Saved(spec, path string)
	Skipped(spec string, err error)
}

// TraceReporter reports to the batch tracer.
type TraceReporter struct{}

// Saved is part of interface Reporter.
func (TraceReporter) Saved(spec, path string) {
	tracer().Infof("saved ligature: %s", path)
}

// Skipped is part of interface Reporter.
func (TraceReporter) Skipped(spec string, err error) {
	tracer().Errorf("skipping ligature %s: %s", spec, core.UserMessage(err))
}

// Summary counts the outcomes of a batch run.
type Summary struct {
	Total   int      // number of specifications processed
	Saved   int      // number of ligature images written
	Skipped int      // number of specifications skipped
	Missing []string // glyph identifiers without an image, sorted
}

func (s *Summary) addMissing(err error) {
	var nf resources.NotFoundError
	if !errors.As(err, &nf) {
		return
	}
	for _, id := range s.Missing {
		if id == nf.Glyph {
			return
		}
	}
	s.Missing = append(s.Missing, nf.Glyph)
	sort.Strings(s.Missing)
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d ligatures: %d saved, %d skipped", s.Total, s.Saved, s.Skipped)
	if len(s.Missing) > 0 {
		fmt.Fprintf(&b, ", missing glyphs %v", s.Missing)
	}
	return b.String()
}
