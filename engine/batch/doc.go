/*
Package batch renders ligature images for a list of ligature specifications.

The input is a plain UTF-8 text file holding one ligature specification per
line. Blank lines are skipped. Every other line is normalized, split into
glyph identifiers by a Tokenizer, and rendered to a PNG file in the output
folder, named after the line with extension ".png".

A line referring to a glyph without an image is reported and skipped; the
batch continues with the next line. Any other failure, e.g., an unreadable
glyph image or a failed write, aborts the run, as it indicates a problem
with the environment rather than with the data.

	runner, err := batch.NewRunner(params)
	…
	summary, err := runner.Run(ctx)

Lines are processed one after the other.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package batch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'glyphstack.batch'.
func tracer() tracing.Trace {
	return tracing.Select("glyphstack.batch")
}
