/*
Command ligcli renders Tibetan ligature images from a list of ligature
specifications.

Usage:

	ligcli [-input list.txt] [-glyphs folder] [-output folder] [-tokenizer runes|graphemes|fields]
	       [-blur sigma] [-ext .png,.webp] [-normalize NFC|none] [-trace Debug|Info|Error] [-i]

Without -i, every line of the input list is rendered to a PNG file in the
output folder. With -i, ligcli reads specifications interactively, one per
line, and renders each of them to the output folder.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/glyphstack/core"
	"github.com/npillmayer/glyphstack/core/locate/resources"
	"github.com/npillmayer/glyphstack/core/parameters"
	"github.com/npillmayer/glyphstack/engine/batch"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'glyphstack.batch'
func tracer() tracing.Trace {
	return tracing.Select("glyphstack.batch")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	input := flag.String("input", "", "List of ligature specifications, one per line")
	glyphs := flag.String("glyphs", "", "Folder of glyph images")
	output := flag.String("output", "", "Folder for ligature images")
	tokenizer := flag.String("tokenizer", "", "Split lines into glyphs by [runes|graphemes|fields]")
	blur := flag.String("blur", "", "Sigma of the smoothing blur, 0 for none")
	exts := flag.String("ext", "", "Comma-separated glyph file extensions")
	normalize := flag.String("normalize", "", "Unicode normalization of lines [NFC|none]")
	interactive := flag.Bool("i", false, "Enter ligature specifications interactively")
	flag.Parse()

	// set up logging and configuration
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":            "go",
		"trace.glyphstack.core":      *tlevel,
		"trace.glyphstack.resources": *tlevel,
		"trace.glyphstack.ligature":  *tlevel,
		"trace.glyphstack.batch":     *tlevel,
		parameters.KeyInput:          *input,
		parameters.KeyGlyphs:         *glyphs,
		parameters.KeyOutput:         *output,
		parameters.KeyTokenizer:      *tokenizer,
		parameters.KeyBlur:           *blur,
		parameters.KeyExtensions:     *exts,
		parameters.KeyNormalize:      *normalize,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", *tlevel)
	params := parameters.FromConfiguration(conf)

	// set up the pipeline
	runner, err := batch.NewRunner(params)
	if err != nil {
		fail(err)
	}
	runner.Reporter = ptermReporter{}
	if _, err = resources.PrepareDir(params.OutputDir); err != nil {
		fail(err)
	}
	if *interactive {
		pterm.Info.Printfln("Welcome to the ligature REPL, %d glyphs in %s", runner.Index.Len(), params.GlyphDir)
		if err = repl(runner); err != nil {
			fail(err)
		}
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	pterm.Info.Printfln("Rendering ligatures of %s to %s", params.InputFile, params.OutputDir)
	summary, err := runner.Run(ctx)
	if err != nil {
		fail(err)
	}
	pterm.Info.Println(summary.String())
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func fail(err error) {
	pterm.Error.Println(core.UserMessage(err))
	tracer().Errorf("%v", err)
	os.Exit(1)
}

// ptermReporter reports the outcome of ligatures to the terminal.
type ptermReporter struct{}

func (ptermReporter) Saved(spec, path string) {
	pterm.Success.Printfln("Saved ligature: %s", path)
}

func (ptermReporter) Skipped(spec string, err error) {
	pterm.Warning.Printfln("%s (ligature %s)", core.UserMessage(err), spec)
}

// repl renders every line entered as a ligature, until <ctrl>D or ":q".
func repl(runner *batch.Runner) error {
	rl, err := readline.New("ligature > ")
	if err != nil {
		return err
	}
	defer rl.Close()
	pterm.Info.Println("Quit with <ctrl>D or :q, list glyphs with :glyphs")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		switch line {
		case ":q", ":quit":
			pterm.Info.Println("Good bye!")
			return nil
		case ":glyphs":
			pterm.Printfln("%s", strings.Join(runner.Index.Identifiers(), " "))
			continue
		}
		path, err := runner.RunSpec(line)
		if err == nil {
			runner.Reporter.Saved(line, path)
			continue
		}
		if !batch.Skippable(err) {
			return err
		}
		runner.Reporter.Skipped(line, err)
	}
	pterm.Info.Println("Good bye!")
	return nil
}
