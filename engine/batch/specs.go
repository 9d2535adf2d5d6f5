package batch

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/glyphstack/core"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxSpecLine is the longest line ReadSpecs accepts.
const maxSpecLine = 1 << 20

// ReadSpecs reads ligature specifications, one per line. Lines are trimmed
// of surrounding white space and blank lines are dropped. A byte order mark
// at the start of the input is removed. Lines longer than 1 MiB are an error.
func ReadSpecs(r io.Reader) ([]string, error) {
	r = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxSpecLine)
	var specs []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		specs = append(specs, line)
	}
	if err := scanner.Err(); err != nil {
		return specs, core.WrapError(err, core.EIO, "cannot read ligature list")
	}
	return specs, nil
}

// ReadSpecFile reads the ligature specifications of a list file.
func ReadSpecFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot open ligature list %s", path)
	}
	defer f.Close()
	specs, err := ReadSpecs(f)
	if err != nil {
		return specs, core.WrapError(err, core.EIO, "cannot read ligature list %s", path)
	}
	tracer().Infof("ligature list %s holds %d specifications", path, len(specs))
	return specs, nil
}

// normalizer maps a specification to the form used for glyph lookup.
type normalizer func(string) string

func nfc(spec string) string {
	return norm.NFC.String(spec)
}

func unnormalized(spec string) string {
	return spec
}
