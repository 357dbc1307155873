// Package splitter separates an interleaved bilingual text file into its two
// languages by alternating non-blank lines between an odd and an even output.
package splitter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xishang0128/ini-translate-go/common/file"
	"github.com/xishang0128/ini-translate-go/common/textenc"
)

var (
	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("input file not found")
	// ErrAllEncodingsFailed is returned by SplitWithFallback when no encoding succeeded.
	ErrAllEncodingsFailed = errors.New("all encodings failed")
)

// PreviewLength is the number of runes of each line passed to LineAssigned.
const PreviewLength = 50

// Bucket identifies one of the two output sequences.
type Bucket int

const (
	// Odd holds the 1st, 3rd, 5th... non-blank lines, usually English.
	Odd Bucket = iota + 1
	// Even holds the 2nd, 4th, 6th... non-blank lines, usually Chinese.
	Even
)

func (b Bucket) String() string {
	switch b {
	case Odd:
		return "odd"
	case Even:
		return "even"
	default:
		return "unknown"
	}
}

// Warning describes a suspicious but successful split.
type Warning int

const (
	// WarnNothingProcessed means the input had no non-blank lines.
	WarnNothingProcessed Warning = iota + 1
	// WarnOddEmpty means every line went to the even bucket.
	WarnOddEmpty
	// WarnEvenEmpty means every line went to the odd bucket.
	WarnEvenEmpty
)

// Result is the outcome of a successful split.
type Result struct {
	Odd           []string
	Even          []string
	TotalLines    int
	NonBlankLines int
	Encoding      string
}

// Partition routes the trimmed non-blank lines of r into the odd and even
// sequences by their rank among non-blank lines. r must already be decoded.
func Partition(r io.Reader, rep Reporter) (*Result, error) {
	if rep == nil {
		rep = NopReporter{}
	}

	res := &Result{}
	sc := textenc.NewLineScanner(r)
	for sc.Scan() {
		res.TotalLines++
		cleaned := strings.TrimSpace(sc.Text())
		if cleaned == "" {
			rep.LineSkipped(res.TotalLines)
			continue
		}

		res.NonBlankLines++
		bucket := Even
		if res.NonBlankLines%2 == 1 {
			bucket = Odd
			res.Odd = append(res.Odd, cleaned)
		} else {
			res.Even = append(res.Even, cleaned)
		}
		rep.LineAssigned(res.TotalLines, bucket, preview(cleaned))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	rep.ReadFinished(res.TotalLines, res.NonBlankLines)
	rep.BucketCounts(len(res.Odd), len(res.Even))
	return res, nil
}

// Split reads inputPath decoded with encoding, writes the odd lines to oddPath
// and the even lines to evenPath as UTF-8 joined by "\n" without a trailing
// newline. Outputs are written only after the whole input has been read.
func Split(inputPath, oddPath, evenPath, encoding string, rep Reporter) (*Result, error) {
	if rep == nil {
		rep = NopReporter{}
	}
	if !file.Exists(inputPath) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}

	res, err := read(inputPath, encoding, rep)
	if err != nil {
		return nil, err
	}
	res.Encoding = encoding

	if err := writeLines(oddPath, res.Odd); err != nil {
		return nil, err
	}
	rep.Written(Odd, oddPath)

	if err := writeLines(evenPath, res.Even); err != nil {
		return nil, err
	}
	rep.Written(Even, evenPath)

	switch {
	case len(res.Odd) == 0 && len(res.Even) == 0:
		rep.Warn(WarnNothingProcessed)
	case len(res.Odd) == 0:
		rep.Warn(WarnOddEmpty)
	case len(res.Even) == 0:
		rep.Warn(WarnEvenEmpty)
	default:
		rep.Succeeded()
	}

	return res, nil
}

// SplitWithFallback calls Split with each encoding in turn and stops at the
// first success, returning the result of that attempt.
func SplitWithFallback(inputPath, oddPath, evenPath string, encodings []string, rep Reporter) (*Result, error) {
	if rep == nil {
		rep = NopReporter{}
	}
	if len(encodings) == 0 {
		encodings = textenc.DefaultFallbacks
	}

	var lastErr error
	for _, enc := range encodings {
		rep.Attempt(enc)
		res, err := Split(inputPath, oddPath, evenPath, enc, rep)
		if err == nil {
			return res, nil
		}
		rep.AttemptFailed(enc, err)
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %w", ErrAllEncodingsFailed, lastErr)
}

func read(inputPath, encoding string, rep Reporter) (*Result, error) {
	rc, err := file.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	decoded, err := textenc.NewReader(rc, encoding)
	if err != nil {
		return nil, err
	}
	return Partition(decoded, rep)
}

func writeLines(path string, lines []string) error {
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644)
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= PreviewLength {
		return s
	}
	return string(r[:PreviewLength])
}
