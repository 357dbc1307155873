package textenc

import (
	"bufio"
	"bytes"
	"io"
)

// MaxLineSize bounds a single line read by NewLineScanner.
const MaxLineSize = 64 << 20

// ScanUniversalLines is a bufio.SplitFunc that ends lines at "\n", "\r\n" or a
// lone "\r". Terminators are not part of the token.
func ScanUniversalLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		// "\r" at the end of the buffer may be the first half of "\r\n".
		if !atEOF {
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// NewLineScanner returns a scanner over r using ScanUniversalLines.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	s.Split(ScanUniversalLines)
	return s
}
