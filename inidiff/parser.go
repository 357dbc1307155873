// Package inidiff compares an original INI file with its translated copy and
// reports every key whose value was changed by the translation.
package inidiff

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xishang0128/ini-translate-go/common/file"
	"github.com/xishang0128/ini-translate-go/common/textenc"
)

const bom = "\ufeff"

// Parse reads the INI file at path. See ParseReader for the accepted syntax.
// Errors opening or reading the file are returned to the caller unchanged
// apart from the path prefix.
func Parse(path string) (*ConfigMap, error) {
	rc, err := file.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	cfg, err := ParseReader(rc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseReader reads UTF-8 INI text. Every line is trimmed; blank lines are
// ignored, "[name]" opens a section (resetting it if it was seen before) and
// "key = value" inside a section is split at the first "=". Anything else,
// including keys before the first section, is ignored. There is no comment
// syntax.
func ParseReader(r io.Reader) (*ConfigMap, error) {
	cfg := NewConfigMap()
	var (
		current    string
		hasSection bool
		lineNumber int
	)

	sc := textenc.NewLineScanner(r)
	for sc.Scan() {
		lineNumber++
		raw := sc.Text()
		if lineNumber == 1 {
			raw = strings.TrimPrefix(raw, bom)
		}
		if !utf8.ValidString(raw) {
			return nil, fmt.Errorf("line %d: invalid UTF-8", lineNumber)
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = line[1 : len(line)-1]
			hasSection = true
			cfg.openSection(current)
			continue
		}

		if !hasSection {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		cfg.set(current, strings.TrimSpace(key), Setting{
			Value: strings.TrimSpace(value),
			Line:  lineNumber,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return cfg, nil
}
