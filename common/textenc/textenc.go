// Package textenc resolves text encodings by name and decodes input leniently.
package textenc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned for names no encoding table recognises.
var ErrUnknownEncoding = errors.New("unknown encoding")

// DefaultFallbacks is the order tried when decoding a file of unknown origin.
var DefaultFallbacks = []string{"utf-8", "gbk", "utf-16"}

var builtin = map[string]encoding.Encoding{
	"utf-8":     unicode.UTF8,
	"utf8":      unicode.UTF8,
	"utf-8-sig": unicode.UTF8BOM,
	// Without a BOM, UTF-16 is read little-endian, as on Windows.
	"utf-16":   unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf16":    unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
}

// Lookup returns the encoding registered under name. Names are matched
// case-insensitively against UTF-8/UTF-16 aliases, then WHATWG labels, then
// IANA names.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownEncoding)
	}
	if enc, ok := builtin[key]; ok {
		return enc, nil
	}
	if enc, err := htmlindex.Get(key); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(key); err == nil && enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// NewReader decodes r from the named encoding into UTF-8. Byte sequences that
// cannot be decoded become U+FFFD instead of failing the read.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Normalize splits a comma separated list of encoding names, dropping blanks.
func Normalize(names []string) []string {
	var out []string
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
