//go:build !cgo || !(cgo_compression || cgo_brotli)

package compression

import (
	"io"

	"github.com/andybalholm/brotli"
)

type brotliDecompressor struct{}

// NewBrotliDecompressor returns the pure Go Brotli decompressor.
func NewBrotliDecompressor() Decompressor {
	return brotliDecompressor{}
}

func (brotliDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}

func (brotliDecompressor) Type() CompressionType { return TypeBrotli }

func (brotliDecompressor) Implementation() string {
	return "Pure Go (andybalholm/brotli)"
}
