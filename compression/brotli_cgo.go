//go:build cgo && (cgo_compression || cgo_brotli)

package compression

import (
	"io"

	"github.com/google/brotli/go/cbrotli"
)

type brotliDecompressor struct{}

// NewBrotliDecompressor returns the libbrotli-backed decompressor.
func NewBrotliDecompressor() Decompressor {
	return brotliDecompressor{}
}

func (brotliDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return cbrotli.NewReader(r), nil
}

func (brotliDecompressor) Type() CompressionType { return TypeBrotli }

func (brotliDecompressor) Implementation() string {
	return "CGO (google/brotli/go/cbrotli)"
}
