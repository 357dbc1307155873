//go:build cgo && (cgo_compression || cgo_xz)

package compression

import (
	"io"

	"github.com/spencercw/go-xz"
)

type xzDecompressor struct{}

// NewXZDecompressor returns the liblzma-backed XZ decompressor.
func NewXZDecompressor() Decompressor {
	return xzDecompressor{}
}

type lzmaReader struct {
	r xz.DecompressionReader
}

func (l *lzmaReader) Read(p []byte) (int, error) { return l.r.Read(p) }

func (l *lzmaReader) Close() error { return l.r.Close() }

func (xzDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return &lzmaReader{r: xz.NewDecompressionReader(r)}, nil
}

func (xzDecompressor) Type() CompressionType { return TypeXZ }

func (xzDecompressor) Implementation() string {
	return "CGO (spencercw/go-xz)"
}
