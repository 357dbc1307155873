//go:build cgo && (cgo_compression || cgo_zstd)

package compression

import (
	"io"

	"github.com/valyala/gozstd"
)

type zstdDecompressor struct{}

// NewZSTDDecompressor returns the libzstd-backed ZSTD decompressor.
func NewZSTDDecompressor() Decompressor {
	return zstdDecompressor{}
}

type gozstdReader struct {
	*gozstd.Reader
}

func (g gozstdReader) Close() error {
	g.Release()
	return nil
}

func (zstdDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gozstdReader{gozstd.NewReader(r)}, nil
}

func (zstdDecompressor) Type() CompressionType { return TypeZSTD }

func (zstdDecompressor) Implementation() string {
	return "CGO (valyala/gozstd)"
}
