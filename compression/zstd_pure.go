//go:build !cgo || !(cgo_compression || cgo_zstd)

package compression

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

type zstdDecompressor struct{}

// NewZSTDDecompressor returns the pure Go ZSTD decompressor.
func NewZSTDDecompressor() Decompressor {
	return zstdDecompressor{}
}

func (zstdDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return decoder.IOReadCloser(), nil
}

func (zstdDecompressor) Type() CompressionType { return TypeZSTD }

func (zstdDecompressor) Implementation() string {
	return "Pure Go (klauspost/compress/zstd)"
}
