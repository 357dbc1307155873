package compression

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compressor wraps a writer so that everything written to it is compressed.
// Closing the returned writer flushes the stream but leaves w open.
type Compressor interface {
	NewWriter(w io.Writer) (io.WriteCloser, error)
	Type() CompressionType
	Extension() string
}

type xzCompressor struct{}

func (xzCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return xz.NewWriter(w)
}

func (xzCompressor) Type() CompressionType { return TypeXZ }
func (xzCompressor) Extension() string     { return ".xz" }

type zstdCompressor struct{}

func (zstdCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
}

func (zstdCompressor) Type() CompressionType { return TypeZSTD }
func (zstdCompressor) Extension() string     { return ".zst" }

// NewCompressor returns the compressor for compType. Only XZ and ZSTD are
// available for writing.
func NewCompressor(compType CompressionType) (Compressor, error) {
	switch compType {
	case TypeXZ:
		return xzCompressor{}, nil
	case TypeZSTD:
		return zstdCompressor{}, nil
	default:
		return nil, fmt.Errorf("no compressor for %s", compType)
	}
}
