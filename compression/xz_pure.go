//go:build !cgo || !(cgo_compression || cgo_xz)

package compression

import (
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

type xzDecompressor struct{}

// NewXZDecompressor returns the pure Go XZ decompressor.
func NewXZDecompressor() Decompressor {
	return xzDecompressor{}
}

func (xzDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	reader, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("xz: %w", err)
	}
	return io.NopCloser(reader), nil
}

func (xzDecompressor) Type() CompressionType { return TypeXZ }

func (xzDecompressor) Implementation() string {
	return "Pure Go (ulikunitz/xz)"
}
