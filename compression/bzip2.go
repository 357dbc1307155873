package compression

import (
	"compress/bzip2"
	"io"
)

// bzip2 only has a decoder in the standard library and no encoder is needed here.
type bzip2Decompressor struct{}

// NewBzip2Decompressor returns the bzip2 decompressor.
func NewBzip2Decompressor() Decompressor {
	return bzip2Decompressor{}
}

func (bzip2Decompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(bzip2.NewReader(r)), nil
}

func (bzip2Decompressor) Type() CompressionType { return TypeBzip2 }

func (bzip2Decompressor) Implementation() string {
	return "Go Standard Library (compress/bzip2)"
}
