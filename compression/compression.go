// Package compression provides transparent decompression of compressed text inputs
// and the compressors used to build release archives.
package compression

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
)

type CompressionType int

const (
	TypeNone CompressionType = iota
	TypeXZ
	TypeBzip2
	TypeZSTD
	TypeBrotli
)

// String returns the string representation of compression type
func (t CompressionType) String() string {
	switch t {
	case TypeXZ:
		return "XZ"
	case TypeBzip2:
		return "bzip2"
	case TypeZSTD:
		return "ZSTD"
	case TypeBrotli:
		return "Brotli"
	default:
		return "None"
	}
}

var extensions = map[string]CompressionType{
	".xz":   TypeXZ,
	".bz2":  TypeBzip2,
	".zst":  TypeZSTD,
	".zstd": TypeZSTD,
	".br":   TypeBrotli,
}

// DetectType guesses the compression of a file from its extension.
// Unknown or missing extensions are treated as uncompressed.
func DetectType(name string) CompressionType {
	if t, ok := extensions[strings.ToLower(filepath.Ext(name))]; ok {
		return t
	}
	return TypeNone
}

// TrimExt removes a recognised compression extension, so "a.ini.xz" becomes "a.ini".
func TrimExt(name string) string {
	if DetectType(name) == TypeNone {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Decompressor wraps a compressed stream in a reader yielding the plain bytes.
type Decompressor interface {
	NewReader(r io.Reader) (io.ReadCloser, error)
	Type() CompressionType
	Implementation() string
}

type DecompressorManager struct {
	decompressors map[CompressionType]Decompressor
}

// NewDecompressorManager creates a new decompressor manager with all available decompressors
func NewDecompressorManager() *DecompressorManager {
	manager := &DecompressorManager{
		decompressors: make(map[CompressionType]Decompressor),
	}

	manager.decompressors[TypeXZ] = NewXZDecompressor()
	manager.decompressors[TypeBzip2] = NewBzip2Decompressor()
	manager.decompressors[TypeZSTD] = NewZSTDDecompressor()
	manager.decompressors[TypeBrotli] = NewBrotliDecompressor()

	return manager
}

// NewReader wraps r with the decompressor for compType.
// TypeNone returns r unchanged (with a no-op Close).
func (m *DecompressorManager) NewReader(compType CompressionType, r io.Reader) (io.ReadCloser, error) {
	if compType == TypeNone {
		return io.NopCloser(r), nil
	}
	decompressor, exists := m.decompressors[compType]
	if !exists {
		return nil, fmt.Errorf("unsupported compression type: %s", compType.String())
	}

	return decompressor.NewReader(r)
}

// Decompress decompresses data using the specified compression type.
func (m *DecompressorManager) Decompress(compType CompressionType, data []byte) ([]byte, error) {
	rc, err := m.NewReader(compType, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// GetImplementationInfo returns information about the implementation of each decompressor
func (m *DecompressorManager) GetImplementationInfo() map[CompressionType]string {
	info := make(map[CompressionType]string)
	for t, d := range m.decompressors {
		info[t] = d.Implementation()
	}
	return info
}

var defaultManager = NewDecompressorManager()

// Default returns the process-wide decompressor manager.
func Default() *DecompressorManager {
	return defaultManager
}

// GetBuildInfo returns build information about compression support
func GetBuildInfo() map[string]interface{} {
	info := map[string]interface{}{
		"go_version": runtime.Version(),
		"goos":       runtime.GOOS,
		"goarch":     runtime.GOARCH,
	}

	info["cgo_enabled"] = isCGOEnabled()

	return info
}

func isCGOEnabled() bool {
	return getCGOStatus()
}
