package project

import (
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"

	"github.com/xishang0128/ini-translate-go/compression"
)

// Archive writes the contents of dir to dst in the given format, with paths
// relative to dir, and returns the archive size.
func Archive(dir, dst string, format Format) (int64, error) {
	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}

	switch format {
	case FormatZip:
		err = writeZip(out, dir)
	case FormatTarXZ:
		err = writeCompressedTar(out, dir, compression.TypeXZ)
	case FormatTarZS:
		err = writeCompressedTar(out, dir, compression.TypeZSTD)
	default:
		err = fmt.Errorf("unsupported archive format: %s", format)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst)
		return 0, fmt.Errorf("archive %s: %w", dst, err)
	}

	info, err := os.Stat(dst)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

type walkFunc func(rel string, d fs.DirEntry, info fs.FileInfo, path string) error

// walk calls fn for every entry under dir except dir itself, in lexical
// order. Symlinks are skipped.
func walk(dir string, fn walkFunc) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir || d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return fn(filepath.ToSlash(rel), d, info, path)
	})
}

func writeZip(w io.Writer, dir string) error {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	err := walk(dir, func(rel string, d fs.DirEntry, info fs.FileInfo, path string) error {
		hdr, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		hdr.Name = rel
		if d.IsDir() {
			hdr.Name += "/"
			_, err = zw.CreateHeader(hdr)
			return err
		}
		hdr.Method = zip.Deflate
		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return err
		}
		return copyInto(fw, path)
	})
	if err != nil {
		return err
	}
	return zw.Close()
}

func writeCompressedTar(w io.Writer, dir string, compType compression.CompressionType) error {
	c, err := compression.NewCompressor(compType)
	if err != nil {
		return err
	}
	cw, err := c.NewWriter(w)
	if err != nil {
		return err
	}
	tw := tar.NewWriter(cw)

	err = walk(dir, func(rel string, d fs.DirEntry, info fs.FileInfo, path string) error {
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = rel
		if d.IsDir() {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		return copyInto(tw, path)
	})
	if err != nil {
		cw.Close()
		return err
	}
	if err := tw.Close(); err != nil {
		cw.Close()
		return err
	}
	return cw.Close()
}

func copyInto(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}
