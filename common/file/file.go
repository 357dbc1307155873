// Package file opens input documents from local paths or http(s) URLs.
package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/xishang0128/ini-translate-go/compression"
)

var (
	userAgent  = "ini-translate"
	httpClient = &http.Client{Timeout: 60 * time.Second}
)

// SetUserAgent sets the User-Agent header sent with remote requests.
func SetUserAgent(ua string) {
	userAgent = ua
}

// SetHTTPClientTimeout sets the timeout for remote requests.
func SetHTTPClientTimeout(d time.Duration) {
	httpClient.Timeout = d
}

// IsRemote reports whether p names an http(s) resource.
func IsRemote(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// Exists reports whether p can be opened. Remote URLs are assumed to exist;
// their availability is only known once they are fetched.
func Exists(p string) bool {
	if IsRemote(p) {
		return true
	}
	_, err := os.Stat(p)
	return err == nil
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Open returns the decompressed contents of a local file or remote URL.
// Compression is chosen from the name's extension (.xz, .zst, .bz2, .br).
// A missing local file yields an error matching fs.ErrNotExist.
func Open(p string) (io.ReadCloser, error) {
	var (
		raw  io.ReadCloser
		name string
		err  error
	)
	if IsRemote(p) {
		raw, err = openHTTP(p)
		name = path.Base(strings.SplitN(p, "?", 2)[0])
	} else {
		raw, err = os.Open(p)
		name = p
	}
	if err != nil {
		return nil, err
	}

	dec, err := compression.Default().NewReader(compression.DetectType(name), raw)
	if err != nil {
		raw.Close()
		return nil, fmt.Errorf("decompress %s: %w", p, err)
	}
	return &readCloser{Reader: dec, closers: []io.Closer{raw, dec}}, nil
}

func openHTTP(url string) (io.ReadCloser, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, &fs.PathError{Op: "get", Path: url, Err: fs.ErrNotExist}
	case resp.StatusCode != http.StatusOK:
		resp.Body.Close()
		return nil, fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}
	return resp.Body, nil
}

// ReadAll opens p with Open and returns its full decompressed contents.
func ReadAll(p string) ([]byte, error) {
	rc, err := Open(p)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// CopyFile copies a regular file with its permission bits, truncating dst
// if it already exists.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
