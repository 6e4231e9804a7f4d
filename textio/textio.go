// Package textio provides gzip-transparent file IO and CSV/TSV helpers.
// Paths ending in .gz are compressed and decompressed automatically.
package textio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

type gzReadCloser struct {
	io.Reader
	gz *gzip.Reader
	f  *os.File
}

func (rc *gzReadCloser) Close() error {
	if err := rc.gz.Close(); err != nil {
		rc.f.Close()
		return err
	}
	return rc.f.Close()
}

type gzWriteCloser struct {
	io.Writer
	gz *gzip.Writer
	f  *os.File
}

func (wc *gzWriteCloser) Close() error {
	if err := wc.gz.Close(); err != nil {
		wc.f.Close()
		return err
	}
	return wc.f.Close()
}

// Open opens path for reading, unwrapping gzip when the name ends in .gz.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("textio: open %s: %w", path, err)
	}
	return &gzReadCloser{Reader: gz, gz: gz, f: f}, nil
}

// Create opens path for writing, wrapping output in gzip when the name ends in .gz.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz := gzip.NewWriter(f)
	return &gzWriteCloser{Writer: gz, gz: gz, f: f}, nil
}

// ReadFile reads the whole file as text.
func ReadFile(path string) (string, error) {
	b, err := ReadBytes(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadBytes reads the whole file as binary.
func ReadBytes(path string) ([]byte, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// WriteFile writes content to path.
func WriteFile(path, content string) error {
	return WriteBytes(path, []byte(content))
}

// WriteBytes writes binary content to path.
func WriteBytes(path string, content []byte) error {
	w, err := Create(path)
	if err != nil {
		return err
	}
	if _, err := w.Write(content); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
