// Package reader opens anonymizer input, handling stdin and compressed
// files.
package reader

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Stdin is the input path meaning standard input.
const Stdin = "-"

// Open opens an input for reading, handling compression automatically
// based on extension. Supports .gz (gzip) and .bz2 (bzip2) compressed
// files. An empty path or Stdin means standard input.
func Open(filePath string) (io.ReadCloser, error) {
	if filePath == "" || filePath == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".gz":
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return &gzipFile{file: file, reader: gzReader}, nil
	case ".bz2":
		return &bzip2File{file: file, reader: bzip2.NewReader(file)}, nil
	default:
		return file, nil
	}
}

// gzipFile wraps gzip reader and file to close both.
type gzipFile struct {
	file   *os.File
	reader *gzip.Reader
}

func (g *gzipFile) Read(p []byte) (int, error) {
	return g.reader.Read(p)
}

func (g *gzipFile) Close() error {
	g.reader.Close()
	return g.file.Close()
}

// bzip2File wraps bzip2 reader and file to close both.
type bzip2File struct {
	file   *os.File
	reader io.Reader
}

func (b *bzip2File) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *bzip2File) Close() error {
	return b.file.Close()
}
