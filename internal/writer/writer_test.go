package writer

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenPlainFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.sql")

	wc, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := wc.Write([]byte("anonymized")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := wc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "anonymized" {
		t.Errorf("Wrote %q, want %q", data, "anonymized")
	}
}

func TestOpenGzipFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.sql.gz")

	wc, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := wc.Write([]byte("compressed output")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := wc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip.NewReader() error = %v", err)
	}
	defer gr.Close()

	data, err := io.ReadAll(gr)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(data) != "compressed output" {
		t.Errorf("Read %q, want decompressed content", data)
	}
}

func TestOpenBzip2Unsupported(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "out.sql.bz2")); err == nil {
		t.Error("Open() expected error for .bz2 output, got nil")
	}
}

func TestOpenStdout(t *testing.T) {
	wc, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") error = %v", err)
	}
	if wc != os.Stdout {
		t.Error("Open(\"\") should return os.Stdout")
	}
}
