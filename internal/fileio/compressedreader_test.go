package fileio

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func TestCompressedReaderReadsPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(path, []byte("line one\nline two\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	r := NewCompressedReader(path)
	if err := r.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	scanner := r.Scanner()
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 2 || lines[0] != "line one" || lines[1] != "line two" {
		t.Fatalf("got lines %v", lines)
	}
}

func TestCompressedReaderReadsGzipFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "compressed.gz")

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte("hello\nworld\n"))
	gz.Close()
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	r := NewCompressedReader(path)
	if err := r.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	scanner := r.Scanner()
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 2 || lines[0] != "hello" || lines[1] != "world" {
		t.Fatalf("got lines %v", lines)
	}
}

func TestCompressedReaderOpenMissingFile(t *testing.T) {
	r := NewCompressedReader("/no/such/file")
	if err := r.Open(); err == nil {
		t.Fatalf("expected an error opening a missing file")
	}
}
