/* ============================================================= *\
   compressedreader.go

   CompressedReader opens a plain, gzip- or bzip2-compressed file
   behind a single bufio.Scanner, so every line-oriented reader in
   this codebase (internal/asrel, internal/seedfile) can ignore
   compression entirely. Adapted from the simulator's reader of the
   same name.
\* ============================================================= */

package fileio

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// CompressedReader transparently decompresses .gz/.bz2 files, or
// passes plain files through untouched.
type CompressedReader struct {
	filename     string
	fp           *os.File
	gz           *gzip.Reader
	decompressed io.Reader
}

// NewCompressedReader returns a reader for filename. Call Open before
// Scanner, and Close when done.
func NewCompressedReader(filename string) *CompressedReader {
	return &CompressedReader{filename: filename}
}

// Open opens the underlying file and wires up decompression based on
// the filename's extension.
func (r *CompressedReader) Open() error {
	fp, err := os.Open(r.filename)
	if err != nil {
		return fmt.Errorf("fileio: %w", err)
	}
	r.fp = fp

	switch {
	case strings.HasSuffix(r.filename, ".gz"):
		gz, err := gzip.NewReader(fp)
		if err != nil {
			fp.Close()
			return fmt.Errorf("fileio: %s: %w", r.filename, err)
		}
		r.gz = gz
		r.decompressed = gz
	case strings.HasSuffix(r.filename, ".bz2"):
		r.decompressed = bzip2.NewReader(fp)
	default:
		r.decompressed = fp
	}
	return nil
}

// Scanner returns a line scanner over the decompressed content.
func (r *CompressedReader) Scanner() *bufio.Scanner {
	return bufio.NewScanner(r.decompressed)
}

// Close releases the underlying file (and gzip reader, if any).
func (r *CompressedReader) Close() {
	if r.gz != nil {
		r.gz.Close()
	}
	if r.fp != nil {
		r.fp.Close()
	}
}
