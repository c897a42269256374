package storage

import (
	"bufio"
	"fmt"
	"os"
)

// Writer persists fetched TSV pages to a single output file.
//
// The header line of the first page is written once; header lines re-sent
// by the API on later pages are recognized by exact match and skipped.
// The destination file is truncated on open, so re-running a fetch with the
// same output path overwrites rather than appends.
type Writer struct {
	path          string
	file          *os.File
	buf           *bufio.Writer
	header        string
	headerWritten bool
	rows          int
}

// NewWriter opens the destination file for writing, truncating it if it exists
func NewWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		path: path,
		file: file,
		buf:  bufio.NewWriter(file),
	}, nil
}

// WritePage appends one page's lines to the output file and returns the
// number of data rows written. The first line of the first page is recorded
// as the header and written once; an identical leading line on any later
// page is treated as a repeated header and dropped.
func (w *Writer) WritePage(lines []string) (int, error) {
	if len(lines) == 0 {
		return 0, nil
	}

	if !w.headerWritten {
		w.header = lines[0]
		if _, err := w.buf.WriteString(lines[0] + "\n"); err != nil {
			return 0, fmt.Errorf("failed to write header: %w", err)
		}
		w.headerWritten = true
		lines = lines[1:]
	} else if lines[0] == w.header {
		lines = lines[1:]
	}

	written := 0
	for _, line := range lines {
		if _, err := w.buf.WriteString(line + "\n"); err != nil {
			return written, fmt.Errorf("failed to write row: %w", err)
		}
		written++
	}
	w.rows += written

	return written, nil
}

// Rows returns the running count of data rows written (header excluded)
func (w *Writer) Rows() int {
	return w.rows
}

// Path returns the destination file path
func (w *Writer) Path() string {
	return w.path
}

// Close flushes buffered rows and closes the output file
func (w *Writer) Close() error {
	flushErr := w.buf.Flush()
	closeErr := w.file.Close()
	if flushErr != nil {
		return fmt.Errorf("failed to flush output file: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output file: %w", closeErr)
	}
	return nil
}
