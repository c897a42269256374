package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriterHeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	rows, err := w.WritePage([]string{"Entry\tGene", "P00001\tabc", "P00002\tdef"})
	if err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}
	if rows != 2 {
		t.Errorf("expected 2 data rows, got %d", rows)
	}

	// Second page re-sends the header; it must be dropped
	rows, err = w.WritePage([]string{"Entry\tGene", "P00003\tghi"})
	if err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected 1 data row, got %d", rows)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	want := "Entry\tGene\nP00001\tabc\nP00002\tdef\nP00003\tghi\n"
	if string(data) != want {
		t.Errorf("unexpected output:\ngot:  %q\nwant: %q", string(data), want)
	}
	if w.Rows() != 3 {
		t.Errorf("expected running total 3, got %d", w.Rows())
	}
}

func TestWriterSecondPageWithoutHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	if _, err := w.WritePage([]string{"Entry", "P00001"}); err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}
	// A page whose first line is not the header keeps all its lines
	rows, err := w.WritePage([]string{"P00002", "P00003"})
	if err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}
	if rows != 2 {
		t.Errorf("expected 2 data rows, got %d", rows)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d: %q", len(lines), lines)
	}
}

func TestWriterEmptyPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	rows, err := w.WritePage(nil)
	if err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}
	if rows != 0 || w.Rows() != 0 {
		t.Errorf("expected no rows written, got %d (total %d)", rows, w.Rows())
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("expected empty file, got %d bytes", info.Size())
	}
}

func TestWriterOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")

	first, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if _, err := first.WritePage([]string{"Entry", "P00001", "P00002"}); err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if _, err := second.WritePage([]string{"Entry", "P99999"}); err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}
	if err := second.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	want := "Entry\nP99999\n"
	if string(data) != want {
		t.Errorf("re-run did not overwrite:\ngot:  %q\nwant: %q", string(data), want)
	}
}
