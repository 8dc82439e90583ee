// Package exporter writes the UCM import CSV. Rows are written through as
// they are produced; the file is staged under a temporary name and renamed
// into place on Close, so a failed run never leaves a half-written export
// behind.
package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes the output CSV: one header row, then one data row per
// accepted extension, in accepted order.
type Writer struct {
	path string
	f    *os.File
	w    *csv.Writer
	rows int
}

// Create stages the output file next to its final path and writes the header
// row immediately.
func Create(path string, header []string) (*Writer, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return nil, fmt.Errorf("stage output file: %w", err)
	}
	w := csv.NewWriter(f)
	ew := &Writer{path: path, f: f, w: w}
	if err := w.Write(header); err != nil {
		ew.Abort()
		return nil, fmt.Errorf("write header: %w", err)
	}
	return ew, nil
}

// Write appends one data row.
func (e *Writer) Write(row []string) error {
	if err := e.w.Write(row); err != nil {
		return fmt.Errorf("write row %d: %w", e.rows+1, err)
	}
	e.rows++
	return nil
}

// Rows returns the number of data rows written so far.
func (e *Writer) Rows() int { return e.rows }

// Close flushes, fsyncs, and moves the staged file to its final path.
func (e *Writer) Close() error {
	e.w.Flush()
	if err := e.w.Error(); err != nil {
		e.Abort()
		return fmt.Errorf("flush output: %w", err)
	}
	if err := e.f.Sync(); err != nil {
		e.Abort()
		return fmt.Errorf("sync output: %w", err)
	}
	if err := e.f.Close(); err != nil {
		_ = os.Remove(e.f.Name())
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(e.f.Name(), e.path); err != nil {
		_ = os.Remove(e.f.Name())
		return fmt.Errorf("finalize output: %w", err)
	}
	return nil
}

// Abort discards the staged file. Safe to call after a failed Close.
func (e *Writer) Abort() {
	_ = e.f.Close()
	_ = os.Remove(e.f.Name())
}
