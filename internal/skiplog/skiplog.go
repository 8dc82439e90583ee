// Package skiplog writes a CSV audit trail of rejected input rows so an
// operator can review what was left out of an export and why.
package skiplog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Log collects rejected rows into a CSV file and tallies per-reason counts.
type Log struct {
	f       *os.File
	w       *csv.Writer
	reasons map[string]int
}

var header = []string{"reason", "record", "extension", "name"}

// Create opens the audit file, creating parent directories as needed, and
// writes the header row.
func Create(path string) (*Log, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	return &Log{f: f, w: w, reasons: make(map[string]int)}, nil
}

// Add records one rejected row.
func (l *Log) Add(reason string, record int, extension, name string) {
	l.reasons[reason]++
	_ = l.w.Write([]string{reason, strconv.Itoa(record), extension, name})
}

// Counts returns the per-reason totals recorded so far.
func (l *Log) Counts() map[string]int {
	out := make(map[string]int, len(l.reasons))
	for k, v := range l.reasons {
		out[k] = v
	}
	return out
}

// Close flushes and closes the audit file.
func (l *Log) Close() error {
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		_ = l.f.Close()
		return fmt.Errorf("flush skiplog: %w", err)
	}
	return l.f.Close()
}
