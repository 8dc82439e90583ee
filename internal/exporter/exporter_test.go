package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestWriteAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "ucm.csv")
	w, err := Create(path, []string{"Extension", "Name"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Nothing at the final path while the file is staged.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("final path exists before Close")
	}

	if err := w.Write([]string{"1001", "John"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Write([]string{"1002", "comma, quoted"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if w.Rows() != 2 {
		t.Errorf("Rows() = %d, want 2", w.Rows())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	want := [][]string{
		{"Extension", "Name"},
		{"1001", "John"},
		{"1002", "comma, quoted"},
	}
	if got := readCSV(t, path); !reflect.DeepEqual(got, want) {
		t.Errorf("output = %v, want %v", got, want)
	}
}

func TestAbortLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ucm.csv")
	w, err := Create(path, []string{"A"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_ = w.Write([]string{"1"})
	w.Abort()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("abort left files behind: %v", entries)
	}
}
