package inventory

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fshunter/internal/record"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")

	w, err := Open(path, FormatCSV, false)
	if err != nil {
		t.Fatal(err)
	}
	rec := record.FileRecord{
		Name: "x.parq", Extension: ".parq",
		FullPath: "/root/a/x.parq", RelativePath: "a/x.parq",
		SizeBytes: 10, MTime: time.Now(), CTime: time.Now(),
		Permissions: "-rw-r--r--", Owner: "alice",
		MIMEType: "application/octet-stream",
	}
	if err := w.Write(rec); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (header + 1 record)", len(rows))
	}
	if rows[0][0] != "name" {
		t.Errorf("header[0] = %q, want name", rows[0][0])
	}
	if rows[1][3] != "a/x.parq" {
		t.Errorf("relative_path column = %q, want a/x.parq", rows[1][3])
	}
}

func TestOutputDirLayout(t *testing.T) {
	root := t.TempDir()
	at := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	dir, err := OutputDir(root, "scan", at)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "fs_hunter", "scan", "20260730_120000")
	if dir != want {
		t.Errorf("OutputDir = %q, want %q", dir, want)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("expected OutputDir to create the directory")
	}
}
