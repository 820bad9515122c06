// Package inventory streams FileRecords to CSV or NDJSON and produces
// the scan summary row (spec C8, §6).
package inventory

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fshunter/internal/record"
)

// Format selects the inventory serialization.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatNDJSON Format = "jsonl"
)

// Writer streams records to disk one at a time so the output tail stays
// readable mid-scan (spec §5's "writes are flushed per record").
type Writer struct {
	format Format
	f      *os.File
	csvW   *csv.Writer
	hasDelta bool
	count  int
	sizeSum int64
	exts   map[string]bool
}

// Open creates path and prepares it to receive records in the given
// format. hasDelta controls whether the supplemented delta-enrichment
// columns are included in the header (SPEC_FULL.md §10).
func Open(path string, format Format, hasDelta bool) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := &Writer{format: format, f: f, hasDelta: hasDelta, exts: map[string]bool{}}
	if format == FormatCSV {
		w.csvW = csv.NewWriter(f)
		header := record.CSVHeader
		if hasDelta {
			header = record.DeltaCSVHeader
		}
		if err := w.csvW.Write(header); err != nil {
			f.Close()
			return nil, err
		}
		w.csvW.Flush()
	}
	return w, nil
}

// Write emits one record and flushes immediately.
func (w *Writer) Write(rec record.FileRecord) error {
	w.count++
	w.sizeSum += rec.SizeBytes
	ext := rec.Extension
	if ext == "" {
		ext = "(none)"
	}
	w.exts[ext] = true

	switch w.format {
	case FormatCSV:
		row := rec.Row()
		if w.hasDelta {
			row = rec.DeltaRow()
		}
		if err := w.csvW.Write(row); err != nil {
			return err
		}
		w.csvW.Flush()
		return w.csvW.Error()
	case FormatNDJSON:
		obj := recordToMap(rec, w.hasDelta)
		enc := json.NewEncoder(w.f)
		return enc.Encode(obj)
	default:
		return fmt.Errorf("unknown inventory format %q", w.format)
	}
}

func recordToMap(r record.FileRecord, hasDelta bool) map[string]string {
	m := map[string]string{
		"name":          r.Name,
		"extension":     r.Extension,
		"full_path":     r.FullPath,
		"relative_path": r.RelativePath,
		"size_bytes":    strconv.FormatInt(r.SizeBytes, 10),
		"ctime":         r.CTime.Format(record.TimeLayout),
		"mtime":         r.MTime.Format(record.TimeLayout),
		"permissions":   r.Permissions,
		"owner":         r.Owner,
		"mime_type":     r.MIMEType,
		"content_hash":  r.ContentHash,
	}
	if hasDelta {
		m["dataset_repo"] = r.DatasetRepo
		m["table_id"] = r.TableID
		m["filename_pattern"] = r.FilenamePattern
	}
	return m
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	if w.csvW != nil {
		w.csvW.Flush()
	}
	return w.f.Close()
}

// Count, SizeSum and UniqueExtensions report the running totals needed
// for the scan summary row.
func (w *Writer) Count() int            { return w.count }
func (w *Writer) SizeSum() int64        { return w.sizeSum }
func (w *Writer) UniqueExtensions() int { return len(w.exts) }

// WriteSummary emits the one-row scan summary CSV (spec §6).
func WriteSummary(path string, scanTime, scanStart, scanEnd time.Time, targets []string, totalFiles int, totalSize int64, uniqueExtensions int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"scan_time", "scan_start", "scan_end", "targets", "total_files", "total_size_bytes", "unique_extensions"}); err != nil {
		return err
	}
	row := []string{
		scanTime.Format(record.TimeLayout),
		scanStart.Format(record.TimeLayout),
		scanEnd.Format(record.TimeLayout),
		strings.Join(targets, ";"),
		strconv.Itoa(totalFiles),
		strconv.FormatInt(totalSize, 10),
		strconv.Itoa(uniqueExtensions),
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// OutputDir builds the fixed output layout path
// <output_root>/fs_hunter/<subcommand>/<YYYYMMDD_HHMMSS>/ (spec §6) and
// creates it.
func OutputDir(outputRoot, subcommand string, at time.Time) (string, error) {
	dir := filepath.Join(outputRoot, "fs_hunter", subcommand, at.Format("20060102_150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

var _ io.Closer = (*Writer)(nil)
