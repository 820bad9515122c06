package diff

import (
	"encoding/csv"
	"os"
	"strconv"

	"fshunter/internal/record"
)

// WritePathSetCSV writes the path-set diff (spec §6 "Diff CSV
// (path-set)"): a "change" column followed by the inventory columns.
func WritePathSetCSV(path string, result PathSetResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append([]string{"change"}, record.CSVHeader...)); err != nil {
		return err
	}
	for _, row := range result.Rows {
		if err := w.Write(append([]string{row.Change}, row.Record.Row()...)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// comparisonCSVHeader is the fixed Comparison CSV column order (spec §6).
var comparisonCSVHeader = []string{
	"relative_path", "status", "source_mtime", "target_mtime", "mtime_delta",
	"source_ctime", "target_ctime", "ctime_delta", "source_size", "target_size",
	"size_delta", "checksum", "source_full_path", "target_full_path",
}

// WriteComparisonCSV writes the join-diff result (spec §6 "Comparison
// CSV (join)"). Missing-side string values render "N/A"; missing-side
// sizes render 0. The full-path "N/A" and zero-size defaults are already
// in ComparisonRow (set by classify()); missing-side timestamps are empty
// there and rendered "N/A" here.
func WriteComparisonCSV(path string, rows []ComparisonRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(comparisonCSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			r.RelativePath, string(r.Status),
			naIfEmpty(r.SourceMTime), naIfEmpty(r.TargetMTime), FormatDelta(r.MTimeDeltaSeconds),
			naIfEmpty(r.SourceCTime), naIfEmpty(r.TargetCTime), FormatDelta(r.CTimeDeltaSeconds),
			strconv.FormatInt(r.SourceSize, 10), strconv.FormatInt(r.TargetSize, 10),
			strconv.FormatInt(r.SizeDelta, 10), string(r.Checksum),
			r.SourceFullPath, r.TargetFullPath,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func naIfEmpty(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
