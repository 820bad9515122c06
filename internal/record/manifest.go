package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// requiredDeltaColumns are the external manifest's mandatory headers
// (spec §6).
var requiredDeltaColumns = []string{"Directory", "Dataset Repo", "SF Table", "Filename"}

// LoadDeltaManifest parses a delta-manifest CSV into DeltaSpecs. Rows
// with a blank Directory are skipped for scan-root extraction but
// retained for enrichment, per spec §6.
func LoadDeltaManifest(path string) ([]DeltaSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open delta manifest %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read delta manifest header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	for _, required := range requiredDeltaColumns {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("delta manifest %s missing required column %q", path, required)
		}
	}

	var specs []DeltaSpec
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read delta manifest row: %w", err)
		}
		specs = append(specs, DeltaSpec{
			Directory:       row[col["Directory"]],
			DatasetRepo:     row[col["Dataset Repo"]],
			TableID:         row[col["SF Table"]],
			FilenamePattern: row[col["Filename"]],
		})
	}
	return specs, nil
}

// ScanRoots extracts the unique, non-blank Directory values from a set
// of DeltaSpecs, usable as scan roots (spec §3 DeltaSpec, path (a)).
func ScanRoots(specs []DeltaSpec) []string {
	seen := map[string]bool{}
	var roots []string
	for _, s := range specs {
		dir := strings.TrimSpace(s.Directory)
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		roots = append(roots, dir)
	}
	return roots
}
