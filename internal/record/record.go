// Package record defines the canonical FileRecord and DeltaSpec types
// shared by every later stage of the pipeline.
package record

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the fixed timestamp rendering used in every CSV/NDJSON
// column and in console output: "YYYY-MM-DD HH:MM:SS".
const TimeLayout = "2006-01-02 15:04:05"

// FileRecord is the canonical per-file tuple produced by the discovery
// and enrichment stages. See spec §3 for the field-by-field invariants.
type FileRecord struct {
	Name         string
	Extension    string
	FullPath     string
	RelativePath string

	SizeBytes int64
	CTime     time.Time
	MTime     time.Time

	Permissions string
	Owner       string

	MIMEType    string
	ContentHash string

	// DatasetRepo, TableID and FilenamePattern are populated only when a
	// delta-manifest CSV was supplied and FullPath fell under one of its
	// directory prefixes. See DeltaSpec.
	DatasetRepo     string
	TableID         string
	FilenamePattern string
}

// NewFileRecord builds a FileRecord's identity fields from a full path and
// the base directory it was discovered under, leaving stat/ownership/
// content fields to be filled in by later tiers.
func NewFileRecord(fullPath, baseDir string) FileRecord {
	name := filepath.Base(fullPath)
	rel, err := filepath.Rel(baseDir, fullPath)
	if err != nil {
		rel = name
	}
	rel = filepath.ToSlash(rel)
	rel = strings.TrimPrefix(rel, "/")

	return FileRecord{
		Name:         name,
		Extension:    filepath.Ext(name),
		FullPath:     fullPath,
		RelativePath: rel,
	}
}

// CSVHeader is the fixed Inventory CSV / NDJSON field order (spec §6).
var CSVHeader = []string{
	"name", "extension", "full_path", "relative_path",
	"size_bytes", "ctime", "mtime", "permissions", "owner",
	"mime_type", "content_hash",
}

// DeltaCSVHeader extends CSVHeader with the supplemented delta-manifest
// enrichment columns (SPEC_FULL.md §10), appended only when a manifest
// was supplied for the scan.
var DeltaCSVHeader = append(append([]string{}, CSVHeader...), "dataset_repo", "table_id", "filename_pattern")

// Row renders the record as a CSV row matching CSVHeader's order.
func (r FileRecord) Row() []string {
	return []string{
		r.Name, r.Extension, r.FullPath, r.RelativePath,
		strconv.FormatInt(r.SizeBytes, 10), r.CTime.Format(TimeLayout), r.MTime.Format(TimeLayout),
		r.Permissions, r.Owner, r.MIMEType, r.ContentHash,
	}
}

// DeltaRow renders the record with the supplemental delta-enrichment
// columns appended.
func (r FileRecord) DeltaRow() []string {
	return append(r.Row(), r.DatasetRepo, r.TableID, r.FilenamePattern)
}

// DeltaSpec is a single row of an external delta-manifest CSV: it
// supplies a scan root and, independently, enriches any FileRecord whose
// FullPath falls beneath Directory.
type DeltaSpec struct {
	Directory       string
	DatasetRepo     string
	TableID         string
	FilenamePattern string
}

// Matches reports whether fullPath falls under this spec's directory
// prefix, normalized for a trailing slash (grounded on
// original_source/utils.py:enrich_with_delta).
func (d DeltaSpec) Matches(fullPath string) bool {
	dir := strings.TrimRight(filepath.ToSlash(d.Directory), "/") + "/"
	p := filepath.ToSlash(fullPath)
	return strings.HasPrefix(p, dir)
}

// Enrich copies this spec's annotation fields onto rec.
func (d DeltaSpec) Enrich(rec *FileRecord) {
	rec.DatasetRepo = d.DatasetRepo
	rec.TableID = d.TableID
	rec.FilenamePattern = d.FilenamePattern
}
