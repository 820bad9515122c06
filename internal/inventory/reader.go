package inventory

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"fshunter/internal/record"
)

func timeParse(s string) (time.Time, error) {
	return time.Parse(record.TimeLayout, s)
}

// ReadCSV loads a previously written inventory CSV back into FileRecords,
// used by `fshunter compare` to load source/target inventories.
func ReadCSV(path string) ([]record.FileRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read inventory %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("inventory %s has no header row", path)
	}

	col := map[string]int{}
	for i, h := range rows[0] {
		col[h] = i
	}

	var recs []record.FileRecord
	for _, row := range rows[1:] {
		size, _ := strconv.ParseInt(field(row, col, "size_bytes"), 10, 64)
		ctime, _ := timeParse(field(row, col, "ctime"))
		mtime, _ := timeParse(field(row, col, "mtime"))
		recs = append(recs, record.FileRecord{
			Name:         field(row, col, "name"),
			Extension:    field(row, col, "extension"),
			FullPath:     field(row, col, "full_path"),
			RelativePath: field(row, col, "relative_path"),
			SizeBytes:    size,
			CTime:        ctime,
			MTime:        mtime,
			Permissions:  field(row, col, "permissions"),
			Owner:        field(row, col, "owner"),
			MIMEType:     field(row, col, "mime_type"),
			ContentHash:  field(row, col, "content_hash"),
		})
	}
	return recs, nil
}

func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
