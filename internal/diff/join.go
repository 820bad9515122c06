package diff

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"

	"fshunter/internal/record"
)

// JoinStatus classifies a ComparisonRow (spec §4.9).
type JoinStatus string

const (
	StatusMatch            JoinStatus = "match"
	StatusDiffer           JoinStatus = "differ"
	StatusMissingInSource  JoinStatus = "missing_in_source"
	StatusMissingInTarget  JoinStatus = "missing_in_target"
)

// ChecksumStatus classifies the checksum comparison of a ComparisonRow.
type ChecksumStatus string

const (
	ChecksumMatch    ChecksumStatus = "Match"
	ChecksumMismatch ChecksumStatus = "Mismatch"
	ChecksumNA       ChecksumStatus = "N/A"
)

// ComparisonRow is the full attribute-level join result for one
// relative_path (spec §4.9/§6).
type ComparisonRow struct {
	RelativePath string
	Status       JoinStatus

	SourceMTime, TargetMTime   string
	SourceCTime, TargetCTime   string
	SourceSize, TargetSize     int64
	SourceFullPath, TargetFullPath string
	SourceHash, TargetHash     string

	MTimeDeltaSeconds int64
	CTimeDeltaSeconds int64
	SizeDelta         int64
	Checksum          ChecksumStatus
}

// Join performs the spec §4.9 full-outer join on relative_path using an
// ephemeral in-memory SQLite database (modernc.org/sqlite, the
// teacher's own dependency, repurposed here from a persistent backup
// index into a single-invocation comparison join — see DESIGN.md). The
// database and its tables never touch disk and are gone when Join
// returns.
func Join(source, target []record.FileRecord) ([]ComparisonRow, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open ephemeral join database: %w", err)
	}
	defer db.Close()

	const schema = `
	CREATE TABLE source_files (
		relative_path TEXT PRIMARY KEY, full_path TEXT, size_bytes INTEGER,
		mtime TEXT, ctime TEXT, content_hash TEXT
	);
	CREATE TABLE target_files (
		relative_path TEXT PRIMARY KEY, full_path TEXT, size_bytes INTEGER,
		mtime TEXT, ctime TEXT, content_hash TEXT
	);`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create join schema: %w", err)
	}

	if err := insertRows(db, "source_files", source); err != nil {
		return nil, err
	}
	if err := insertRows(db, "target_files", target); err != nil {
		return nil, err
	}

	const query = `
	SELECT
		COALESCE(s.relative_path, t.relative_path) AS relative_path,
		s.full_path, t.full_path,
		s.size_bytes, t.size_bytes,
		s.mtime, t.mtime,
		s.ctime, t.ctime,
		s.content_hash, t.content_hash
	FROM source_files s
	LEFT JOIN target_files t ON s.relative_path = t.relative_path
	UNION
	SELECT
		COALESCE(s.relative_path, t.relative_path) AS relative_path,
		s.full_path, t.full_path,
		s.size_bytes, t.size_bytes,
		s.mtime, t.mtime,
		s.ctime, t.ctime,
		s.content_hash, t.content_hash
	FROM target_files t
	LEFT JOIN source_files s ON s.relative_path = t.relative_path
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("run join query: %w", err)
	}
	defer rows.Close()

	var out []ComparisonRow
	for rows.Next() {
		var (
			relPath                    string
			sFullPath, tFullPath       sql.NullString
			sSize, tSize               sql.NullInt64
			sMTime, tMTime             sql.NullString
			sCTime, tCTime             sql.NullString
			sHash, tHash               sql.NullString
		)
		if err := rows.Scan(&relPath, &sFullPath, &tFullPath, &sSize, &tSize,
			&sMTime, &tMTime, &sCTime, &tCTime, &sHash, &tHash); err != nil {
			return nil, fmt.Errorf("scan join row: %w", err)
		}
		out = append(out, classify(relPath, sFullPath, tFullPath, sSize, tSize, sMTime, tMTime, sCTime, tCTime, sHash, tHash))
	}
	return out, rows.Err()
}

func insertRows(db *sql.DB, table string, recs []record.FileRecord) error {
	stmt, err := db.Prepare(fmt.Sprintf(
		`INSERT INTO %s (relative_path, full_path, size_bytes, mtime, ctime, content_hash) VALUES (?, ?, ?, ?, ?, ?)`, table))
	if err != nil {
		return fmt.Errorf("prepare insert into %s: %w", table, err)
	}
	defer stmt.Close()
	for _, r := range recs {
		if _, err := stmt.Exec(r.RelativePath, r.FullPath, r.SizeBytes,
			r.MTime.Format(record.TimeLayout), r.CTime.Format(record.TimeLayout), r.ContentHash); err != nil {
			return fmt.Errorf("insert into %s: %w", table, err)
		}
	}
	return nil
}

func classify(relPath string, sFullPath, tFullPath sql.NullString, sSize, tSize sql.NullInt64,
	sMTime, tMTime, sCTime, tCTime, sHash, tHash sql.NullString) ComparisonRow {

	row := ComparisonRow{
		RelativePath:    relPath,
		SourceFullPath:  nullOr(sFullPath, "N/A"),
		TargetFullPath:  nullOr(tFullPath, "N/A"),
		SourceMTime:     nullOr(sMTime, ""),
		TargetMTime:     nullOr(tMTime, ""),
		SourceCTime:     nullOr(sCTime, ""),
		TargetCTime:     nullOr(tCTime, ""),
		SourceHash:      sHash.String,
		TargetHash:      tHash.String,
	}
	if sSize.Valid {
		row.SourceSize = sSize.Int64
	}
	if tSize.Valid {
		row.TargetSize = tSize.Int64
	}

	switch {
	case !sFullPath.Valid:
		row.Status = StatusMissingInSource
	case !tFullPath.Valid:
		row.Status = StatusMissingInTarget
	default:
		sizeDiff := row.SourceSize != row.TargetSize
		mtimeDiff := row.SourceMTime != row.TargetMTime
		hashDiff := false
		if sHash.Valid && tHash.Valid && sHash.String != "" && tHash.String != "" {
			hashDiff = sHash.String != tHash.String
		}
		if sizeDiff || mtimeDiff || hashDiff {
			row.Status = StatusDiffer
		} else {
			row.Status = StatusMatch
		}
	}

	row.SizeDelta = row.TargetSize - row.SourceSize
	row.MTimeDeltaSeconds = deltaSeconds(row.SourceMTime, row.TargetMTime)
	row.CTimeDeltaSeconds = deltaSeconds(row.SourceCTime, row.TargetCTime)

	switch {
	case !sHash.Valid || !tHash.Valid || sHash.String == "" || tHash.String == "":
		row.Checksum = ChecksumNA
	case sHash.String == tHash.String:
		row.Checksum = ChecksumMatch
	default:
		row.Checksum = ChecksumMismatch
	}

	return row
}

func nullOr(v sql.NullString, fallback string) string {
	if v.Valid {
		return v.String
	}
	return fallback
}

func deltaSeconds(sourceFormatted, targetFormatted string) int64 {
	s, errS := time.Parse(record.TimeLayout, sourceFormatted)
	t, errT := time.Parse(record.TimeLayout, targetFormatted)
	if errS != nil || errT != nil {
		return 0
	}
	return int64(math.Round(t.Sub(s).Seconds()))
}
