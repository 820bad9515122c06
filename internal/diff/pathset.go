// Package diff implements the two comparison algorithms from spec
// §4.8/§4.9: a path-set delta and a full attribute-level outer join.
package diff

import "fshunter/internal/record"

// PathSetRow is one row of the path-set diff output: a FileRecord
// tagged with whether it was added ("+") or removed ("-").
type PathSetRow struct {
	Change string
	Record record.FileRecord
}

// PathSetResult carries the diff rows plus the counts spec §4.8 defines.
type PathSetResult struct {
	Rows      []PathSetRow
	Added     int
	Removed   int
	Unchanged int
}

// PathSet computes added = target - source and removed = source -
// target by full_path (spec §4.8).
func PathSet(source, target []record.FileRecord) PathSetResult {
	sourceByPath := make(map[string]record.FileRecord, len(source))
	for _, r := range source {
		sourceByPath[r.FullPath] = r
	}
	targetByPath := make(map[string]record.FileRecord, len(target))
	for _, r := range target {
		targetByPath[r.FullPath] = r
	}

	var result PathSetResult
	for path, r := range targetByPath {
		if _, ok := sourceByPath[path]; !ok {
			result.Rows = append(result.Rows, PathSetRow{Change: "+", Record: r})
			result.Added++
		}
	}
	for path, r := range sourceByPath {
		if _, ok := targetByPath[path]; !ok {
			result.Rows = append(result.Rows, PathSetRow{Change: "-", Record: r})
			result.Removed++
		}
	}
	result.Unchanged = len(sourceByPath) - result.Removed
	return result
}
