package metrics

import (
	"encoding/json"
	"os"
	"sort"
	"time"

	"fshunter/internal/diff"
	"fshunter/internal/record"
)

// ComparisonOverview is the totals/match_rate block of delta_metrics.json.
type ComparisonOverview struct {
	TotalRows int     `json:"total_rows"`
	MatchRate float64 `json:"match_rate"`
}

// ComparisonExtensionStat breaks a comparison's status counts down per
// extension.
type ComparisonExtensionStat struct {
	Extension string         `json:"extension"`
	ByStatus  map[string]int `json:"by_status"`
}

// Latency summarizes mtime_delta across a comparison's rows.
type Latency struct {
	AvgSeconds float64 `json:"avg_seconds"`
	MinSeconds int64   `json:"min_seconds"`
	MaxSeconds int64   `json:"max_seconds"`
}

// ComparisonMetrics is the delta_metrics.json document (spec §4.10).
type ComparisonMetrics struct {
	Overview    ComparisonOverview         `json:"overview"`
	ByStatus    map[string]int             `json:"by_status"`
	ByExtension []ComparisonExtensionStat  `json:"by_extension"`
	Latency     Latency                    `json:"latency"`
}

// ComputeComparison aggregates a join-diff result into ComparisonMetrics.
func ComputeComparison(rows []diff.ComparisonRow) ComparisonMetrics {
	var m ComparisonMetrics
	m.ByStatus = map[string]int{}
	byExt := map[string]map[string]int{}
	var latSum, latCount int64
	var latMin, latMax int64
	first := true

	for _, r := range rows {
		m.ByStatus[string(r.Status)]++

		ext := extensionOf(r.RelativePath)
		if byExt[ext] == nil {
			byExt[ext] = map[string]int{}
		}
		byExt[ext][string(r.Status)]++

		// both_present per original_source/compare.py:224-239: every
		// match/differ row contributes a latency sample, including a
		// genuinely zero delta — it is not "no data".
		if r.Status == diff.StatusMatch || r.Status == diff.StatusDiffer {
			latSum += r.MTimeDeltaSeconds
			latCount++
			if first || r.MTimeDeltaSeconds < latMin {
				latMin = r.MTimeDeltaSeconds
			}
			if first || r.MTimeDeltaSeconds > latMax {
				latMax = r.MTimeDeltaSeconds
			}
			first = false
		}
	}

	m.Overview.TotalRows = len(rows)
	if len(rows) > 0 {
		m.Overview.MatchRate = round4(float64(m.ByStatus[string(diff.StatusMatch)]) / float64(len(rows)))
	}

	for ext, statuses := range byExt {
		m.ByExtension = append(m.ByExtension, ComparisonExtensionStat{Extension: ext, ByStatus: statuses})
	}
	sort.Slice(m.ByExtension, func(i, j int) bool { return m.ByExtension[i].Extension < m.ByExtension[j].Extension })

	if latCount > 0 {
		m.Latency.AvgSeconds = float64(latSum) / float64(latCount)
		m.Latency.MinSeconds = latMin
		m.Latency.MaxSeconds = latMax
	}
	return m
}

func extensionOf(relPath string) string {
	for i := len(relPath) - 1; i >= 0; i-- {
		switch relPath[i] {
		case '.':
			return relPath[i:]
		case '/':
			return "(none)"
		}
	}
	return "(none)"
}

// BucketRow is one line of the optional time-bucketed NDJSON stream
// (spec §4.10), keyed on source_mtime falling back to target_mtime and
// floored to the configured interval.
type BucketRow struct {
	Bucket           string   `json:"bucket"`
	SourceCount      int      `json:"source_count"`
	TargetCount      int      `json:"target_count"`
	Match            int      `json:"match"`
	Differ           int      `json:"differ"`
	MissingSource    int      `json:"missing_source"`
	MissingTarget    int      `json:"missing_target"`
	AvgLatencySec    float64  `json:"avg_latency_sec"`
	SourceFiles      []string `json:"source_files"`
	TargetFiles      []string `json:"target_files"`
}

// WriteBucketNDJSON writes one JSON object per line bucketing rows by
// their (source_mtime, falling back to target_mtime) floored to
// intervalMinutes. avg_latency_sec averages mtime_delta over the bucket's
// match/differ rows.
func WriteBucketNDJSON(path string, rows []diff.ComparisonRow, intervalMinutes int) error {
	if intervalMinutes <= 0 {
		intervalMinutes = 60
	}
	buckets := map[string]*BucketRow{}
	latSum := map[string]int64{}
	latCount := map[string]int64{}
	var order []string

	for _, r := range rows {
		ts := r.SourceMTime
		if ts == "" {
			ts = r.TargetMTime
		}
		label := floorBucketLabel(ts, intervalMinutes)
		b, ok := buckets[label]
		if !ok {
			b = &BucketRow{Bucket: label}
			buckets[label] = b
			order = append(order, label)
		}
		if r.SourceFullPath != "N/A" && r.SourceFullPath != "" {
			b.SourceCount++
			b.SourceFiles = append(b.SourceFiles, r.RelativePath)
		}
		if r.TargetFullPath != "N/A" && r.TargetFullPath != "" {
			b.TargetCount++
			b.TargetFiles = append(b.TargetFiles, r.RelativePath)
		}
		switch r.Status {
		case diff.StatusMatch:
			b.Match++
		case diff.StatusDiffer:
			b.Differ++
		case diff.StatusMissingInSource:
			b.MissingSource++
		case diff.StatusMissingInTarget:
			b.MissingTarget++
		}
		if r.Status == diff.StatusMatch || r.Status == diff.StatusDiffer {
			latSum[label] += r.MTimeDeltaSeconds
			latCount[label]++
		}
	}

	sort.Strings(order)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, label := range order {
		if n := latCount[label]; n > 0 {
			buckets[label].AvgLatencySec = float64(latSum[label]) / float64(n)
		}
		if err := enc.Encode(buckets[label]); err != nil {
			return err
		}
	}
	return nil
}

// floorBucketLabel parses a record.TimeLayout timestamp and floors it to
// intervalMinutes, rendering "YYYYMMDD_HHMM" (grounded on
// original_source/compare.py:write_metrics_jsonl's bucket format).
func floorBucketLabel(formatted string, intervalMinutes int) string {
	t, err := time.Parse(record.TimeLayout, formatted)
	if err != nil {
		return "unknown"
	}
	totalMin := t.Hour()*60 + t.Minute()
	flooredMin := (totalMin / intervalMinutes) * intervalMinutes
	floored := time.Date(t.Year(), t.Month(), t.Day(), flooredMin/60, flooredMin%60, 0, 0, t.Location())
	return floored.Format("20060102_1504")
}
