// Package metrics aggregates inventory and comparison metrics (spec
// §4.10): scan performance, size statistics, per-extension and
// per-directory breakdowns, and time-of-day bucketing.
package metrics

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"time"

	"fshunter/internal/record"
)

// SizeStats summarizes size_bytes across a record set.
type SizeStats struct {
	Sum  int64   `json:"sum"`
	Mean float64 `json:"mean"`
	Min  int64   `json:"min"`
	Max  int64   `json:"max"`
}

// ExtensionStat is one by_extension entry.
type ExtensionStat struct {
	Extension  string `json:"extension"`
	Count      int    `json:"count"`
	TotalBytes int64  `json:"total_bytes"`
}

// DirectoryStat is one by_directory entry.
type DirectoryStat struct {
	Directory  string `json:"directory"`
	Count      int    `json:"count"`
	TotalBytes int64  `json:"total_bytes"`
}

// TimeBucket is one time-of-day slot in the inventory's time_buckets
// array.
type TimeBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// InventoryMetrics is the scan-side metrics.json document (spec §4.10).
type InventoryMetrics struct {
	ScanPerformance struct {
		TotalRecords    int     `json:"total_records"`
		DurationSeconds float64 `json:"duration_seconds"`
	} `json:"scan_performance"`
	SizeStats        SizeStats       `json:"size_stats"`
	ByExtension      []ExtensionStat `json:"by_extension"`
	ByDirectory      []DirectoryStat `json:"by_directory"`
	TimeBuckets      []TimeBucket    `json:"time_buckets"`
	PeakBucketLabel  string          `json:"peak_bucket_label"`
	EmptyBucketCount int             `json:"empty_bucket_count"`
}

// ComputeInventory builds the full InventoryMetrics document for recs,
// given the scan's wall-clock duration and a time-of-day bucket interval
// in minutes (must divide 1440 evenly; defaults to 60 when <= 0).
func ComputeInventory(recs []record.FileRecord, duration time.Duration, bucketIntervalMinutes int) InventoryMetrics {
	var m InventoryMetrics
	m.ScanPerformance.TotalRecords = len(recs)
	m.ScanPerformance.DurationSeconds = duration.Seconds()

	m.SizeStats = computeSizeStats(recs)
	m.ByExtension = computeByExtension(recs)
	m.ByDirectory = computeByDirectory(recs)

	if bucketIntervalMinutes <= 0 {
		bucketIntervalMinutes = 60
	}
	m.TimeBuckets, m.PeakBucketLabel, m.EmptyBucketCount = computeTimeBuckets(recs, bucketIntervalMinutes)
	return m
}

func computeSizeStats(recs []record.FileRecord) SizeStats {
	if len(recs) == 0 {
		return SizeStats{}
	}
	var s SizeStats
	s.Min = recs[0].SizeBytes
	s.Max = recs[0].SizeBytes
	for _, r := range recs {
		s.Sum += r.SizeBytes
		if r.SizeBytes < s.Min {
			s.Min = r.SizeBytes
		}
		if r.SizeBytes > s.Max {
			s.Max = r.SizeBytes
		}
	}
	s.Mean = float64(s.Sum) / float64(len(recs))
	return s
}

func computeByExtension(recs []record.FileRecord) []ExtensionStat {
	byExt := map[string]*agg{}
	for _, r := range recs {
		key := r.Extension
		if key == "" {
			key = "(none)"
		}
		a, ok := byExt[key]
		if !ok {
			a = &agg{}
			byExt[key] = a
		}
		a.count++
		a.bytes += r.SizeBytes
	}
	return sortedExtensionStats(byExt)
}

func sortedExtensionStats(byExt map[string]*agg) []ExtensionStat {
	out := make([]ExtensionStat, 0, len(byExt))
	for ext, a := range byExt {
		out = append(out, ExtensionStat{Extension: ext, Count: a.count, TotalBytes: a.bytes})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Extension < out[j].Extension })
	return out
}

type agg struct {
	count int
	bytes int64
}

func computeByDirectory(recs []record.FileRecord) []DirectoryStat {
	byDir := map[string]*agg{}
	for _, r := range recs {
		key := filepath.Base(filepath.Dir(r.FullPath))
		a, ok := byDir[key]
		if !ok {
			a = &agg{}
			byDir[key] = a
		}
		a.count++
		a.bytes += r.SizeBytes
	}
	out := make([]DirectoryStat, 0, len(byDir))
	for dir, a := range byDir {
		out = append(out, DirectoryStat{Directory: dir, Count: a.count, TotalBytes: a.bytes})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Directory < out[j].Directory })
	return out
}

func computeTimeBuckets(recs []record.FileRecord, intervalMinutes int) ([]TimeBucket, string, int) {
	numBuckets := (24 * 60) / intervalMinutes
	buckets := make([]TimeBucket, numBuckets)
	for i := range buckets {
		startMin := i * intervalMinutes
		endMin := startMin + intervalMinutes
		buckets[i].Label = fmt.Sprintf("%s-%s", minutesToHHMM(startMin), minutesToHHMM(endMin))
	}

	for _, r := range recs {
		tod := r.MTime.Hour()*60 + r.MTime.Minute()
		idx := tod / intervalMinutes
		if idx >= numBuckets {
			idx = numBuckets - 1
		}
		buckets[idx].Count++
	}

	peak := ""
	peakCount := -1
	emptyCount := 0
	for _, b := range buckets {
		if b.Count > peakCount {
			peakCount = b.Count
			peak = b.Label
		}
		if b.Count == 0 {
			emptyCount++
		}
	}
	return buckets, peak, emptyCount
}

func minutesToHHMM(total int) string {
	h := (total / 60) % 24
	if total >= 24*60 {
		h = 24
	}
	m := total % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// round4 rounds to 4 decimal places, used for match_rate (spec §4.10).
func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
