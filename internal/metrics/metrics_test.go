package metrics

import (
	"testing"
	"time"

	"fshunter/internal/diff"
	"fshunter/internal/record"
)

func TestComputeInventorySizeStats(t *testing.T) {
	recs := []record.FileRecord{
		{SizeBytes: 10, Extension: ".txt", FullPath: "/a/x.txt", MTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{SizeBytes: 30, Extension: ".txt", FullPath: "/a/y.txt", MTime: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)},
		{SizeBytes: 0, Extension: "", FullPath: "/b/z", MTime: time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)},
	}
	m := ComputeInventory(recs, time.Second, 60)
	if m.SizeStats.Sum != 40 {
		t.Errorf("SizeStats.Sum = %d, want 40", m.SizeStats.Sum)
	}
	if m.SizeStats.Min != 0 || m.SizeStats.Max != 30 {
		t.Errorf("SizeStats min/max = %d/%d, want 0/30", m.SizeStats.Min, m.SizeStats.Max)
	}
	if len(m.TimeBuckets) != 24 {
		t.Fatalf("got %d buckets, want 24 for a 60-minute interval", len(m.TimeBuckets))
	}
	if m.TimeBuckets[9].Count != 2 {
		t.Errorf("09:00 bucket count = %d, want 2", m.TimeBuckets[9].Count)
	}
}

func TestComputeInventoryByExtensionNoneKey(t *testing.T) {
	recs := []record.FileRecord{{Extension: "", SizeBytes: 5, FullPath: "/a/noext"}}
	m := ComputeInventory(recs, 0, 60)
	if len(m.ByExtension) != 1 || m.ByExtension[0].Extension != "(none)" {
		t.Errorf("expected a single (none) extension bucket, got %+v", m.ByExtension)
	}
}

func TestComputeComparisonMatchRate(t *testing.T) {
	rows := []diff.ComparisonRow{
		{RelativePath: "a.txt", Status: diff.StatusMatch},
		{RelativePath: "b.txt", Status: diff.StatusDiffer},
		{RelativePath: "c.txt", Status: diff.StatusMissingInTarget},
		{RelativePath: "d.txt", Status: diff.StatusMissingInSource},
	}
	m := ComputeComparison(rows)
	if m.Overview.TotalRows != 4 {
		t.Errorf("TotalRows = %d, want 4", m.Overview.TotalRows)
	}
	if m.Overview.MatchRate != 0.25 {
		t.Errorf("MatchRate = %v, want 0.25", m.Overview.MatchRate)
	}
}

func TestComputeComparisonLatencyIncludesZeroDeltaMatch(t *testing.T) {
	rows := []diff.ComparisonRow{
		{RelativePath: "a.txt", Status: diff.StatusMatch, MTimeDeltaSeconds: 0},
		{RelativePath: "b.txt", Status: diff.StatusDiffer, MTimeDeltaSeconds: 10},
		{RelativePath: "c.txt", Status: diff.StatusMissingInTarget, MTimeDeltaSeconds: 99},
	}
	m := ComputeComparison(rows)
	if m.Latency.AvgSeconds != 5 {
		t.Errorf("Latency.AvgSeconds = %v, want 5 (zero-delta match must count as a sample)", m.Latency.AvgSeconds)
	}
	if m.Latency.MinSeconds != 0 {
		t.Errorf("Latency.MinSeconds = %d, want 0", m.Latency.MinSeconds)
	}
	if m.Latency.MaxSeconds != 10 {
		t.Errorf("Latency.MaxSeconds = %d, want 10", m.Latency.MaxSeconds)
	}
}
