package diff

import (
	"testing"
	"time"

	"fshunter/internal/record"
)

func TestPathSetDiffAgainstSelfIsEmpty(t *testing.T) {
	recs := []record.FileRecord{{FullPath: "/a/x.parq"}, {FullPath: "/a/y.parq"}}
	result := PathSet(recs, recs)
	if len(result.Rows) != 0 {
		t.Errorf("expected no diff rows comparing a set to itself, got %d", len(result.Rows))
	}
}

func TestPathSetDiffFromEmptySource(t *testing.T) {
	target := []record.FileRecord{{FullPath: "/a/x.parq"}, {FullPath: "/a/y.parq"}}
	result := PathSet(nil, target)
	if result.Added != 2 || result.Removed != 0 {
		t.Errorf("got added=%d removed=%d, want added=2 removed=0", result.Added, result.Removed)
	}
}

func TestPathSetDiffScenario(t *testing.T) {
	source := []record.FileRecord{
		{FullPath: "/foo.parq", SizeBytes: 100},
		{FullPath: "/bar.parq", SizeBytes: 50},
	}
	target := []record.FileRecord{
		{FullPath: "/foo.parq", SizeBytes: 100},
		{FullPath: "/baz.parq", SizeBytes: 200},
	}
	result := PathSet(source, target)
	if result.Added != 1 || result.Removed != 1 {
		t.Fatalf("got added=%d removed=%d, want 1/1", result.Added, result.Removed)
	}
	var addedPath, removedPath string
	for _, row := range result.Rows {
		if row.Change == "+" {
			addedPath = row.Record.FullPath
		} else {
			removedPath = row.Record.FullPath
		}
	}
	if addedPath != "/baz.parq" || removedPath != "/bar.parq" {
		t.Errorf("got added=%s removed=%s, want /baz.parq and /bar.parq", addedPath, removedPath)
	}
}

func TestJoinDiffScenario(t *testing.T) {
	now := time.Now()
	source := []record.FileRecord{
		{RelativePath: "foo.parq", FullPath: "/s/foo.parq", SizeBytes: 100, MTime: now, CTime: now},
		{RelativePath: "bar.parq", FullPath: "/s/bar.parq", SizeBytes: 50, MTime: now, CTime: now},
	}
	target := []record.FileRecord{
		{RelativePath: "foo.parq", FullPath: "/t/foo.parq", SizeBytes: 100, MTime: now, CTime: now},
		{RelativePath: "baz.parq", FullPath: "/t/baz.parq", SizeBytes: 200, MTime: now, CTime: now},
	}
	rows, err := Join(source, target)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (foo, bar, baz)", len(rows))
	}

	byPath := map[string]ComparisonRow{}
	for _, r := range rows {
		byPath[r.RelativePath] = r
	}
	if byPath["foo.parq"].Status != StatusMatch {
		t.Errorf("foo.parq status = %s, want match", byPath["foo.parq"].Status)
	}
	if byPath["bar.parq"].Status != StatusMissingInTarget {
		t.Errorf("bar.parq status = %s, want missing_in_target", byPath["bar.parq"].Status)
	}
	if byPath["baz.parq"].Status != StatusMissingInSource {
		t.Errorf("baz.parq status = %s, want missing_in_source", byPath["baz.parq"].Status)
	}
}

func TestFormatDelta(t *testing.T) {
	cases := map[int64]string{
		0:     "",
		65:    "+01:05",
		-65:   "-01:05",
		3661:  "+01:01:01",
		-3661: "-01:01:01",
	}
	for in, want := range cases {
		if got := FormatDelta(in); got != want {
			t.Errorf("FormatDelta(%d) = %q, want %q", in, got, want)
		}
	}
}
