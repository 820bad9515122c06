package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fshunter/internal/dedup"
	"fshunter/internal/filter"
	"fshunter/internal/pattern"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	data := make([]byte, size)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunAppliesNameFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "x.parq"), 10)
	writeFile(t, filepath.Join(root, "a", "y.txt"), 10)

	m, err := pattern.Compile(pattern.KindGlob, pattern.TargetName, "*.parq")
	if err != nil {
		t.Fatal(err)
	}

	opts := Options{
		Workers:   2,
		Cascade:   filter.Cascade{Tier0: filter.Tier0{NameMatchers: []*pattern.Matcher{m}}},
		DedupMode: dedup.ModeNamePattern,
	}
	res, err := Run(context.Background(), []string{root}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(res.Records))
	}
	if res.Records[0].RelativePath != "a/x.parq" {
		t.Errorf("RelativePath = %q, want a/x.parq", res.Records[0].RelativePath)
	}
	if res.Records[0].Extension != ".parq" {
		t.Errorf("Extension = %q, want .parq", res.Records[0].Extension)
	}
}

func TestRunIsWorkerCountInvariant(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 25; i++ {
		writeFile(t, filepath.Join(root, "d", "file_"+string(rune('a'+i))+".txt"), 4)
	}

	run := func(workers int) map[string]bool {
		opts := Options{Workers: workers, DedupMode: dedup.ModeNamePattern}
		res, err := Run(context.Background(), []string{root}, opts)
		if err != nil {
			t.Fatal(err)
		}
		set := map[string]bool{}
		for _, r := range res.Records {
			set[r.RelativePath] = true
		}
		return set
	}

	a := run(1)
	b := run(4)
	if len(a) != len(b) {
		t.Fatalf("record count differs between workers=1 (%d) and workers=4 (%d)", len(a), len(b))
	}
	for k := range a {
		if !b[k] {
			t.Errorf("record %q present with workers=1 but missing with workers=4", k)
		}
	}
}
