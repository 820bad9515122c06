package discover

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWalkNativeFindsNestedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x.txt"))
	writeFile(t, filepath.Join(root, "a", "y.txt"))

	units, err := ExpandRoot(root)
	if err != nil {
		t.Fatal(err)
	}

	var paths []string
	for _, u := range units {
		for _, c := range WalkNative(u, time.Time{}) {
			paths = append(paths, c.Path)
		}
	}
	sort.Strings(paths)

	want := []string{filepath.Join(root, "a", "y.txt"), filepath.Join(root, "x.txt")}
	sort.Strings(want)
	if len(paths) != len(want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestExpandRootRejectsNonDirectory(t *testing.T) {
	root := t.TempDir()
	f := filepath.Join(root, "file.txt")
	writeFile(t, f)
	if _, err := ExpandRoot(f); err == nil {
		t.Error("expected error expanding a non-directory root")
	}
}
