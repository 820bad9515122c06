// Package discover implements the two discovery strategies from spec
// §4.4: a native depth-first walk, and a kernel-assisted strategy that
// delegates name/date/size filtering to the operating system's `find`.
package discover

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"fshunter/internal/logging"
)

// ScanUnit is the parallelism-expansion tuple from spec §4.4/GLOSSARY:
// a path to walk, the base directory relative_path is computed against,
// and whether the unit should recurse into subdirectories.
type ScanUnit struct {
	Path      string
	BaseDir   string
	Recursive bool
}

// ExpandRoot splits a root directory up to two levels deep into scan
// units so the pipeline runner can fan work out across workers. Leaves
// and max-depth children are marked recursive; interior levels are
// marked non-recursive with their own files handled as a separate unit.
func ExpandRoot(root string) ([]ScanUnit, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("root is not a directory: " + root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	units := []ScanUnit{{Path: root, BaseDir: root, Recursive: false}}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if e.Type()&os.ModeSymlink != 0 {
			continue
		}
		child := filepath.Join(root, e.Name())
		units = append(units, ScanUnit{Path: child, BaseDir: root, Recursive: true})
	}
	return units, nil
}

// Candidate is a discovered path paired with its cached stat result, so
// later tiers never re-stat a file the walker already touched.
type Candidate struct {
	Path string
	Info os.FileInfo
}

// WalkNative implements Strategy A: depth-first traversal, optional
// dirCutoff-based subdirectory pruning, no symlink following, unreadable
// directories logged and skipped (never fatal). Directories themselves
// are never yielded as candidates.
func WalkNative(unit ScanUnit, dirCutoff time.Time) []Candidate {
	var out []Candidate
	walk(unit.Path, unit.Recursive, dirCutoff, &out)
	return out
}

func walk(root string, recursive bool, dirCutoff time.Time, out *[]Candidate) {
	entries, err := os.ReadDir(root)
	if err != nil {
		logging.Warn("discover: cannot read directory %s: %v", root, err)
		return
	}
	for _, e := range entries {
		path := filepath.Join(root, e.Name())

		if e.Type()&os.ModeSymlink != 0 {
			continue
		}

		info, err := e.Info()
		if err != nil {
			logging.Debugf("discover: stat failed for %s: %v", path, err)
			continue
		}

		if info.IsDir() {
			if !recursive {
				continue
			}
			if !dirCutoff.IsZero() && info.ModTime().Before(dirCutoff) {
				continue
			}
			walk(path, recursive, dirCutoff, out)
			continue
		}

		*out = append(*out, Candidate{Path: path, Info: info})
	}
}

// FindAvailable reports whether the `find` binary can be located, the
// precondition for Strategy B (grounded on the teacher's
// utils.go:checkExternalTool pattern).
func FindAvailable() bool {
	_, err := exec.LookPath("find")
	return err == nil
}

// FindTimeout is the default per-target timeout for the kernel-assisted
// strategy (spec §4.5).
const FindTimeout = 600 * time.Second

// WalkFind implements Strategy B: shells out to `find`, translating name,
// date and size filters into find predicates, and parses its
// NUL-separated output. On timeout or missing binary it warns and
// returns zero candidates rather than failing the scan (spec §4.4/§7).
func WalkFind(unit ScanUnit, args FindArgs) []string {
	if !FindAvailable() {
		logging.Warn("discover: 'find' binary not available, skipping kernel-assisted discovery for %s", unit.Path)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), FindTimeout)
	defer cancel()

	cmdArgs := []string{unit.Path}
	if !unit.Recursive {
		cmdArgs = append(cmdArgs, "-maxdepth", "1")
	}
	cmdArgs = append(cmdArgs, "-type", "f")
	cmdArgs = append(cmdArgs, args.toFindArgs()...)
	cmdArgs = append(cmdArgs, "-print0")

	cmd := exec.CommandContext(ctx, "find", cmdArgs...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		logging.Warn("discover: find failed for %s: %v", unit.Path, err)
		return nil
	}

	raw := stdout.Bytes()
	var paths []string
	for _, p := range bytes.Split(raw, []byte{0}) {
		if len(p) == 0 {
			continue
		}
		paths = append(paths, string(p))
	}
	return paths
}

// FindArgs translates the subset of filter-cascade predicates that `find`
// itself can express (name, date via -newermt, size) into its
// command-line dialect. Time-of-day and path-pattern filters are NOT
// translatable and still run in-process after WalkFind returns, per
// spec §4.4.
type FindArgs struct {
	NamePattern  string // shell glob, passed to -name
	NewerThan    time.Time
	OlderThan    time.Time
	MinSizeBytes int64
	MaxSizeBytes int64
}

func (a FindArgs) toFindArgs() []string {
	var out []string
	if a.NamePattern != "" {
		out = append(out, "-name", a.NamePattern)
	}
	if !a.NewerThan.IsZero() {
		out = append(out, "-newermt", a.NewerThan.Format(time.RFC3339))
	}
	if !a.OlderThan.IsZero() {
		out = append(out, "!", "-newermt", a.OlderThan.Format(time.RFC3339))
	}
	if a.MinSizeBytes > 0 {
		out = append(out, "-size", "+"+sizeArg(a.MinSizeBytes))
	}
	if a.MaxSizeBytes > 0 {
		out = append(out, "-size", "-"+sizeArg(a.MaxSizeBytes))
	}
	return out
}

func sizeArg(bytes int64) string {
	if bytes <= 0 {
		return "0c"
	}
	return strconv.FormatInt(bytes, 10) + "c"
}
