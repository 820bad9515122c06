// Package filter implements the tiered predicate cascade (spec §4.3):
// composable FileRecord predicates ordered so the cheapest checks reject
// candidates before any expensive I/O runs.
package filter

import (
	"path/filepath"
	"time"

	"fshunter/internal/pattern"
	"fshunter/internal/record"
	"fshunter/internal/timeparse"
)

// Tier0 checks name and path patterns only and does no I/O of its own.
// The discovery walker has already called lstat once for every candidate
// it yields, so a candidate that Tier0 rejects has still cost that call.
type Tier0 struct {
	NameMatchers []*pattern.Matcher
	PathMatchers []*pattern.Matcher
}

// Keep applies every configured name/path matcher as a conjunction.
func (f Tier0) Keep(name, relPath string) bool {
	for _, m := range f.NameMatchers {
		if !m.MatchName(name) {
			return false
		}
	}
	for _, m := range f.PathMatchers {
		if !m.MatchPath(relPath) {
			return false
		}
	}
	return true
}

// Tier1 runs after a single stat call: date range, time-of-day window,
// size range.
type Tier1 struct {
	DateStart, DateEnd time.Time // zero value means unbounded
	TimeWindow         *timeparse.Window
	MinSize, MaxSize   int64 // MaxSize <= 0 means unbounded
}

// Keep evaluates the stat-derived predicates against mtime and size.
func (f Tier1) Keep(mtime time.Time, size int64) bool {
	if !f.DateStart.IsZero() && mtime.Before(f.DateStart) {
		return false
	}
	if !f.DateEnd.IsZero() && mtime.After(f.DateEnd) {
		return false
	}
	if f.TimeWindow != nil && !f.TimeWindow.Contains(mtime) {
		return false
	}
	if size < f.MinSize {
		return false
	}
	if f.MaxSize > 0 && size > f.MaxSize {
		return false
	}
	return true
}

// Tier2 runs only for tier-0/tier-1 survivors: owner and MIME checks
// that require opening or stat-extending the file.
type Tier2 struct {
	AllowedOwners []string // empty means unrestricted
	AllowedMIMEs  []string // empty means unrestricted
}

// Keep evaluates the enrichment-derived predicates.
func (f Tier2) Keep(rec record.FileRecord) bool {
	if len(f.AllowedOwners) > 0 && !contains(f.AllowedOwners, rec.Owner) {
		return false
	}
	if len(f.AllowedMIMEs) > 0 && !contains(f.AllowedMIMEs, rec.MIMEType) {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Cascade bundles all three tiers plus whether hashing is needed
// downstream (the Post tier, spec §4.3/§4.6). An empty tier is always
// satisfied, matching the spec's "empty list is always true" rule.
type Cascade struct {
	Tier0    Tier0
	Tier1    Tier1
	Tier2    Tier2
	NeedHash bool
}

// Basename is a convenience helper mirroring filepath.Base, for building
// Tier0 name inputs.
func Basename(p string) string { return filepath.Base(p) }
