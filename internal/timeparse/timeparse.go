// Package timeparse parses the partial date, time and duration strings
// accepted throughout fshunter's CLI and filter configuration.
package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order, most specific behavior documented on
// ParseDate. Mirrors the original Python implementation's Date_STUCT enum.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"15",
}

// ParseDate parses a partial date string, auto-completing missing
// components to their start-of-period value:
//
//	"2024"       -> 2024-01-01 00:00:00
//	"2024-06"    -> 2024-06-01 00:00:00
//	"2024-06-15" -> 2024-06-15 00:00:00
//
// "/" is accepted interchangeably with "-" as a separator.
func ParseDate(s string) (time.Time, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "/", "-")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q: use YYYY[-MM[-DD]]", s)
}

// ParseTimeOfDay parses a partial time-of-day string, auto-completing
// missing components to zero:
//
//	"14"       -> 14:00:00
//	"14:30"    -> 14:30:00
//	"14:30:45" -> 14:30:45
func ParseTimeOfDay(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("cannot parse time %q: use HH[:MM[:SS]]", s)
}

// ParseDateTime parses a combined "date time" string, falling back to
// date-only parsing (midnight) when no time component is present.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "/", "-")
	for _, dl := range dateLayouts {
		for _, tl := range timeLayouts {
			if t, err := time.Parse(dl+" "+tl, s); err == nil {
				return t, nil
			}
		}
		if t, err := time.Parse(dl, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date/time %q: use YYYY[-MM[-DD[ HH[:MM[:SS]]]]]", s)
}

var (
	durationValid = regexp.MustCompile(`^(?:\d+Y)?(?:\d+M)?(?:\d+D)?(?:\d+H)?(?:\d+m)?(?:\d+s)?$`)
	durationParts = regexp.MustCompile(`(\d+)([YMDHms])`)
)

// ParseDuration parses the case-sensitive duration grammar described in
// spec.md §4.1: Y=365d, M=30d, D=day, H=hour, m=minute, s=second, combining
// in that order with no unit repeated.
//
//	"1D12H30m" -> 36h30m0s
//	"1Y6M"     -> 545 * 24h
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" || !durationValid.MatchString(s) {
		return 0, fmt.Errorf("cannot parse duration %q: use e.g. 1Y, 6M, 7D, 2H, 30m, 45s (M=month, m=minute, s=second)", s)
	}
	matches := durationParts.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("cannot parse duration %q: at least one unit is required", s)
	}
	parts := map[string]int{}
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("cannot parse duration %q: %w", s, err)
		}
		if _, seen := parts[m[2]]; seen {
			return 0, fmt.Errorf("cannot parse duration %q: unit %q repeated", s, m[2])
		}
		parts[m[2]] = n
	}
	days := parts["Y"]*365 + parts["M"]*30 + parts["D"]
	d := time.Duration(days) * 24 * time.Hour
	d += time.Duration(parts["H"]) * time.Hour
	d += time.Duration(parts["m"]) * time.Minute
	d += time.Duration(parts["s"]) * time.Second
	return d, nil
}

// Window represents an inclusive time-of-day window, possibly wrapping
// past midnight when Start > End.
type Window struct {
	Start time.Duration
	End   time.Duration
}

// Contains reports whether the time-of-day component of t falls within
// the window, handling midnight wraparound per spec.md §4.1.
func (w Window) Contains(t time.Time) bool {
	tod := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second

	if w.Start <= w.End {
		return tod >= w.Start && tod <= w.End
	}
	return tod >= w.Start || tod <= w.End
}
