package diff

import "fmt"

// FormatDelta renders a signed second delta as "" when zero, "±MM:SS"
// when the magnitude is under an hour, and "±HH:MM:SS" otherwise
// (spec §4.9). Grounded on original_source/compare.py:format_time_delta,
// kept as raw seconds internally rather than round-tripping through the
// formatted string the way the Python metrics step does.
func FormatDelta(seconds int64) string {
	if seconds == 0 {
		return ""
	}
	sign := "+"
	abs := seconds
	if seconds < 0 {
		sign = "-"
		abs = -seconds
	}
	h := abs / 3600
	m := (abs % 3600) / 60
	s := abs % 60
	if abs >= 3600 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, m, s)
}
