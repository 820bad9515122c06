package timeparse

import (
	"testing"
	"time"
)

func TestParseDateAutoCompletes(t *testing.T) {
	cases := map[string]time.Time{
		"2024":       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		"2024-06":    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		"2024-06-15": time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		"2024/06/15": time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := ParseDate(in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", in, err)
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"1D12H30m", 36*time.Hour + 30*time.Minute},
		{"1Y6M", 545 * 24 * time.Hour},
		{"7D", 7 * 24 * time.Hour},
		{"30m", 30 * time.Minute},
		{"45s", 45 * time.Second},
		{"1Y3M15D", 470 * 24 * time.Hour},
	}
	for _, c := range cases {
		got, err := ParseDuration(c.in)
		if err != nil {
			t.Fatalf("ParseDuration(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDurationInvalid(t *testing.T) {
	for _, in := range []string{"30", "1Z", "1Y1Y", ""} {
		if _, err := ParseDuration(in); err == nil {
			t.Errorf("ParseDuration(%q): expected error", in)
		}
	}
}

func TestWindowWraparound(t *testing.T) {
	start, _ := ParseTimeOfDay("22:00")
	end, _ := ParseTimeOfDay("02:00")
	w := Window{Start: start, End: end}

	at := func(hhmm string) time.Time {
		d, _ := ParseTimeOfDay(hhmm)
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(d)
	}

	if !w.Contains(at("23:30")) {
		t.Error("expected 23:30 to be inside wraparound window")
	}
	if !w.Contains(at("01:15")) {
		t.Error("expected 01:15 to be inside wraparound window")
	}
	if w.Contains(at("12:00")) {
		t.Error("expected 12:00 to be outside wraparound window")
	}
}

func TestWindowNormal(t *testing.T) {
	start, _ := ParseTimeOfDay("09:00")
	end, _ := ParseTimeOfDay("17:00")
	w := Window{Start: start, End: end}
	at := func(hhmm string) time.Time {
		d, _ := ParseTimeOfDay(hhmm)
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(d)
	}
	if !w.Contains(at("12:00")) {
		t.Error("expected noon inside normal window")
	}
	if w.Contains(at("18:00")) {
		t.Error("expected 18:00 outside normal window")
	}
}
