package filter

import (
	"testing"
	"time"

	"fshunter/internal/pattern"
)

func TestTier0EmptyIsAlwaysTrue(t *testing.T) {
	var f Tier0
	if !f.Keep("anything.txt", "a/anything.txt") {
		t.Error("empty Tier0 must accept every candidate")
	}
}

func TestTier0NameMatch(t *testing.T) {
	m, err := pattern.Compile(pattern.KindGlob, pattern.TargetName, "*.parq")
	if err != nil {
		t.Fatal(err)
	}
	f := Tier0{NameMatchers: []*pattern.Matcher{m}}
	if !f.Keep("x.parq", "a/x.parq") {
		t.Error("expected x.parq to pass the *.parq name filter")
	}
	if f.Keep("y.txt", "a/y.txt") {
		t.Error("expected y.txt to fail the *.parq name filter")
	}
}

func TestTier1SizeRange(t *testing.T) {
	f := Tier1{MinSize: 10, MaxSize: 100}
	now := time.Now()
	if f.Keep(now, 5) {
		t.Error("expected size below MinSize to be rejected")
	}
	if !f.Keep(now, 50) {
		t.Error("expected size within range to be accepted")
	}
	if f.Keep(now, 200) {
		t.Error("expected size above MaxSize to be rejected")
	}
}

func TestTier1DateRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	f := Tier1{DateStart: start, DateEnd: end}

	if f.Keep(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), 1) {
		t.Error("expected date before range to be rejected")
	}
	if !f.Keep(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 1) {
		t.Error("expected date within range to be accepted")
	}
}
