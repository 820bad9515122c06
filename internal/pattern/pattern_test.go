package pattern

import "testing"

func TestGlobNameDoesNotCrossSeparatorInPathTarget(t *testing.T) {
	m, err := Compile(KindGlob, TargetPath, "*.parq")
	if err != nil {
		t.Fatal(err)
	}
	if m.MatchPath("a/x.parq") {
		t.Error("expected path-target '*.parq' not to match across a directory boundary")
	}
	if !m.MatchPath("x.parq") {
		t.Error("expected path-target '*.parq' to match a top-level file")
	}
}

func TestGlobNameTargetCrossesFreely(t *testing.T) {
	m, err := Compile(KindGlob, TargetName, "*.parq")
	if err != nil {
		t.Fatal(err)
	}
	if !m.MatchName("x.parq") {
		t.Error("expected name-target '*.parq' to match basename")
	}
}

func TestRegexIsSearchedNotAnchored(t *testing.T) {
	m, err := Compile(KindRegex, TargetName, `\d{3}`)
	if err != nil {
		t.Fatal(err)
	}
	if !m.MatchName("log_123.txt") {
		t.Error("expected unanchored regex to find digits anywhere in the name")
	}
}
