package record

import (
	"path/filepath"
	"testing"
)

func TestNewFileRecordIdentity(t *testing.T) {
	base := "/scan/root"
	full := filepath.Join(base, "a", "x.parq")
	r := NewFileRecord(full, base)

	if r.Name != "x.parq" {
		t.Errorf("Name = %q, want x.parq", r.Name)
	}
	if r.Extension != ".parq" {
		t.Errorf("Extension = %q, want .parq", r.Extension)
	}
	if r.RelativePath != "a/x.parq" {
		t.Errorf("RelativePath = %q, want a/x.parq", r.RelativePath)
	}
	if r.RelativePath[0] == '/' {
		t.Error("RelativePath must not begin with '/'")
	}
}

func TestDeltaSpecMatches(t *testing.T) {
	d := DeltaSpec{Directory: "/data/sales/"}
	if !d.Matches("/data/sales/2024/file.csv") {
		t.Error("expected match under trailing-slash-normalized directory prefix")
	}
	if d.Matches("/data/salesforce/file.csv") {
		t.Error("must not match a sibling directory sharing a string prefix")
	}
}
