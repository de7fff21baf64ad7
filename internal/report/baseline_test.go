package report

import (
	"path/filepath"
	"testing"

	"github.com/powerscan/powerscan/internal/types"
)

func TestAcceptedRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accepted.json")
	res := sampleResult()

	if err := SaveAccepted(path, res); err != nil {
		t.Fatal(err)
	}
	a, err := LoadAccepted(path)
	if err != nil {
		t.Fatal(err)
	}

	// Everything saved is filtered out; a new finding survives.
	if got := FilterNew(res.Findings, a); len(got) != 0 {
		t.Fatalf("accepted findings should be filtered, got %d back", len(got))
	}
	fresh := types.Finding{RuleID: "css-expression", File: "x.css", Line: 1, Column: 1, Match: "expression("}
	got := FilterNew(append(res.Findings, fresh), a)
	if len(got) != 1 || got[0].RuleID != "css-expression" {
		t.Fatalf("new finding should survive the filter, got %v", got)
	}
}

func TestLoadAcceptedMissing(t *testing.T) {
	a, err := LoadAccepted(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if a.Items == nil {
		t.Fatal("missing file must still yield a usable empty set")
	}
}
