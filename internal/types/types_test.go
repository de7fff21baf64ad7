package types

import "testing"

func TestSeverityOrdering(t *testing.T) {
	sevs := Severities()
	for i := 1; i < len(sevs); i++ {
		if sevs[i-1].Rank() >= sevs[i].Rank() {
			t.Fatalf("severity %s should rank below %s", sevs[i-1], sevs[i])
		}
	}
	if SevCritical.Rank() <= SevLow.Rank() {
		t.Fatal("critical must outrank low")
	}
	if Severity("bogus").Valid() {
		t.Fatal("unknown severity must not validate")
	}
	if Severity("bogus").Rank() != 0 {
		t.Fatal("unknown severity must rank zero")
	}
}

func TestTypeForFile(t *testing.T) {
	cases := map[string]FileType{
		"index.html":       TypeMarkup,
		"legacy.HTM":       TypeMarkup,
		"styles/main.css":  TypeStyle,
		"app.js":           TypeScript,
		"worker.mjs":       TypeScript,
		"types.ts":         TypeScript,
		"readme.md":        TypeUnknown,
		"Makefile":         TypeUnknown,
		"noextension":      TypeUnknown,
		"nested/page.html": TypeMarkup,
	}
	for name, want := range cases {
		if got := TypeForFile(name); got != want {
			t.Fatalf("TypeForFile(%q) = %s, want %s", name, got, want)
		}
	}
}

func TestSummaryUnreadable(t *testing.T) {
	s := Summary{Files: []FileSummary{
		{Name: "ok.js"},
		{Name: "bad.bin", Unreadable: true},
	}}
	if s.Unreadable("ok.js") {
		t.Fatal("ok.js should not be unreadable")
	}
	if !s.Unreadable("bad.bin") {
		t.Fatal("bad.bin should be unreadable")
	}
	if s.Unreadable("missing.js") {
		t.Fatal("unknown file should not be unreadable")
	}
}
