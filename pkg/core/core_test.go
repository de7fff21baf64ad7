package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestScanWithDefaultCatalog(t *testing.T) {
	files := []SourceFile{
		{Name: "a.js", Content: []byte("x=1;\neval(foo);\n")},
		{Name: "page.html", Content: []byte("<marquee>hello</marquee>")},
	}
	res, err := Scan(context.Background(), Config{}, DefaultCatalog(), files)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Findings) == 0 {
		t.Fatal("expected findings from the built-in catalog")
	}
	var sawEval, sawMarquee bool
	for _, f := range res.Findings {
		switch f.RuleID {
		case "eval-usage":
			sawEval = true
		case "marquee-tag":
			sawMarquee = true
		}
	}
	if !sawEval || !sawMarquee {
		t.Fatalf("expected eval-usage and marquee-tag findings, got %v", res.Findings)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.js"), []byte("eval(x)"), 0644); err != nil {
		t.Fatal(err)
	}
	res, err := ScanDir(context.Background(), Config{}, DefaultCatalog(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if res.Summary.FilesScanned != 1 {
		t.Fatalf("files scanned = %d", res.Summary.FilesScanned)
	}
}

func TestMarshalUnmarshalResult(t *testing.T) {
	files := []SourceFile{{Name: "a.js", Content: []byte("eval(x)")}}
	res, err := Scan(context.Background(), Config{}, DefaultCatalog(), files)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := MarshalResult(&buf, res); err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalResult(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Findings) != len(res.Findings) {
		t.Fatalf("roundtrip lost findings: %d vs %d", len(got.Findings), len(res.Findings))
	}
}
