package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.yml")
	body := "include: \"**/*.js\"\nthreads: 4\nfail_on: high\nno_color: true\nsnippet_max: 120\n"
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Include == nil || *cfg.Include != "**/*.js" {
		t.Fatalf("include = %v", cfg.Include)
	}
	if cfg.Threads == nil || *cfg.Threads != 4 {
		t.Fatalf("threads = %v", cfg.Threads)
	}
	if cfg.FailOn == nil || *cfg.FailOn != "high" {
		t.Fatalf("fail_on = %v", cfg.FailOn)
	}
	if cfg.NoColor == nil || !*cfg.NoColor {
		t.Fatalf("no_color = %v", cfg.NoColor)
	}
	if cfg.SnippetMax == nil || *cfg.SnippetMax != 120 {
		t.Fatalf("snippet_max = %v", cfg.SnippetMax)
	}
	if cfg.Catalog != nil {
		t.Fatal("unset fields must stay nil")
	}
}

func TestLoadLocal(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLocal(dir); err == nil {
		t.Fatal("expected error with no local config")
	}
	if err := os.WriteFile(filepath.Join(dir, ".powerscan.yml"), []byte("threads: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Threads == nil || *cfg.Threads != 2 {
		t.Fatalf("threads = %v", cfg.Threads)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(p, []byte("threads: [not an int\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(p); err == nil {
		t.Fatal("expected parse error")
	}
}
