package engine

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/powerscan/powerscan/internal/catalog"
	"github.com/powerscan/powerscan/internal/types"
)

// DefaultSnippetMax bounds the context snippet length regardless of how long
// the containing source line is.
const DefaultSnippetMax = 200

// Config controls scan behavior. The zero value is usable.
type Config struct {
	// Threads is the worker count; 0 means GOMAXPROCS.
	Threads int
	// SnippetMax caps context snippet length; 0 means DefaultSnippetMax.
	SnippetMax int
	// Progress, if set, is invoked once per completed file, possibly from
	// concurrent worker goroutines.
	Progress func()
}

func clampThreads(n int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n < 1 {
		n = 1
	}
	if n > 32 {
		n = 32
	}
	return n
}

// fileResult is one worker's output for one file, merged after fan-in.
type fileResult struct {
	summary    types.FileSummary
	findings   []types.Finding
	ruleErrors []types.RuleError
}

// Scan applies every applicable catalog rule to every file and returns the
// assembled ScanResult. Files are processed concurrently; finding order and
// summary are deterministic for identical (catalog, files) input. The only
// run-level error is context cancellation: undecodable files and failing
// rules degrade locally and surface through the summary instead.
func Scan(ctx context.Context, cfg Config, cat *catalog.Catalog, files []types.SourceFile) (types.ScanResult, error) {
	snippetMax := cfg.SnippetMax
	if snippetMax <= 0 {
		snippetMax = DefaultSnippetMax
	}
	workers := clampThreads(cfg.Threads)
	if len(files) > 0 && workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan int)
	results := make([]fileResult, len(files))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = scanFile(cat, files[i], snippetMax)
				if cfg.Progress != nil {
					cfg.Progress()
				}
			}
		}()
	}

feed:
	for i := range files {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return types.ScanResult{}, err
	}

	var out []types.Finding
	summary := types.Summary{
		BySeverity:     map[types.Severity]int{},
		ByRule:         map[string]int{},
		FilesScanned:   len(files),
		RulesEvaluated: cat.Len(),
	}
	// Merge in input order so the pre-sort sequence is already deterministic.
	for _, r := range results {
		out = append(out, r.findings...)
		summary.Files = append(summary.Files, r.summary)
		summary.RuleErrors = append(summary.RuleErrors, r.ruleErrors...)
	}

	// Canonical order: file, then line, then column. Stable, so two rules
	// matching the same position keep catalog declaration order.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Column < out[j].Column
	})

	for _, f := range out {
		summary.BySeverity[f.Severity]++
		summary.ByRule[f.RuleID]++
	}

	return types.ScanResult{
		Findings:    out,
		Summary:     summary,
		Timestamp:   time.Now().UTC(),
		Fingerprint: Fingerprint(cat, files),
	}, nil
}

func scanFile(cat *catalog.Catalog, file types.SourceFile, snippetMax int) fileResult {
	ft := types.TypeForFile(file.Name)
	res := fileResult{
		summary: types.FileSummary{Name: file.Name, Type: ft},
	}
	if file.Unreadable || !decodable(file.Content) {
		res.summary.Unreadable = true
		return res
	}

	idx := newLineIndex(file.Content)
	for _, rule := range cat.RulesFor(ft) {
		spans, err := applyRule(rule, file.Content)
		if err != nil {
			res.ruleErrors = append(res.ruleErrors, types.RuleError{
				RuleID: rule.ID,
				File:   file.Name,
				Reason: err.Error(),
			})
			continue
		}
		for _, span := range spans {
			line, col := idx.position(span[0])
			res.findings = append(res.findings, types.Finding{
				RuleID:   rule.ID,
				File:     file.Name,
				Line:     line,
				Column:   col,
				Match:    string(file.Content[span[0]:span[1]]),
				Snippet:  idx.snippet(file.Content, span[0], snippetMax),
				Severity: rule.Severity,
			})
		}
	}
	res.summary.Findings = len(res.findings)
	return res
}

// applyRule finds all non-overlapping matches of the rule's pattern,
// leftmost-first. Go's regexp is RE2 and cannot backtrack catastrophically,
// so the recover only guards against programming errors in rule evaluation;
// a failing rule is skipped for this one file and reported, never fatal.
func applyRule(rule catalog.Rule, content []byte) (spans [][]int, err error) {
	defer func() {
		if r := recover(); r != nil {
			spans = nil
			err = fmt.Errorf("rule evaluation panicked: %v", r)
		}
	}()
	return rule.Regexp().FindAllIndex(content, -1), nil
}
