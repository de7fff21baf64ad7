package types

import "time"

// Severity is the risk level attached to a rule and copied onto its findings.
// Levels are ordered: info < low < medium < high < critical.
type Severity string

const (
	SevInfo     Severity = "info"
	SevLow      Severity = "low"
	SevMedium   Severity = "medium"
	SevHigh     Severity = "high"
	SevCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SevInfo:     1,
	SevLow:      2,
	SevMedium:   3,
	SevHigh:     4,
	SevCritical: 5,
}

// Rank returns the ordinal position of s, or 0 for an unknown severity.
func (s Severity) Rank() int { return severityRank[s] }

// Valid reports whether s is one of the five known levels.
func (s Severity) Valid() bool { return severityRank[s] > 0 }

// Severities lists all levels in ascending order of risk.
func Severities() []Severity {
	return []Severity{SevInfo, SevLow, SevMedium, SevHigh, SevCritical}
}

// SourceFile is one artifact handed to the engine: original filename plus
// raw content. Content is assumed UTF-8; positions in findings are computed
// against these exact bytes. Never mutated by a scan. Unreadable marks a file
// whose content could not be materialized; the engine skips it but still
// reports it in the summary.
type SourceFile struct {
	Name       string
	Content    []byte
	Unreadable bool
}

// Finding describes one concrete match of a rule within a scanned file.
// Line and Column are 1-based and refer to the start of the match. Severity
// is captured from the rule at match time so later catalog edits never
// retroactively alter past findings.
type Finding struct {
	RuleID   string   `json:"rule_id"`
	File     string   `json:"file_name"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Match    string   `json:"matched_text"`
	Snippet  string   `json:"context_snippet"`
	Severity Severity `json:"severity"`
}

// FileSummary carries per-file stats for one scanned file.
type FileSummary struct {
	Name       string   `json:"name"`
	Type       FileType `json:"type"`
	Findings   int      `json:"findings"`
	Unreadable bool     `json:"unreadable,omitempty"`
}

// RuleError records a rule application that failed for one file and was
// skipped. The rest of the run is unaffected.
type RuleError struct {
	RuleID string `json:"rule_id"`
	File   string `json:"file_name"`
	Reason string `json:"reason"`
}

// Summary aggregates per-run counts plus per-file stats and any recovered
// rule failures.
type Summary struct {
	BySeverity     map[Severity]int `json:"by_severity"`
	ByRule         map[string]int   `json:"by_rule"`
	FilesScanned   int              `json:"files_scanned"`
	RulesEvaluated int              `json:"rules_evaluated"`
	Files          []FileSummary    `json:"files"`
	RuleErrors     []RuleError      `json:"rule_errors,omitempty"`
}

// Unreadable reports whether the named file was marked undecodable.
func (s Summary) Unreadable(name string) bool {
	for _, f := range s.Files {
		if f.Name == name {
			return f.Unreadable
		}
	}
	return false
}

// ScanResult is the complete, immutable output of one scan run. Findings are
// sorted by (file, line, column) ascending. Fingerprint identifies the
// (catalog, files) input so stores can tell whether a snapshot is stale.
type ScanResult struct {
	Findings    []Finding `json:"findings"`
	Summary     Summary   `json:"summary"`
	Timestamp   time.Time `json:"timestamp"`
	Fingerprint string    `json:"fingerprint,omitempty"`
}
