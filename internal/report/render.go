// Package report renders and exports scan results. It only ever reads a
// ScanResult; producing one is the engine's job.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/powerscan/powerscan/internal/types"
)

type PrintOptions struct {
	NoColor  bool
	Duration time.Duration
}

var severityStyles = map[types.Severity]lipgloss.Style{
	types.SevInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	types.SevLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	types.SevMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	types.SevHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	types.SevCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
}

func renderSeverity(s types.Severity, noColor bool) string {
	if noColor {
		return string(s)
	}
	if st, ok := severityStyles[s]; ok {
		return st.Render(string(s))
	}
	return string(s)
}

// PrintText writes findings in plain columnar form with a summary footer.
func PrintText(w io.Writer, res types.ScanResult, opts PrintOptions) {
	if len(res.Findings) == 0 {
		fmt.Fprintln(w, "No flagged features found ✅")
	} else {
		maxRule := 8
		for _, f := range res.Findings {
			if l := len(f.RuleID); l > maxRule {
				maxRule = l
			}
		}
		fmt.Fprintf(w, "Findings: %d\n", len(res.Findings))
		for _, f := range res.Findings {
			sev := renderSeverity(f.Severity, opts.NoColor)
			fmt.Fprintf(w, "%-8s %-*s %s:%d:%d  %s\n", sev, maxRule, f.RuleID, f.File, f.Line, f.Column, f.Match)
		}
	}
	printFooter(w, res, opts)
}

// PrintTable writes findings as a bordered table, truncating the match column
// to the terminal width when w is a terminal.
func PrintTable(w io.Writer, res types.ScanResult, opts PrintOptions) {
	if len(res.Findings) == 0 {
		fmt.Fprintln(w, "No flagged features found ✅")
		printFooter(w, res, opts)
		return
	}
	matchMax := matchColumnWidth(w)
	t := tablewriter.NewTable(w)
	t.Header("Severity", "Rule", "Location", "Match")
	for _, f := range res.Findings {
		_ = t.Append([]string{
			renderSeverity(f.Severity, opts.NoColor),
			f.RuleID,
			fmt.Sprintf("%s:%d:%d", f.File, f.Line, f.Column),
			clip(f.Match, matchMax),
		})
	}
	_ = t.Render()
	printFooter(w, res, opts)
}

func printFooter(w io.Writer, res types.ScanResult, opts PrintOptions) {
	s := res.Summary
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d (critical: %d, high: %d, medium: %d, low: %d, info: %d)\n",
		len(res.Findings),
		s.BySeverity[types.SevCritical],
		s.BySeverity[types.SevHigh],
		s.BySeverity[types.SevMedium],
		s.BySeverity[types.SevLow],
		s.BySeverity[types.SevInfo])
	fmt.Fprintf(w, "Files scanned: %d, rules evaluated: %d\n", s.FilesScanned, s.RulesEvaluated)
	for _, f := range s.Files {
		if f.Unreadable {
			fmt.Fprintf(w, "Unreadable (skipped): %s\n", f.Name)
		}
	}
	for _, re := range s.RuleErrors {
		fmt.Fprintf(w, "Rule %s failed on %s: %s\n", re.RuleID, re.File, re.Reason)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}

// matchColumnWidth bounds the match column so long matches do not wrap the
// whole table. Falls back to a fixed width when w is not a terminal.
func matchColumnWidth(w io.Writer) int {
	const fallback = 60
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols < 60 {
		return fallback
	}
	// Leave room for the severity, rule and location columns.
	width := cols / 3
	if width < 20 {
		width = 20
	}
	return width
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}

// ShouldFail reports whether any finding is at or above the failOn severity
// threshold; unknown thresholds default to medium. Used by CI callers to turn
// a result into an exit code.
func ShouldFail(res types.ScanResult, failOn string) bool {
	th := types.Severity(failOn).Rank()
	if th == 0 {
		th = types.SevMedium.Rank()
	}
	for _, f := range res.Findings {
		if f.Severity.Rank() >= th {
			return true
		}
	}
	return false
}
