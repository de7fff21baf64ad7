package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/powerscan/powerscan/internal/types"
)

// WriteJSON writes the full ScanResult (findings plus summary) as indented
// JSON. This is the contract dashboard and exporter collaborators consume.
func WriteJSON(w io.Writer, res types.ScanResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteCSV writes findings as a flat CSV with a header row.
func WriteCSV(w io.Writer, res types.ScanResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rule_id", "file_name", "line", "column", "severity", "matched_text", "context_snippet"}); err != nil {
		return err
	}
	for _, f := range res.Findings {
		rec := []string{
			f.RuleID,
			f.File,
			strconv.Itoa(f.Line),
			strconv.Itoa(f.Column),
			string(f.Severity),
			f.Match,
			f.Snippet,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
