package report

import (
	"encoding/json"
	"os"

	"github.com/powerscan/powerscan/internal/types"
)

// Accepted is a set of findings the user has reviewed and chosen to tolerate.
// Scans filtered against it only surface new matches.
type Accepted struct {
	Items map[string]bool `json:"items"`
}

func acceptKey(f types.Finding) string {
	return f.File + "|" + f.RuleID + "|" + f.Match
}

// LoadAccepted reads an accepted-findings file; a missing file yields an
// empty set and the error for the caller to ignore or report.
func LoadAccepted(path string) (Accepted, error) {
	a := Accepted{Items: map[string]bool{}}
	b, err := os.ReadFile(path)
	if err != nil {
		return a, err
	}
	_ = json.Unmarshal(b, &a)
	if a.Items == nil {
		a.Items = map[string]bool{}
	}
	return a, nil
}

// SaveAccepted records every finding in res as accepted.
func SaveAccepted(path string, res types.ScanResult) error {
	a := Accepted{Items: map[string]bool{}}
	for _, f := range res.Findings {
		a.Items[acceptKey(f)] = true
	}
	b, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// FilterNew returns only the findings not present in the accepted set,
// preserving order.
func FilterNew(findings []types.Finding, a Accepted) []types.Finding {
	var out []types.Finding
	for _, f := range findings {
		if !a.Items[acceptKey(f)] {
			out = append(out, f)
		}
	}
	return out
}
