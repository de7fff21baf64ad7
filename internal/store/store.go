// Package store persists the latest ScanResult snapshot so dashboard-style
// consumers can show the last scan without re-running the engine. A new scan
// simply supersedes the previous snapshot; the engine holds no cross-run
// state of its own.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/powerscan/powerscan/internal/types"
)

// SnapshotName is the on-disk filename of the last-scan snapshot.
const SnapshotName = "scan_results.json"

func snapshotPath(root string) string {
	return filepath.Join(root, SnapshotName)
}

// Save writes the result as the latest snapshot under root, replacing any
// previous one.
func Save(root string, res types.ScanResult) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(snapshotPath(root), b, 0o644)
}

// Load reads the latest snapshot under root.
func Load(root string) (types.ScanResult, error) {
	var res types.ScanResult
	b, err := os.ReadFile(snapshotPath(root))
	if err != nil {
		return res, err
	}
	if err := json.Unmarshal(b, &res); err != nil {
		return res, err
	}
	return res, nil
}

// Stale reports whether the saved snapshot no longer matches the given input
// fingerprint, i.e. a re-scan would produce a superseding result.
func Stale(saved types.ScanResult, fingerprint string) bool {
	return saved.Fingerprint == "" || saved.Fingerprint != fingerprint
}
