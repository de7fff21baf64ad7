package engine

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/powerscan/powerscan/internal/catalog"
	"github.com/powerscan/powerscan/internal/types"
)

// Fingerprint hashes the (catalog, files) input of a scan so the snapshot
// store can tell whether a saved result still matches the current inputs.
// Identical inputs always produce identical fingerprints.
func Fingerprint(cat *catalog.Catalog, files []types.SourceFile) string {
	d := xxhash.New()
	for _, r := range cat.Rules() {
		_, _ = d.WriteString(r.ID)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(r.Pattern)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(string(r.Severity))
		_, _ = d.WriteString("\x01")
	}
	for _, f := range files {
		_, _ = d.WriteString(f.Name)
		_, _ = d.WriteString("\x00")
		_, _ = d.Write(f.Content)
		_, _ = d.WriteString("\x01")
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
