package core

import (
	"context"

	"github.com/powerscan/powerscan/internal/catalog"
	"github.com/powerscan/powerscan/internal/engine"
	"github.com/powerscan/powerscan/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Catalog = catalog.Catalog
type Rule = catalog.Rule
type SourceFile = types.SourceFile
type Finding = types.Finding
type ScanResult = types.ScanResult
type Severity = types.Severity
type FileType = types.FileType

// DefaultCatalog returns the built-in baseline web-feature rule set.
func DefaultCatalog() *Catalog { return catalog.Default() }

// LoadCatalog parses a YAML rule catalog; the load is all-or-nothing.
func LoadCatalog(data []byte) (*Catalog, error) { return catalog.Parse(data) }

// Scan is the stable entrypoint for other programs: it applies the catalog
// to the given in-memory files and returns the ordered result.
func Scan(ctx context.Context, cfg Config, cat *Catalog, files []SourceFile) (ScanResult, error) {
	return engine.Scan(ctx, cfg, cat, files)
}

// ScanDir collects eligible files under root and scans them.
func ScanDir(ctx context.Context, cfg Config, cat *Catalog, root string) (ScanResult, error) {
	files, err := engine.Collect(engine.WalkConfig{Root: root})
	if err != nil {
		return ScanResult{}, err
	}
	return engine.Scan(ctx, cfg, cat, files)
}
