package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/powerscan/powerscan/internal/ignore"
	"github.com/powerscan/powerscan/internal/types"
)

// IgnoreName is the per-tree ignore file consulted during collection.
const IgnoreName = ".powerscanignore"

// WalkConfig controls file collection for directory scans.
type WalkConfig struct {
	Root         string
	IncludeGlobs string // comma-separated; empty means everything
	ExcludeGlobs string // comma-separated; subtracted last
	MaxBytes     int64  // skip files larger than this; 0 means no limit
}

var defaultDirExcludes = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"vendor":       true,
	".next":        true,
	"coverage":     true,
}

// Tool-owned files living in the scanned root; scanning them would make every
// run's fingerprint depend on the previous run's output.
var defaultFileExcludes = map[string]bool{
	"scan_results.json": true, // store.SnapshotName
	IgnoreName:          true,
}

// Collect walks the tree under cfg.Root and returns the eligible files as
// in-memory SourceFiles, named by their root-relative path. It materializes
// content up front so the engine itself never touches the filesystem.
func Collect(cfg WalkConfig) ([]types.SourceFile, error) {
	ign, _ := ignore.Load(filepath.Join(cfg.Root, IgnoreName))
	var out []types.SourceFile
	err := filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if defaultDirExcludes[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if defaultFileExcludes[d.Name()] {
			return nil
		}
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if ign.Match(rel) {
			return nil
		}
		if cfg.MaxBytes > 0 {
			if info, err := d.Info(); err == nil && info.Size() > cfg.MaxBytes {
				return nil
			}
		}
		b, err := os.ReadFile(p)
		if err != nil {
			// Keep the file visible: the scan summary reports it as
			// unreadable instead of silently dropping it.
			out = append(out, types.SourceFile{Name: filepath.ToSlash(rel), Unreadable: true})
			return nil
		}
		out = append(out, types.SourceFile{Name: filepath.ToSlash(rel), Content: b})
		return nil
	})
	return out, err
}

// allowedByGlobs applies the include/exclude glob configuration to a
// root-relative path. Includes, when present, act as a positive filter;
// excludes are subtracted last. Matching uses forward-slash semantics.
func allowedByGlobs(relPath string, cfg WalkConfig) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}
