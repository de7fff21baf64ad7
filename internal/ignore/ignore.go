// Package ignore implements the .powerscanignore matcher consulted during
// file collection. Patterns are doublestar globs, one per line; blank lines
// and # comments are skipped. A trailing slash marks a directory prefix.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher answers whether a root-relative path is ignored.
type Matcher struct {
	patterns []string
	prefixes []string
}

// Load reads an ignore file. A missing file yields an empty matcher and the
// underlying error for the caller to disregard.
func Load(path string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(path)
	if err != nil {
		return m, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, "/") {
			m.prefixes = append(m.prefixes, strings.TrimSuffix(line, "/"))
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// Match reports whether the root-relative path is ignored.
func (m Matcher) Match(rel string) bool {
	rp := strings.ReplaceAll(rel, "\\", "/")
	for _, pre := range m.prefixes {
		if rp == pre || strings.HasPrefix(rp, pre+"/") {
			return true
		}
	}
	for _, pat := range m.patterns {
		if ok, _ := doublestar.Match(pat, rp); ok {
			return true
		}
		if ok, _ := doublestar.Match(pat, filepath.Base(rp)); ok {
			return true
		}
	}
	return false
}
