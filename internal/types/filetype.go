package types

import (
	"path/filepath"
	"strings"
)

// FileType tags a source file by what kind of web asset it is. Rules declare
// which types they apply to; unknown files still receive globally-applicable
// rules.
type FileType string

const (
	TypeMarkup  FileType = "markup"
	TypeStyle   FileType = "style"
	TypeScript  FileType = "script"
	TypeUnknown FileType = "unknown"
)

var typeByExt = map[string]FileType{
	".html":  TypeMarkup,
	".htm":   TypeMarkup,
	".xhtml": TypeMarkup,
	".css":   TypeStyle,
	".js":    TypeScript,
	".mjs":   TypeScript,
	".cjs":   TypeScript,
	".jsx":   TypeScript,
	".ts":    TypeScript,
}

// TypeForFile maps a filename to its FileType by extension.
func TypeForFile(name string) FileType {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := typeByExt[ext]; ok {
		return t
	}
	return TypeUnknown
}

// ValidFileType reports whether s names a known tag (unknown included, since
// rules may target untyped files explicitly).
func ValidFileType(s string) bool {
	switch FileType(s) {
	case TypeMarkup, TypeStyle, TypeScript, TypeUnknown:
		return true
	}
	return false
}
