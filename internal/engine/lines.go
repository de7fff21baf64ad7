package engine

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// lineIndex holds the byte offsets of newline characters in one file so that
// (line, column) for any match offset is a binary search instead of a rescan.
type lineIndex struct {
	newlines []int
	size     int
}

func newLineIndex(content []byte) lineIndex {
	var nl []int
	for i, b := range content {
		if b == '\n' {
			nl = append(nl, i)
		}
	}
	return lineIndex{newlines: nl, size: len(content)}
}

// position converts a byte offset to a 1-based (line, column) pair. Line is
// the count of newlines before the offset plus one; column counts from the
// preceding newline.
func (li lineIndex) position(offset int) (line, col int) {
	n := sort.SearchInts(li.newlines, offset)
	line = n + 1
	lineStart := 0
	if n > 0 {
		lineStart = li.newlines[n-1] + 1
	}
	col = offset - lineStart + 1
	return line, col
}

// snippet extracts the full source line containing offset, truncated to max
// bytes with an ellipsis marker so a pathological single-line file cannot
// blow up memory or display.
func (li lineIndex) snippet(content []byte, offset, max int) string {
	n := sort.SearchInts(li.newlines, offset)
	start := 0
	if n > 0 {
		start = li.newlines[n-1] + 1
	}
	end := li.size
	if n < len(li.newlines) {
		end = li.newlines[n]
	}
	line := bytes.TrimRight(content[start:end], "\r")
	if len(line) <= max {
		return string(line)
	}
	cut := max
	// Back off to a rune boundary so truncation never splits a code point.
	for cut > 0 && !utf8.RuneStart(line[cut]) {
		cut--
	}
	return string(line[:cut]) + "…"
}

// decodable reports whether content can be treated as UTF-8 text. A NUL byte
// or invalid encoding marks the file unreadable for matching purposes.
func decodable(content []byte) bool {
	if bytes.IndexByte(content, 0) >= 0 {
		return false
	}
	return utf8.Valid(content)
}
