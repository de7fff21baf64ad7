package report

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/powerscan/powerscan/internal/types"
)

func lexerFor(t types.FileType) string {
	switch t {
	case types.TypeMarkup:
		return "html"
	case types.TypeStyle:
		return "css"
	case types.TypeScript:
		return "javascript"
	default:
		return "plaintext"
	}
}

// WriteSnippet writes a finding's context snippet with terminal syntax
// highlighting for the file's type. Falls back to the raw snippet when
// highlighting fails or color is disabled.
func WriteSnippet(w io.Writer, f types.Finding, noColor bool) error {
	snippet := strings.TrimRight(f.Snippet, "\n")
	if noColor {
		_, err := io.WriteString(w, snippet+"\n")
		return err
	}
	ft := types.TypeForFile(f.File)
	if err := quick.Highlight(w, snippet, lexerFor(ft), "terminal256", "monokai"); err != nil {
		_, werr := io.WriteString(w, snippet)
		if werr != nil {
			return werr
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
