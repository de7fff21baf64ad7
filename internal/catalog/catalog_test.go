package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerscan/powerscan/internal/types"
)

const goodYAML = `
rules:
  - id: eval-usage
    pattern: 'eval\('
    severity: high
    applicable_types: [script]
    description: eval is risky
  - id: marquee-tag
    pattern: '<marquee'
    severity: medium
    applicable_types: [markup]
    description: marquee is gone
  - id: todo-marker
    pattern: 'TODO'
    severity: info
    description: applies everywhere
`

func TestParse_OK(t *testing.T) {
	c, err := Parse([]byte(goodYAML))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	r, ok := c.Get("eval-usage")
	require.True(t, ok)
	assert.Equal(t, types.SevHigh, r.Severity)
	assert.False(t, r.Global())
	assert.NotNil(t, r.Regexp())

	_, ok = c.Get("nope")
	assert.False(t, ok)
}

func TestParse_FailFast(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string // substring expected in the error
	}{
		{"bad regex", "rules:\n  - id: broken\n    pattern: '('\n    severity: low\n", "broken"},
		{"missing pattern", "rules:\n  - id: empty\n    severity: low\n", "missing pattern"},
		{"missing id", "rules:\n  - pattern: x\n    severity: low\n", "no id"},
		{"duplicate id", "rules:\n  - id: a\n    pattern: x\n    severity: low\n  - id: a\n    pattern: y\n    severity: low\n", "duplicate"},
		{"unknown severity", "rules:\n  - id: a\n    pattern: x\n    severity: urgent\n", "severity"},
		{"unknown type", "rules:\n  - id: a\n    pattern: x\n    severity: low\n    applicable_types: [wasm]\n", "file type"},
		{"no rules", "rules: []\n", "no rules"},
		{"malformed", "rules: {nope\n", "malformed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			var le *LoadError
			require.True(t, errors.As(err, &le), "want LoadError, got %T", err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParse_BadRegexNamesRule(t *testing.T) {
	_, err := Parse([]byte("rules:\n  - id: runaway\n    pattern: '(unclosed'\n    severity: high\n"))
	require.Error(t, err)
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "runaway", le.RuleID)
}

func TestRulesFor_DeclarationOrderAndGlobals(t *testing.T) {
	c, err := Parse([]byte(goodYAML))
	require.NoError(t, err)

	script := c.RulesFor(types.TypeScript)
	require.Len(t, script, 2)
	assert.Equal(t, "eval-usage", script[0].ID)
	assert.Equal(t, "todo-marker", script[1].ID)

	markup := c.RulesFor(types.TypeMarkup)
	require.Len(t, markup, 2)
	assert.Equal(t, "marquee-tag", markup[0].ID)

	// Unknown files still receive globally-applicable rules.
	unknown := c.RulesFor(types.TypeUnknown)
	require.Len(t, unknown, 1)
	assert.Equal(t, "todo-marker", unknown[0].ID)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "rules.yml")
	require.NoError(t, os.WriteFile(p, []byte(goodYAML), 0644))

	c, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unreadable"))
}
