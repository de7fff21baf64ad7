package catalog

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/powerscan/powerscan/internal/types"
)

// Rule is one named pattern with severity and file-type applicability.
// The compiled regexp is shared across all files in a run.
type Rule struct {
	ID          string
	Pattern     string
	Severity    types.Severity
	AppliesTo   []types.FileType
	Description string

	re *regexp.Regexp
}

// Regexp returns the compiled pattern.
func (r Rule) Regexp() *regexp.Regexp { return r.re }

// Global reports whether the rule applies to every file type.
func (r Rule) Global() bool { return len(r.AppliesTo) == 0 }

// AppliesToType reports whether the rule should run against files of type t.
func (r Rule) AppliesToType(t types.FileType) bool {
	if r.Global() {
		return true
	}
	for _, at := range r.AppliesTo {
		if at == t {
			return true
		}
	}
	return false
}

// LoadError is the fail-fast catalog load failure. RuleID is empty when the
// source itself was unreadable or malformed.
type LoadError struct {
	RuleID string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.RuleID != "" {
		return fmt.Sprintf("catalog: rule %q: %s", e.RuleID, e.Reason)
	}
	return "catalog: " + e.Reason
}

func (e *LoadError) Unwrap() error { return e.Err }

// Catalog is an immutable, validated set of rules. Iteration order is the
// declaration order of the source, which downstream finding ordering relies
// on for tie-breaks.
type Catalog struct {
	rules []Rule
	byID  map[string]int
}

// ruleSpec is the YAML shape of one rule record.
type ruleSpec struct {
	ID          string   `yaml:"id"`
	Pattern     string   `yaml:"pattern"`
	Severity    string   `yaml:"severity"`
	AppliesTo   []string `yaml:"applicable_types"`
	Description string   `yaml:"description"`
}

type fileSpec struct {
	Rules []ruleSpec `yaml:"rules"`
}

// Parse builds a Catalog from YAML bytes. The whole catalog loads or the
// whole load fails: a missing field, duplicate id, unknown severity or file
// type, or a non-compiling pattern aborts with a LoadError naming the rule.
func Parse(data []byte) (*Catalog, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, &LoadError{Reason: "malformed rule source", Err: err}
	}
	if len(spec.Rules) == 0 {
		return nil, &LoadError{Reason: "no rules defined"}
	}
	rules := make([]Rule, 0, len(spec.Rules))
	for i, rs := range spec.Rules {
		if rs.ID == "" {
			return nil, &LoadError{Reason: fmt.Sprintf("rule at index %d has no id", i)}
		}
		if rs.Pattern == "" {
			return nil, &LoadError{RuleID: rs.ID, Reason: "missing pattern"}
		}
		sev := types.Severity(rs.Severity)
		if !sev.Valid() {
			return nil, &LoadError{RuleID: rs.ID, Reason: fmt.Sprintf("unknown severity %q", rs.Severity)}
		}
		var applies []types.FileType
		for _, t := range rs.AppliesTo {
			if !types.ValidFileType(t) {
				return nil, &LoadError{RuleID: rs.ID, Reason: fmt.Sprintf("unknown file type %q", t)}
			}
			applies = append(applies, types.FileType(t))
		}
		re, err := regexp.Compile(rs.Pattern)
		if err != nil {
			return nil, &LoadError{RuleID: rs.ID, Reason: "pattern does not compile: " + err.Error(), Err: err}
		}
		rules = append(rules, Rule{
			ID:          rs.ID,
			Pattern:     rs.Pattern,
			Severity:    sev,
			AppliesTo:   applies,
			Description: rs.Description,
			re:          re,
		})
	}
	return build(rules)
}

// LoadFile reads and parses a YAML rule catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Reason: "unreadable rule source: " + err.Error(), Err: err}
	}
	return Parse(b)
}

func build(rules []Rule) (*Catalog, error) {
	byID := make(map[string]int, len(rules))
	for i, r := range rules {
		if _, dup := byID[r.ID]; dup {
			return nil, &LoadError{RuleID: r.ID, Reason: "duplicate id"}
		}
		byID[r.ID] = i
	}
	return &Catalog{rules: rules, byID: byID}, nil
}

// Rules returns all rules in declaration order.
func (c *Catalog) Rules() []Rule { return c.rules }

// Len returns the number of rules in the catalog.
func (c *Catalog) Len() int { return len(c.rules) }

// RulesFor returns the rules applicable to files of type t, in declaration
// order. Rules with an empty applicability set are always included.
func (c *Catalog) RulesFor(t types.FileType) []Rule {
	var out []Rule
	for _, r := range c.rules {
		if r.AppliesToType(t) {
			out = append(out, r)
		}
	}
	return out
}

// Get looks up a rule by id.
func (c *Catalog) Get(id string) (Rule, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Rule{}, false
	}
	return c.rules[i], true
}
