package catalog

import (
	"regexp"

	"github.com/powerscan/powerscan/internal/types"
)

func mustRule(id, pattern string, sev types.Severity, applies []types.FileType, desc string) Rule {
	return Rule{
		ID:          id,
		Pattern:     pattern,
		Severity:    sev,
		AppliesTo:   applies,
		Description: desc,
		re:          regexp.MustCompile(pattern),
	}
}

var (
	markupOnly = []types.FileType{types.TypeMarkup}
	styleOnly  = []types.FileType{types.TypeStyle}
	scriptOnly = []types.FileType{types.TypeScript}
)

// builtinRules is the default catalog of risky, deprecated, or
// baseline-relevant web features, checked purely textually.
var builtinRules = []Rule{
	// Script hazards
	mustRule("eval-usage", `\beval\s*\(`, types.SevHigh, scriptOnly,
		"eval() executes arbitrary strings as code and defeats CSP"),
	mustRule("function-constructor", `new\s+Function\s*\(`, types.SevHigh, scriptOnly,
		"The Function constructor is eval in disguise"),
	mustRule("document-write", `document\.write(ln)?\s*\(`, types.SevMedium, scriptOnly,
		"document.write blocks parsing and is ignored in async contexts"),
	mustRule("inner-html-assign", `\.innerHTML\s*=`, types.SevMedium, scriptOnly,
		"Assigning innerHTML from dynamic data risks DOM XSS"),
	mustRule("sync-xhr", `open\s*\(\s*['"](GET|POST)['"]\s*,[^,)]+,\s*false\s*\)`, types.SevMedium, scriptOnly,
		"Synchronous XMLHttpRequest freezes the main thread and is deprecated"),
	mustRule("js-with-statement", `\bwith\s*\(`, types.SevLow, scriptOnly,
		"with statements are forbidden in strict mode"),
	mustRule("unload-handler", `\b(onunload|addEventListener\s*\(\s*['"]unload['"])`, types.SevLow, scriptOnly,
		"unload handlers break back/forward cache; use pagehide"),

	// Markup hazards
	mustRule("marquee-tag", `<marquee\b`, types.SevMedium, markupOnly,
		"<marquee> is non-standard and removed from the HTML spec"),
	mustRule("font-tag", `<font\b`, types.SevLow, markupOnly,
		"<font> is obsolete; use CSS"),
	mustRule("center-tag", `<center\b`, types.SevLow, markupOnly,
		"<center> is obsolete; use CSS"),
	mustRule("blink-tag", `<blink\b`, types.SevMedium, markupOnly,
		"<blink> was never standard and is unsupported"),
	mustRule("target-blank-noopener", `target\s*=\s*["']_blank["']`, types.SevInfo, markupOnly,
		"target=_blank links should carry rel=noopener for older engines"),
	mustRule("inline-event-handler", `\son(click|load|error|mouseover)\s*=`, types.SevLow, markupOnly,
		"Inline event handlers conflict with CSP; attach listeners in script"),

	// Style hazards
	mustRule("css-expression", `expression\s*\(`, types.SevCritical, styleOnly,
		"CSS expression() executed script in legacy IE and is an XSS vector"),
	mustRule("css-import", `@import\b`, types.SevLow, styleOnly,
		"@import serializes stylesheet loading; prefer link elements"),
	mustRule("webkit-prefix", `-webkit-[a-z-]+\s*:`, types.SevInfo, styleOnly,
		"Vendor-prefixed properties should be paired with the standard form"),
	mustRule("moz-prefix", `-moz-[a-z-]+\s*:`, types.SevInfo, styleOnly,
		"Vendor-prefixed properties should be paired with the standard form"),

	// Any file type
	mustRule("http-url", `http://[^\s"'<>)]+`, types.SevLow, nil,
		"Plain-HTTP URL; mixed content is blocked on secure pages"),
	mustRule("todo-marker", `\b(TODO|FIXME|XXX)\b`, types.SevInfo, nil,
		"Unfinished-work marker shipped in a source artifact"),
}

// Default returns the built-in rule catalog.
func Default() *Catalog {
	c, err := build(builtinRules)
	if err != nil {
		// Built-in ids are fixed at compile time; a duplicate is a programming error.
		panic(err)
	}
	return c
}
