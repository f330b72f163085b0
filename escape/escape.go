// Package escape provides HTML special-character escaping for untrusted text.
// It is the leaf dependency of the rendering pipeline: every string that ends
// up in a render tree passes through Escape exactly once before any inline
// pattern matching happens.
package escape

import "strings"

// replacements are applied in this exact order. The ampersand must go first:
// replacing it after the others would double-escape the entities they emit.
var replacements = []struct {
	from string
	to   string
}{
	{"&", "&amp;"},
	{"<", "&lt;"},
	{">", "&gt;"},
	{`"`, "&quot;"},
	{"'", "&#39;"},
}

// Escape maps arbitrary text to an HTML-safe string. It is a total function:
// any input produces a valid output and no error path exists. The formatting
// markers used downstream (asterisk, underscore, backtick) are never touched,
// so escaping before inline formatting cannot corrupt them.
func Escape(text string) string {
	for _, r := range replacements {
		text = strings.ReplaceAll(text, r.from, r.to)
	}
	return text
}
