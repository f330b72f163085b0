package markup

import (
	"regexp"
	"strings"

	"answer-guard/escape"
)

// Inline patterns are matched against escaped text, so literal < > & " '
// can never appear inside a match. The formatting markers themselves are
// never escaped, which is why escaping first cannot corrupt them.
var (
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`_(.+?)_`)
	urlPattern    = regexp.MustCompile(`https?://[^\s]+`)
)

// escapedLT is the terminator for autolinks: the raw text terminates a URL
// at whitespace or '<', and by the time the pattern runs '<' has become this
// entity.
const escapedLT = "&lt;"

// FormatInline escapes text and splits it into an ordered sequence of typed
// inline nodes. Precedence is fixed: code spans are cut out first, then bold
// and italic inside the remaining segments, then autolinked URLs inside the
// remaining plain runs. Earlier stages consume their spans, so later stages
// never re-match inside them; bold and italic deliberately do not nest.
// Output order equals input left-to-right order. Empty input yields an empty
// sequence.
func FormatInline(text string) []InlineNode {
	nodes := []InlineNode{}
	if text == "" {
		return nodes
	}

	escaped := escape.Escape(text)

	segments := strings.Split(escaped, "`")
	// An odd number of backticks means the final span is unterminated; the
	// dangling backtick is literal text, not an error.
	if len(segments)%2 == 0 {
		segments[len(segments)-2] = segments[len(segments)-2] + "`" + segments[len(segments)-1]
		segments = segments[:len(segments)-1]
	}

	for i, segment := range segments {
		if i%2 == 1 {
			nodes = append(nodes, InlineNode{Kind: InlineCode, Text: segment})
			continue
		}
		nodes = append(nodes, formatEmphasis(segment)...)
	}

	return nodes
}

// formatEmphasis handles bold spans within a non-code segment, delegating the
// runs between matches to italic handling.
func formatEmphasis(segment string) []InlineNode {
	var nodes []InlineNode

	last := 0
	for _, match := range boldPattern.FindAllStringSubmatchIndex(segment, -1) {
		nodes = append(nodes, formatItalic(segment[last:match[0]])...)
		nodes = append(nodes, InlineNode{Kind: InlineBold, Text: segment[match[2]:match[3]]})
		last = match[1]
	}
	nodes = append(nodes, formatItalic(segment[last:])...)

	return nodes
}

// formatItalic handles italic spans, delegating the plain runs between
// matches to autolink detection.
func formatItalic(segment string) []InlineNode {
	var nodes []InlineNode

	last := 0
	for _, match := range italicPattern.FindAllStringSubmatchIndex(segment, -1) {
		nodes = append(nodes, formatLinks(segment[last:match[0]])...)
		nodes = append(nodes, InlineNode{Kind: InlineItalic, Text: segment[match[2]:match[3]]})
		last = match[1]
	}
	nodes = append(nodes, formatLinks(segment[last:])...)

	return nodes
}

// formatLinks detects http:// and https:// URL tokens in a plain run and
// wraps each as a link node. The display label is the URL with its scheme
// stripped; surrounding text stays plain.
func formatLinks(run string) []InlineNode {
	var nodes []InlineNode
	if run == "" {
		return nodes
	}

	last := 0
	for _, match := range urlPattern.FindAllStringIndex(run, -1) {
		start, end := match[0], match[1]
		url := run[start:end]
		// The raw '<' terminator is the escaped entity at this stage.
		if cut := strings.Index(url, escapedLT); cut >= 0 {
			end = start + cut
			url = run[start:end]
		}
		if url == "" {
			continue
		}
		if start > last {
			nodes = append(nodes, InlineNode{Kind: InlineText, Text: run[last:start]})
		}
		nodes = append(nodes, InlineNode{Kind: InlineLink, Text: stripScheme(url), Href: url})
		last = end
	}
	if last < len(run) {
		nodes = append(nodes, InlineNode{Kind: InlineText, Text: run[last:]})
	}

	return nodes
}

// stripScheme removes the URL scheme for display purposes.
func stripScheme(url string) string {
	if trimmed := strings.TrimPrefix(url, "https://"); trimmed != url {
		return trimmed
	}
	return strings.TrimPrefix(url, "http://")
}
