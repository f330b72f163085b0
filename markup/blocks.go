package markup

import "strings"

// listMarker prefixes an unordered list item line.
const listMarker = "- "

// TokenizeBlocks splits raw text into block-level nodes. Each trimmed line is
// classified on its own: a "- " line is a list item and consecutive items
// accumulate into one list block; a blank line outside an open list emits a
// spacer; any other non-blank line becomes its own paragraph. The upstream
// answer convention is one logical line per paragraph, so consecutive
// non-blank lines are deliberately not merged.
//
// The function is total: any input, including the empty string, yields a
// valid (possibly empty) sequence, and every string inside the result has
// passed through the escaper exactly once (inside FormatInline).
func TokenizeBlocks(rawText string) []TextNode {
	nodes := []TextNode{}
	if rawText == "" {
		return nodes
	}

	var items [][]InlineNode
	closeList := func() {
		if items != nil {
			nodes = append(nodes, TextNode{Kind: BlockList, Items: items})
			items = nil
		}
	}

	normalized := strings.ReplaceAll(rawText, "\r\n", "\n")
	for _, line := range strings.Split(normalized, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, listMarker):
			items = append(items, FormatInline(strings.TrimPrefix(trimmed, listMarker)))

		// A "- " line with nothing after the marker trims down to a bare
		// dash. It is an empty list item, not a one-dash paragraph that
		// would split the surrounding list.
		case trimmed == "-":
			items = append(items, FormatInline(""))

		case trimmed == "":
			if items != nil {
				closeList()
			} else {
				nodes = append(nodes, TextNode{Kind: BlockSpacer})
			}

		default:
			closeList()
			nodes = append(nodes, TextNode{Kind: BlockParagraph, Inline: FormatInline(trimmed)})
		}
	}
	closeList()

	return nodes
}
