// Package render turns a canonical response into a safe render tree. It is
// the only producer of presentation output: everything in the tree has passed
// through the escape and markup pipeline, so consumers can emit node text
// verbatim into HTML without further sanitization.
package render

import (
	"answer-guard/markup"
	"answer-guard/metrics"
	"answer-guard/types"
)

// Header is the rendered title region of a response. Emoji and Level are
// presentation hints set by the style mapper, empty and zero otherwise.
type Header struct {
	Title   []markup.InlineNode `json:"title"`
	Summary []markup.InlineNode `json:"summary"`
	Emoji   string              `json:"emoji,omitempty"`
	Level   int                 `json:"level,omitempty"`
}

// BlockRender is one rendered content block. Index preserves the block's
// position in the canonical response so consumers can rely on stable order.
type BlockRender struct {
	Index int               `json:"index"`
	Type  string            `json:"type"`
	Nodes []markup.TextNode `json:"nodes"`
}

// RenderTree is the full rendered output for one response.
type RenderTree struct {
	Header Header        `json:"header"`
	Blocks []BlockRender `json:"blocks"`
}

// Render builds the render tree for a canonical response. It is a pure
// function of its input: no shared state, no mutation of the response, and
// rendering the same response twice yields equal trees.
func Render(resp types.CanonicalResponse) RenderTree {
	metrics.RendersTotal.Inc()

	tree := RenderTree{
		Header: Header{
			Title:   markup.FormatInline(resp.Title),
			Summary: markup.FormatInline(resp.Summary),
			Emoji:   resp.Meta.Emoji,
		},
		Blocks: make([]BlockRender, 0, len(resp.Blocks)),
	}

	for i, block := range resp.Blocks {
		tree.Blocks = append(tree.Blocks, BlockRender{
			Index: i,
			Type:  block.Type,
			Nodes: markup.TokenizeBlocks(block.Content),
		})
	}

	return tree
}

// NodeCount reports the total number of block-level nodes in the tree, used
// for request logging.
func (t RenderTree) NodeCount() int {
	count := 0
	for _, block := range t.Blocks {
		count += len(block.Nodes)
	}
	return count
}
