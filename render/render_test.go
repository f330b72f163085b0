package render

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"answer-guard/config"
	"answer-guard/guard"
	"answer-guard/markup"
	"answer-guard/types"
)

func canonical(title, summary string, blocks ...types.ContentBlock) types.CanonicalResponse {
	return types.CanonicalResponse{
		Title:   title,
		Summary: summary,
		Blocks:  blocks,
		Meta:    types.Meta{Schema: types.SchemaV2},
	}
}

func TestRenderBasicTree(t *testing.T) {
	resp := canonical("Shear Walls", "Where **stiffness** lives.",
		types.ContentBlock{Type: "markdown", Content: "First paragraph.\n- item one\n- item two"},
		types.ContentBlock{Type: "markdown", Content: "Second block."},
	)

	tree := Render(resp)

	require.Len(t, tree.Header.Title, 1)
	assert.Equal(t, markup.InlineNode{Kind: markup.InlineText, Text: "Shear Walls"}, tree.Header.Title[0])
	require.Len(t, tree.Header.Summary, 3)
	assert.Equal(t, markup.InlineBold, tree.Header.Summary[1].Kind)

	require.Len(t, tree.Blocks, 2)
	assert.Equal(t, 0, tree.Blocks[0].Index)
	assert.Equal(t, 1, tree.Blocks[1].Index)

	first := tree.Blocks[0].Nodes
	require.Len(t, first, 2)
	assert.True(t, first[0].IsParagraph())
	require.True(t, first[1].IsList())
	assert.Len(t, first[1].Items, 2)

	assert.Equal(t, 3, tree.NodeCount())
}

func TestRenderIsIdempotent(t *testing.T) {
	resp := canonical("T", "escaped `code` and _emphasis_",
		types.ContentBlock{Type: "markdown", Content: "Line with **bold** and https://example.com/x\n\n- a < b"},
	)

	first := Render(resp)
	second := Render(resp)
	assert.Equal(t, first, second)
}

// TestRenderInjectionResistance feeds hostile markup end to end and checks no
// raw metacharacter survives anywhere in the serialized tree.
func TestRenderInjectionResistance(t *testing.T) {
	hostile := `<script>alert("xss")</script> & <img src='x' onerror=alert(1)>`
	resp := canonical(hostile, hostile,
		types.ContentBlock{Type: "markdown", Content: "- " + hostile + "\n" + hostile},
	)

	tree := Render(resp)

	var walk func(nodes []markup.InlineNode)
	walk = func(nodes []markup.InlineNode) {
		for _, node := range nodes {
			assert.NotContains(t, node.Text, "<")
			assert.NotContains(t, node.Text, ">")
			assert.NotContains(t, node.Text, `"`)
			assert.NotContains(t, node.Text, "'")
		}
	}
	walk(tree.Header.Title)
	walk(tree.Header.Summary)
	for _, block := range tree.Blocks {
		for _, node := range block.Nodes {
			walk(node.Inline)
			for _, item := range node.Items {
				walk(item)
			}
		}
	}
}

func TestRenderEmptyFields(t *testing.T) {
	resp := canonical("", "", types.ContentBlock{Type: "markdown", Content: ""})
	tree := Render(resp)

	assert.Empty(t, tree.Header.Title)
	assert.Empty(t, tree.Header.Summary)
	require.Len(t, tree.Blocks, 1)
	assert.Empty(t, tree.Blocks[0].Nodes)
}

func TestRenderCarriesMetaEmoji(t *testing.T) {
	resp := canonical("T", "S", types.ContentBlock{Type: "markdown", Content: "x"})
	resp.Meta.Emoji = "🏗️"

	tree := Render(resp)
	assert.Equal(t, "🏗️", tree.Header.Emoji)
}

// TestRenderTreeJSONKinds checks the wire form uses kind names, not enum
// integers.
func TestRenderTreeJSONKinds(t *testing.T) {
	resp := canonical("T", "S",
		types.ContentBlock{Type: "markdown", Content: "**b** `c`\n- item"},
	)

	encoded, err := json.Marshal(Render(resp))
	require.NoError(t, err)

	body := string(encoded)
	assert.Contains(t, body, `"kind":"bold"`)
	assert.Contains(t, body, `"kind":"code"`)
	assert.Contains(t, body, `"kind":"list"`)
	assert.NotContains(t, body, `"kind":0`)
}

// TestNormalizeThenRenderPipeline runs the full guard plus render path on a
// hostile plain-string payload.
func TestNormalizeThenRenderPipeline(t *testing.T) {
	n := guard.NewNormalizer(config.GetDefaultConfig(), nil)
	resp := n.NormalizeRaw(context.Background(), json.RawMessage(`"<b>hi</b> & bye"`))

	tree := Render(resp)
	require.Len(t, tree.Blocks, 1)
	require.Len(t, tree.Blocks[0].Nodes, 1)

	flat := ""
	for _, node := range tree.Blocks[0].Nodes[0].Inline {
		flat += node.Text
	}
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt; &amp; bye", flat)
	assert.False(t, strings.ContainsAny(flat, "<>"))
}
