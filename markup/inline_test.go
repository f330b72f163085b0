package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []InlineNode
	}{
		{
			name:  "empty input yields empty sequence",
			input: "",
			want:  []InlineNode{},
		},
		{
			name:  "plain text",
			input: "check the beam capacity",
			want: []InlineNode{
				{Kind: InlineText, Text: "check the beam capacity"},
			},
		},
		{
			name:  "bold span",
			input: "see **AS 1170** for loads",
			want: []InlineNode{
				{Kind: InlineText, Text: "see "},
				{Kind: InlineBold, Text: "AS 1170"},
				{Kind: InlineText, Text: " for loads"},
			},
		},
		{
			name:  "italic span",
			input: "a _serviceability_ check",
			want: []InlineNode{
				{Kind: InlineText, Text: "a "},
				{Kind: InlineItalic, Text: "serviceability"},
				{Kind: InlineText, Text: " check"},
			},
		},
		{
			name:  "code span",
			input: "run `kN/m` conversion",
			want: []InlineNode{
				{Kind: InlineText, Text: "run "},
				{Kind: InlineCode, Text: "kN/m"},
				{Kind: InlineText, Text: " conversion"},
			},
		},
		{
			name:  "unterminated backtick is literal",
			input: "a `broken span",
			want: []InlineNode{
				{Kind: InlineText, Text: "a `broken span"},
			},
		},
		{
			name:  "bold inside code is not re-matched",
			input: "`**not bold**`",
			want: []InlineNode{
				{Kind: InlineCode, Text: "**not bold**"},
			},
		},
		{
			name:  "italic does not nest inside bold",
			input: "**outer _inner_ text**",
			want: []InlineNode{
				{Kind: InlineBold, Text: "outer _inner_ text"},
			},
		},
		{
			name:  "https autolink with scheme stripped label",
			input: "docs at https://standards.org.au/as1170 today",
			want: []InlineNode{
				{Kind: InlineText, Text: "docs at "},
				{Kind: InlineLink, Text: "standards.org.au/as1170", Href: "https://standards.org.au/as1170"},
				{Kind: InlineText, Text: " today"},
			},
		},
		{
			name:  "http autolink",
			input: "http://example.com",
			want: []InlineNode{
				{Kind: InlineLink, Text: "example.com", Href: "http://example.com"},
			},
		},
		{
			name:  "url terminated by angle bracket",
			input: "see https://example.com<b>x</b>",
			want: []InlineNode{
				{Kind: InlineText, Text: "see "},
				{Kind: InlineLink, Text: "example.com", Href: "https://example.com"},
				{Kind: InlineText, Text: "&lt;b&gt;x&lt;/b&gt;"},
			},
		},
		{
			name:  "mixed precedence left to right",
			input: "`c` then **b** then _i_ then https://x.io",
			want: []InlineNode{
				{Kind: InlineCode, Text: "c"},
				{Kind: InlineText, Text: " then "},
				{Kind: InlineBold, Text: "b"},
				{Kind: InlineText, Text: " then "},
				{Kind: InlineItalic, Text: "i"},
				{Kind: InlineText, Text: " then "},
				{Kind: InlineLink, Text: "x.io", Href: "https://x.io"},
			},
		},
		{
			name:  "markup characters are escaped before matching",
			input: `<script>alert("1")</script>`,
			want: []InlineNode{
				{Kind: InlineText, Text: "&lt;script&gt;alert(&quot;1&quot;)&lt;/script&gt;"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatInline(tt.input))
		})
	}
}

// TestFormatInlineStableOrder verifies that repeated calls produce identical
// sequences, which the render cache relies on.
func TestFormatInlineStableOrder(t *testing.T) {
	input := "**a** then `b` and _c_ at https://d.e"
	first := FormatInline(input)
	second := FormatInline(input)
	assert.Equal(t, first, second)
}

func TestFormatInlineNeverCarriesRawMarkup(t *testing.T) {
	inputs := []string{
		"<img src=x onerror=alert(1)>",
		"**<b>bold</b>**",
		"`<code>`",
		"https://host/path?a=1&b=2",
		"'quoted' \"text\"",
	}

	for _, in := range inputs {
		for _, node := range FormatInline(in) {
			assert.NotContains(t, node.Text, "<")
			assert.NotContains(t, node.Text, ">")
			assert.NotContains(t, node.Text, "\"")
			assert.NotContains(t, node.Text, "'")
			assert.NotContains(t, node.Href, "<")
		}
	}
}
