// Package markup turns free-form answer text into a tree of typed, already
// escaped nodes. It recognizes a deliberately small formatting subset (bold,
// italic, inline code, autolinked URLs, unordered lists) and never parses or
// re-emits markup from the input; it only escapes and reconstructs known-safe
// structures.
package markup

import (
	"encoding/json"
	"fmt"
)

// InlineKind classifies the smallest typed unit of formatted text.
type InlineKind int

const (
	InlineText InlineKind = iota
	InlineBold
	InlineItalic
	InlineCode
	InlineLink
)

// String returns the string representation of the InlineKind
func (k InlineKind) String() string {
	switch k {
	case InlineText:
		return "text"
	case InlineBold:
		return "bold"
	case InlineItalic:
		return "italic"
	case InlineCode:
		return "code"
	case InlineLink:
		return "link"
	default:
		return "text"
	}
}

// MarshalJSON emits the kind as its string name so API consumers never see
// bare enum integers.
func (k InlineKind) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", k.String())), nil
}

// UnmarshalJSON parses the string form back into the kind, defaulting to
// plain text for unrecognized names.
func (k *InlineKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*k = ParseInlineKind(name)
	return nil
}

// ParseInlineKind converts a kind name to an InlineKind with fallback to
// InlineText.
func ParseInlineKind(name string) InlineKind {
	switch name {
	case "bold":
		return InlineBold
	case "italic":
		return InlineItalic
	case "code":
		return InlineCode
	case "link":
		return InlineLink
	default:
		return InlineText
	}
}

// InlineNode is one formatted span of text. Text always holds escaped
// content; for links it is the display label (URL with the scheme stripped)
// and Href carries the full escaped URL.
type InlineNode struct {
	Kind InlineKind `json:"kind"`
	Text string     `json:"text"`
	Href string     `json:"href,omitempty"`
}

// BlockKind classifies a block-level node produced by the tokenizer.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockList
	BlockSpacer
)

// String returns the string representation of the BlockKind
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockList:
		return "list"
	case BlockSpacer:
		return "spacer"
	default:
		return "paragraph"
	}
}

// MarshalJSON emits the kind as its string name.
func (k BlockKind) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", k.String())), nil
}

// UnmarshalJSON parses the string form back into the kind, defaulting to
// paragraph for unrecognized names.
func (k *BlockKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*k = ParseBlockKind(name)
	return nil
}

// ParseBlockKind converts a kind name to a BlockKind with fallback to
// BlockParagraph.
func ParseBlockKind(name string) BlockKind {
	switch name {
	case "list":
		return BlockList
	case "spacer":
		return BlockSpacer
	default:
		return BlockParagraph
	}
}

// TextNode is one block-level node: a paragraph with inline content, a list
// with per-item inline content, or a spacer. Nodes are produced fresh per
// tokenize call and never mutated afterwards.
type TextNode struct {
	Kind   BlockKind      `json:"kind"`
	Inline []InlineNode   `json:"inline,omitempty"`
	Items  [][]InlineNode `json:"items,omitempty"`
}

// IsParagraph returns true if this node is a paragraph
func (n *TextNode) IsParagraph() bool {
	return n.Kind == BlockParagraph
}

// IsList returns true if this node is a list block
func (n *TextNode) IsList() bool {
	return n.Kind == BlockList
}

// IsSpacer returns true if this node is a blank-line spacer
func (n *TextNode) IsSpacer() bool {
	return n.Kind == BlockSpacer
}
