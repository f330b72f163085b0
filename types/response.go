package types

// ContentBlock is one unit of free-text content within a canonical response,
// tagged with a content type. After normalization the type is always one the
// block registry recognizes and the content is always a string.
type ContentBlock struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Meta carries response-level metadata. Schema is always "v2" after
// normalization; Repaired records whether the schema guard had to coerce the
// input into the canonical shape.
type Meta struct {
	Schema    string `json:"schema"`
	Emoji     string `json:"emoji,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Mapped    bool   `json:"mapped,omitempty"`
	Repaired  bool   `json:"repaired"`
}

// CanonicalResponse is the one shape the rest of the system relies on: every
// inbound payload, whatever variant it arrived in, normalizes to this.
//
// Invariants the schema guard upholds:
//   - Blocks is never empty; an empty or absent blocks array is itself a
//     defect and is repaired into a single fallback block.
//   - Meta.Schema is "v2".
//   - Meta.Repaired is false only for already-well-formed v2 input.
//
// A CanonicalResponse is created once per inbound response, is immutable
// after creation, and is owned exclusively by the caller that requested
// normalization. There is no shared mutable state between concurrent
// normalizations.
type CanonicalResponse struct {
	Title   string         `json:"title"`
	Summary string         `json:"summary"`
	Blocks  []ContentBlock `json:"blocks"`
	Meta    Meta           `json:"meta"`
}

// SchemaV2 is the canonical schema tag.
const SchemaV2 = "v2"

// Legacy dual-format field names, kept for classification of historical
// payloads.
const (
	LegacyFieldTechnical = "technical"
	LegacyFieldMentoring = "mentoring"
	LegacyFieldFormat    = "format"
)
