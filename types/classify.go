package types

// Variant identifies which of the mutually-exclusive shapes an inbound
// response payload takes. Exactly one variant is inferable from the shape of
// the payload, and the schema guard must classify before any other
// processing: misclassification corrupts every downstream field.
type Variant int

const (
	VariantV2 Variant = iota
	VariantLegacyDual
	VariantPlain
	VariantUnknown
)

// String returns the string representation of the Variant
func (v Variant) String() string {
	switch v {
	case VariantV2:
		return "v2"
	case VariantLegacyDual:
		return "legacy_dual"
	case VariantPlain:
		return "plain"
	case VariantUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Classify determines the payload variant from decoded JSON, first match
// wins:
//
//  1. An object carrying a non-empty "blocks" array is v2.
//  2. An object carrying "technical" or "mentoring" is the legacy dual
//     format. Legacy fields outrank an empty or malformed "blocks" value so
//     the actual answer text is mapped instead of discarded.
//  3. Any other object carrying "blocks", "title", or "summary" is a v2
//     response whose blocks were dropped or mangled upstream; the guard
//     repairs it rather than reclassifying.
//  4. A bare string is the plain variant.
//  5. Everything else (nil, numbers, booleans, arrays, empty objects) is
//     unknown.
//
// Classify never fails; unknown is the catch-all, not an error.
func Classify(payload any) Variant {
	switch p := payload.(type) {
	case map[string]any:
		if blocks, ok := p["blocks"].([]any); ok && len(blocks) > 0 {
			return VariantV2
		}
		if _, ok := p[LegacyFieldTechnical]; ok {
			return VariantLegacyDual
		}
		if _, ok := p[LegacyFieldMentoring]; ok {
			return VariantLegacyDual
		}
		if _, ok := p["blocks"]; ok {
			return VariantV2
		}
		if _, ok := p["title"]; ok {
			return VariantV2
		}
		if _, ok := p["summary"]; ok {
			return VariantV2
		}
		return VariantUnknown
	case string:
		return VariantPlain
	default:
		return VariantUnknown
	}
}
