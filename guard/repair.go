package guard

import (
	"encoding/json"
	"fmt"
	"strings"

	"answer-guard/types"
)

// legacyTitle is the canonical title for responses mapped from the old
// technical/mentoring dual format.
const legacyTitle = "Technical Answer"

// mentoringHeading prefixes the optional second block mapped from a legacy
// payload's mentoring field.
const mentoringHeading = "**Mentoring Insight**"

// normalizeV2 fills in and repairs a payload that already has (or claims)
// the v2 shape. The returned flag reports whether anything had to change;
// it stays false only when the input was already well formed.
func (n *Normalizer) normalizeV2(m map[string]any) (types.CanonicalResponse, bool, string) {
	repaired := false
	reason := ""

	title := coerceStringField(m["title"], &repaired)
	summary := coerceStringField(m["summary"], &repaired)

	meta := types.Meta{Schema: types.SchemaV2}
	if rawMeta, ok := m["meta"]; ok {
		if mm, isMap := rawMeta.(map[string]any); isMap {
			if schema, isStr := mm["schema"].(string); !isStr || schema != types.SchemaV2 {
				repaired = true
				reason = "meta.schema defaulted to v2"
			}
			if emoji, isStr := mm["emoji"].(string); isStr {
				meta.Emoji = emoji
			}
			if sessionID, isStr := mm["sessionId"].(string); isStr {
				meta.SessionID = sessionID
			}
			if mapped, isBool := mm["mapped"].(bool); isBool {
				meta.Mapped = mapped
			}
		} else {
			repaired = true
			reason = "meta field was not an object"
		}
	} else {
		repaired = true
		reason = "meta field was absent"
	}

	blocks, blockReason := n.repairBlocks(m["blocks"], &repaired)
	if blockReason != "" {
		reason = blockReason
	}
	if len(blocks) == 0 {
		blocks = []types.ContentBlock{{
			Type:    types.BlockTypeMarkdown,
			Content: firstNonEmpty(summary, title, n.cfg.PlaceholderText),
		}}
		repaired = true
		reason = "synthesized fallback block for empty blocks array"
	}

	return types.CanonicalResponse{
		Title:   title,
		Summary: summary,
		Blocks:  blocks,
		Meta:    meta,
	}, repaired, reason
}

// repairBlocks validates each declared block. A block whose content is not a
// string, or whose type the registry does not recognize, is coerced to a
// markdown block with the content stringified; with coercion disabled,
// untrustworthy blocks are dropped instead. Either way the repair flag fires.
func (n *Normalizer) repairBlocks(raw any, repaired *bool) ([]types.ContentBlock, string) {
	list, isList := raw.([]any)
	if !isList {
		if raw != nil {
			*repaired = true
			return nil, "blocks field was not an array"
		}
		return nil, ""
	}

	reason := ""
	blocks := make([]types.ContentBlock, 0, len(list))
	for _, element := range list {
		blockMap, isMap := element.(map[string]any)
		if !isMap {
			*repaired = true
			reason = "coerced non-object block to markdown"
			if n.cfg.RepairMalformedBlocks {
				blocks = append(blocks, types.ContentBlock{
					Type:    types.BlockTypeMarkdown,
					Content: stringifyContent(element),
				})
			}
			continue
		}

		blockType, _ := blockMap["type"].(string)
		content, contentIsString := blockMap["content"].(string)

		if contentIsString && n.registry.IsRecognized(blockType) {
			blocks = append(blocks, types.ContentBlock{Type: blockType, Content: content})
			continue
		}

		*repaired = true
		if !contentIsString {
			reason = "stringified non-string block content"
			if !n.cfg.RepairMalformedBlocks {
				continue
			}
		} else {
			reason = fmt.Sprintf("coerced unrecognized block type %q to markdown", blockType)
		}
		blocks = append(blocks, types.ContentBlock{
			Type:    types.BlockTypeMarkdown,
			Content: stringifyContent(blockMap["content"]),
		})
	}

	return blocks, reason
}

// legacyToCanonical maps the historical technical/mentoring dual format onto
// the v2 shape. Meta.Mapped marks the response as format-mapped so the
// presentation layer can tell it apart from native v2 answers.
func (n *Normalizer) legacyToCanonical(m map[string]any) types.CanonicalResponse {
	technical, _ := m[types.LegacyFieldTechnical].(string)
	mentoring, _ := m[types.LegacyFieldMentoring].(string)

	blocks := []types.ContentBlock{{
		Type:    types.BlockTypeMarkdown,
		Content: technical,
	}}
	if strings.TrimSpace(mentoring) != "" {
		blocks = append(blocks, types.ContentBlock{
			Type:    types.BlockTypeMarkdown,
			Content: mentoringHeading + "\n" + mentoring,
		})
	}

	return types.CanonicalResponse{
		Title:   legacyTitle,
		Summary: summarize(technical, n.cfg.SummaryMaxChars),
		Blocks:  blocks,
		Meta:    types.Meta{Schema: types.SchemaV2, Mapped: true},
	}
}

// plainToCanonical wraps a bare string answer as a single markdown block.
func (n *Normalizer) plainToCanonical(text string) types.CanonicalResponse {
	return types.CanonicalResponse{
		Title:   "",
		Summary: summarize(text, n.cfg.SummaryMaxChars),
		Blocks: []types.ContentBlock{{
			Type:    types.BlockTypeMarkdown,
			Content: text,
		}},
		Meta: types.Meta{Schema: types.SchemaV2},
	}
}

// placeholderResponse is the degraded output for payload shapes we do not
// recognize. It is the only path that discards original content.
func (n *Normalizer) placeholderResponse() types.CanonicalResponse {
	return types.CanonicalResponse{
		Title:   "",
		Summary: "",
		Blocks: []types.ContentBlock{{
			Type:    types.BlockTypeMarkdown,
			Content: n.cfg.PlaceholderText,
		}},
		Meta: types.Meta{Schema: types.SchemaV2},
	}
}

// coerceStringField returns the field as a string, stringifying non-string
// values and flagging the repair. A missing field defaults to empty without
// counting as a repair.
func coerceStringField(value any, repaired *bool) string {
	if value == nil {
		return ""
	}
	if s, isStr := value.(string); isStr {
		return s
	}
	*repaired = true
	return stringifyContent(value)
}

// stringifyContent renders any decoded JSON value as text. Numbers come out
// as their JSON notation, objects and arrays as compact JSON.
func stringifyContent(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}

// summarize derives a summary from answer text, truncating on a rune
// boundary around the configured length.
func summarize(text string, maxChars int) string {
	text = strings.TrimSpace(text)
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return strings.TrimSpace(string(runes[:maxChars])) + "..."
}

// firstNonEmpty returns the first argument with visible content.
func firstNonEmpty(candidates ...string) string {
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}
