package render

import (
	"strings"

	"answer-guard/config"
)

// StyleMapper applies operator-configured header decorations to rendered
// trees. It never touches block content, only the header's Emoji and Level
// hints, so it cannot reintroduce unescaped text into the tree.
type StyleMapper struct {
	enabled bool
	rules   []config.StyleRule
}

// NewStyleMapper builds a mapper from the loaded configuration. A disabled
// mapper is a passthrough.
func NewStyleMapper(cfg *config.Config) *StyleMapper {
	if cfg == nil {
		return &StyleMapper{}
	}
	return &StyleMapper{
		enabled: cfg.StyleMapperEnabled,
		rules:   cfg.StyleRules,
	}
}

// Apply decorates the tree header with the first rule whose match keyword
// appears in the response title, case-insensitively. A header emoji already
// set by the payload's own meta is kept unless a rule overrides it.
func (s *StyleMapper) Apply(tree RenderTree, title string) RenderTree {
	if !s.enabled || len(s.rules) == 0 {
		return tree
	}

	lowered := strings.ToLower(title)
	for _, rule := range s.rules {
		if !strings.Contains(lowered, strings.ToLower(rule.Match)) {
			continue
		}
		if rule.Emoji != "" {
			tree.Header.Emoji = rule.Emoji
		}
		if rule.Level > 0 {
			tree.Header.Level = rule.Level
		}
		break
	}

	return tree
}
