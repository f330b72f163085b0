package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"answer-guard/config"
	"answer-guard/types"
)

func styledConfig(rules ...config.StyleRule) *config.Config {
	cfg := config.GetDefaultConfig()
	cfg.StyleMapperEnabled = true
	cfg.StyleRules = rules
	return cfg
}

func TestStyleMapperApply(t *testing.T) {
	mapper := NewStyleMapper(styledConfig(
		config.StyleRule{Match: "wind", Emoji: "🌬️", Level: 2},
		config.StyleRule{Match: "seismic", Emoji: "🌀"},
	))

	resp := canonical("Wind Load Basics", "s", types.ContentBlock{Type: "markdown", Content: "x"})
	tree := mapper.Apply(Render(resp), resp.Title)

	assert.Equal(t, "🌬️", tree.Header.Emoji)
	assert.Equal(t, 2, tree.Header.Level)
}

func TestStyleMapperFirstMatchWins(t *testing.T) {
	mapper := NewStyleMapper(styledConfig(
		config.StyleRule{Match: "load", Emoji: "🏗️"},
		config.StyleRule{Match: "wind", Emoji: "🌬️"},
	))

	resp := canonical("Wind Load Basics", "s", types.ContentBlock{Type: "markdown", Content: "x"})
	tree := mapper.Apply(Render(resp), resp.Title)
	assert.Equal(t, "🏗️", tree.Header.Emoji)
}

func TestStyleMapperNoMatchKeepsPayloadEmoji(t *testing.T) {
	mapper := NewStyleMapper(styledConfig(config.StyleRule{Match: "seismic", Emoji: "🌀"}))

	resp := canonical("Timber Connections", "s", types.ContentBlock{Type: "markdown", Content: "x"})
	resp.Meta.Emoji = "🪵"
	tree := mapper.Apply(Render(resp), resp.Title)

	assert.Equal(t, "🪵", tree.Header.Emoji)
	assert.Equal(t, 0, tree.Header.Level)
}

func TestStyleMapperDisabledIsPassthrough(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.StyleRules = []config.StyleRule{{Match: "wind", Emoji: "🌬️"}}
	mapper := NewStyleMapper(cfg)

	resp := canonical("Wind Load Basics", "s", types.ContentBlock{Type: "markdown", Content: "x"})
	before := Render(resp)
	after := mapper.Apply(before, resp.Title)
	assert.Equal(t, before, after)

	assert.Equal(t, before, NewStyleMapper(nil).Apply(before, resp.Title))
}

func TestStyleMapperDoesNotTouchBlocks(t *testing.T) {
	mapper := NewStyleMapper(styledConfig(config.StyleRule{Match: "wind", Emoji: "🌬️"}))

	resp := canonical("Wind", "s",
		types.ContentBlock{Type: "markdown", Content: "body text"},
		types.ContentBlock{Type: "list", Content: "- a\n- b"},
	)
	before := Render(resp)
	after := mapper.Apply(before, resp.Title)
	assert.Equal(t, before.Blocks, after.Blocks)
}
