package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StyleRule decorates a rendered header region when its keyword matches the
// response title. Rules are presentation cosmetics only: they are applied
// after rendering, outside the safety-critical escape/tokenize/guard path,
// and carry operator-supplied text, never user content.
type StyleRule struct {
	Match string `yaml:"match"` // case-insensitive substring of the title
	Emoji string `yaml:"emoji"` // decoration prepended to the header
	Level int    `yaml:"level"` // heading level hint for the presentation layer
}

// styleOverridesFile is the on-disk shape of style_overrides.yaml.
type styleOverridesFile struct {
	Rules []StyleRule `yaml:"rules"`
}

// LoadStyleOverrides reads style mapper rules from a YAML file. Rules with
// an empty match keyword are skipped rather than treated as wildcard, so a
// half-written file cannot decorate every response.
func LoadStyleOverrides(path string) ([]StyleRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed styleOverridesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}

	rules := make([]StyleRule, 0, len(parsed.Rules))
	for _, rule := range parsed.Rules {
		if rule.Match == "" {
			continue
		}
		if rule.Level < 0 {
			rule.Level = 0
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
