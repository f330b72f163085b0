package config

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// DefaultPlaceholderText is shown when a payload shape is not recognized at
// all. It is the only text the pipeline ever substitutes for original
// content.
const DefaultPlaceholderText = "Response unavailable. Please try asking again."

// Config represents the service configuration - all settings from .env.
//
// The repair toggles are deliberately explicit fields handed to the schema
// guard at construction time rather than ambient process-wide state, so
// normalize and render stay pure and independently testable.
type Config struct {
	Port string `json:"port"`

	// Repair path toggles
	AcceptLegacyDual      bool `json:"accept_legacy_dual"`      // Map legacy technical/mentoring payloads to v2
	AcceptPlainText       bool `json:"accept_plain_text"`       // Wrap bare strings as a single markdown block
	RepairMalformedBlocks bool `json:"repair_malformed_blocks"` // Coerce malformed blocks to markdown instead of dropping them

	// Fallback content
	PlaceholderText string `json:"placeholder_text"`  // Shown for unrecognized payload shapes
	SummaryMaxChars int    `json:"summary_max_chars"` // Derived-summary truncation length

	// Style mapper settings (loaded from style_overrides.yaml)
	StyleMapperEnabled bool        `json:"style_mapper_enabled"`
	StyleOverridesFile string      `json:"style_overrides_file"`
	StyleRules         []StyleRule `json:"style_rules"`

	// Render cache settings
	RenderCacheEnabled bool `json:"render_cache_enabled"`
	RenderCacheSize    int  `json:"render_cache_size"`

	// Logging settings
	LogDir               string `json:"log_dir"`
	MinLogLevel          string `json:"min_log_level"`          // DEBUG, INFO, WARN, ERROR
	MaskSessionIDs       bool   `json:"mask_session_ids"`       // Mask session identifiers in log lines
	DisableRepairLogging bool   `json:"disable_repair_logging"` // Silence per-repair log lines (counters still fire)
}

// GetDefaultConfig returns a default configuration for testing
func GetDefaultConfig() *Config {
	return &Config{
		Port:                  "3456",
		AcceptLegacyDual:      true,
		AcceptPlainText:       true,
		RepairMalformedBlocks: true,
		PlaceholderText:       DefaultPlaceholderText,
		SummaryMaxChars:       200,
		StyleMapperEnabled:    false,
		StyleOverridesFile:    "style_overrides.yaml",
		StyleRules:            []StyleRule{},
		RenderCacheEnabled:    true,
		RenderCacheSize:       256,
		LogDir:                "logs",
		MinLogLevel:           "INFO",
		MaskSessionIDs:        true,
		DisableRepairLogging:  false,
	}
}

// LoadConfigWithEnv loads configuration from a .env file in the working
// directory. Unlike an upstream proxy there are no required endpoints here,
// so a missing .env simply yields the defaults.
func LoadConfigWithEnv() (*Config, error) {
	cfg := GetDefaultConfig()

	envVars, err := loadEnvFile()
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("⚙️ No .env file found, using default configuration")
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read .env file: %v", err)
	}

	if port, exists := envVars["PORT"]; exists && port != "" {
		cfg.Port = port
		log.Printf("🔧 Configured PORT: %s", port)
	}

	applyBool(envVars, "ACCEPT_LEGACY_DUAL", &cfg.AcceptLegacyDual)
	applyBool(envVars, "ACCEPT_PLAIN_TEXT", &cfg.AcceptPlainText)
	applyBool(envVars, "REPAIR_MALFORMED_BLOCKS", &cfg.RepairMalformedBlocks)
	applyBool(envVars, "STYLE_MAPPER_ENABLED", &cfg.StyleMapperEnabled)
	applyBool(envVars, "RENDER_CACHE_ENABLED", &cfg.RenderCacheEnabled)
	applyBool(envVars, "MASK_SESSION_IDS", &cfg.MaskSessionIDs)
	applyBool(envVars, "DISABLE_REPAIR_LOGGING", &cfg.DisableRepairLogging)

	if text, exists := envVars["PLACEHOLDER_TEXT"]; exists && text != "" {
		cfg.PlaceholderText = text
	}

	if raw, exists := envVars["SUMMARY_MAX_CHARS"]; exists && raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.SummaryMaxChars = n
		} else {
			log.Printf("⚠️ Invalid SUMMARY_MAX_CHARS %q, keeping %d", raw, cfg.SummaryMaxChars)
		}
	}

	if raw, exists := envVars["RENDER_CACHE_SIZE"]; exists && raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.RenderCacheSize = n
		} else {
			log.Printf("⚠️ Invalid RENDER_CACHE_SIZE %q, keeping %d", raw, cfg.RenderCacheSize)
		}
	}

	if dir, exists := envVars["LOG_DIR"]; exists && dir != "" {
		cfg.LogDir = dir
	}

	if level, exists := envVars["MIN_LOG_LEVEL"]; exists && level != "" {
		cfg.MinLogLevel = strings.ToUpper(strings.TrimSpace(level))
	}

	if path, exists := envVars["STYLE_OVERRIDES_FILE"]; exists && path != "" {
		cfg.StyleOverridesFile = path
	}

	// Style rules are optional polish; a missing file is not an error.
	if cfg.StyleMapperEnabled {
		rules, err := LoadStyleOverrides(cfg.StyleOverridesFile)
		if err != nil {
			if os.IsNotExist(err) {
				log.Printf("⚙️ Style mapper enabled but %s not found, no rules loaded", cfg.StyleOverridesFile)
			} else {
				return nil, fmt.Errorf("failed to load style overrides: %v", err)
			}
		} else {
			cfg.StyleRules = rules
			log.Printf("🔧 Loaded %d style rules from %s", len(rules), cfg.StyleOverridesFile)
		}
	}

	return cfg, nil
}

// applyBool overwrites the target when the key is present in the .env map.
func applyBool(envVars map[string]string, key string, target *bool) {
	if raw, exists := envVars[key]; exists && raw != "" {
		*target = parseBool(raw)
		log.Printf("🔧 Configured %s: %v", key, *target)
	}
}

// parseBool accepts the usual spellings of truth found in .env files.
func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

// loadEnvFile loads environment variables from .env file in current directory
func loadEnvFile() (map[string]string, error) {
	envVars := make(map[string]string)

	file, err := os.Open(".env")
	if err != nil {
		return envVars, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE format
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove surrounding quotes if present
		if len(value) >= 2 {
			if (strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
				(strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'")) {
				value = value[1 : len(value)-1]
			}
		}

		envVars[key] = value
	}

	return envVars, scanner.Err()
}
