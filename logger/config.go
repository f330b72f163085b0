package logger

import (
	"answer-guard/config"
)

// ConfigAdapter adapts config.Config to implement LoggerConfig
type ConfigAdapter struct {
	config *config.Config
}

// NewConfigAdapter creates a new ConfigAdapter
func NewConfigAdapter(cfg *config.Config) LoggerConfig {
	return &ConfigAdapter{config: cfg}
}

// ShouldLogForVariant determines if logging should be enabled for the given
// payload variant. Repair logging covers every non-canonical variant; the
// counters still fire when the log lines are silenced.
func (c *ConfigAdapter) ShouldLogForVariant(variant string) bool {
	if c.config.DisableRepairLogging && variant != "v2" {
		return false
	}
	return true
}

// GetMinLogLevel returns the configured minimum log level
func (c *ConfigAdapter) GetMinLogLevel() Level {
	return ParseLevel(c.config.MinLogLevel)
}

// ShouldMaskSessionIDs reports whether session identifiers are masked in
// console log lines
func (c *ConfigAdapter) ShouldMaskSessionIDs() bool {
	return c.config.MaskSessionIDs
}
