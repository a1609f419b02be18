package config

import (
	"fmt"

	"github.com/kilianp07/evcs/infra/logger"
)

// LoggingConfig defines the application log level and destination. Logs
// default to stderr so they never mix with the menu on stdout.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `json:"level"`
	// Output is "stderr", "stdout", "discard" or a file path.
	Output string `json:"output"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "warn"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	if !logger.ValidLevel(c.Level) {
		return fmt.Errorf("unknown level %s", c.Level)
	}
	return nil
}
