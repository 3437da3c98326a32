package config

import "fmt"

var validLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "error": {},
}

var validFormats = map[string]struct{}{
	"console": {}, "json": {},
}

// Validate checks the configuration for values the runtime cannot work with.
func (c *Config) Validate() error {
	if _, ok := validLevels[c.Log.Level]; !ok {
		return fmt.Errorf("log level: unsupported value %q", c.Log.Level)
	}
	if _, ok := validFormats[c.Log.Format]; !ok {
		return fmt.Errorf("log format: unsupported value %q", c.Log.Format)
	}
	if c.Engine.Framework == "" {
		return fmt.Errorf("engine framework: must not be empty")
	}
	if c.Wikipedia.SentenceCount <= 0 {
		return fmt.Errorf("wikipedia sentence_count: must be positive, got %d", c.Wikipedia.SentenceCount)
	}
	if c.Wikipedia.TimeoutSeconds <= 0 {
		return fmt.Errorf("wikipedia timeout_seconds: must be positive, got %d", c.Wikipedia.TimeoutSeconds)
	}
	if c.Wikipedia.Enabled && c.Wikipedia.BaseURL == "" {
		return fmt.Errorf("wikipedia base_url: must not be empty when enabled")
	}
	return nil
}
