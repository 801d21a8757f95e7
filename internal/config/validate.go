package config

import "fmt"

var validLevels = map[string]struct{}{
	"debug":    {},
	"info":     {},
	"warning":  {},
	"warn":     {},
	"error":    {},
	"critical": {},
}

var validToggles = map[string]struct{}{
	"auto":   {},
	"always": {},
	"never":  {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if _, ok := validLevels[c.LogLevel]; !ok {
		return fmt.Errorf("log_level: unsupported value %q (use debug, info, warning, error, or critical)", c.LogLevel)
	}
	if _, ok := validToggles[c.Color]; !ok {
		return fmt.Errorf("color: unsupported value %q (use auto, always, or never)", c.Color)
	}
	if _, ok := validToggles[c.Animation]; !ok {
		return fmt.Errorf("animation: unsupported value %q (use auto, always, or never)", c.Animation)
	}
	if c.LogRetentionDays < 0 {
		return fmt.Errorf("log_retention_days: must not be negative")
	}
	return nil
}
