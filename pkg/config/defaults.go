package config

import (
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultMaxLineSize = 1024 * 1024 // 1MB
)

// Environment variable names.
const (
	EnvSkipValidation = "CLF2TAB_SKIP_VALIDATION"
	EnvOutput         = "CLF2TAB_OUTPUT"
)

// DefaultConfig returns a configuration with sensible defaults:
// stdin to stdout, validation on.
func DefaultConfig() *Config {
	return &Config{
		MaxLineSize: DefaultMaxLineSize,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvSkipValidation); v != "" {
		if skip, err := strconv.ParseBool(v); err == nil {
			c.SkipValidation = skip
		}
	}

	if out := os.Getenv(EnvOutput); out != "" {
		c.Output = out
	}
}
