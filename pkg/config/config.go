package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. Values not present in
// the file keep their defaults; environment variables override both.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Resolve returns the configuration for a run: the file at path when
// one is given, otherwise defaults with environment overrides.
func Resolve(ctx context.Context, path string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}

	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.MaxLineSize <= 0 {
		return errors.New("max_line_size: must be positive")
	}

	if cfg.Follow && len(cfg.Inputs) != 1 {
		return fmt.Errorf("follow: requires exactly one input file, got %d", len(cfg.Inputs))
	}

	return nil
}
