package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clf2tab.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
skip_validation: true
inputs:
  - /var/log/apache2/access.log
  - /var/log/apache2/access.log.1
output: /tmp/records.tsv
max_line_size: 65536
`)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.SkipValidation {
		t.Error("SkipValidation = false, want true")
	}
	if len(cfg.Inputs) != 2 {
		t.Errorf("len(Inputs) = %d, want 2", len(cfg.Inputs))
	}
	if cfg.Output != "/tmp/records.tsv" {
		t.Errorf("Output = %q, want %q", cfg.Output, "/tmp/records.tsv")
	}
	if cfg.MaxLineSize != 65536 {
		t.Errorf("MaxLineSize = %d, want 65536", cfg.MaxLineSize)
	}
}

func TestLoad_DefaultsApply(t *testing.T) {
	path := writeConfig(t, `inputs: ["/var/log/access.log"]`)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SkipValidation {
		t.Error("SkipValidation = true, want false by default")
	}
	if cfg.MaxLineSize != DefaultMaxLineSize {
		t.Errorf("MaxLineSize = %d, want %d", cfg.MaxLineSize, DefaultMaxLineSize)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad yaml", content: "inputs: [unclosed"},
		{name: "non-positive line size", content: "max_line_size: 0"},
		{name: "follow with no inputs", content: "follow: true"},
		{name: "follow with many inputs", content: "follow: true\ninputs: [a.log, b.log]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(context.Background(), path); err == nil {
				t.Error("Load() accepted invalid config")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() accepted a missing file")
	}
}

func TestResolve_NoFile(t *testing.T) {
	cfg, err := Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.MaxLineSize != DefaultMaxLineSize {
		t.Errorf("MaxLineSize = %d, want %d", cfg.MaxLineSize, DefaultMaxLineSize)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvSkipValidation, "true")
	t.Setenv(EnvOutput, "/tmp/override.tsv")

	cfg, err := Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if !cfg.SkipValidation {
		t.Error("SkipValidation = false, want true from environment")
	}
	if cfg.Output != "/tmp/override.tsv" {
		t.Errorf("Output = %q, want %q", cfg.Output, "/tmp/override.tsv")
	}
}
