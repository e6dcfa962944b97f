package parser

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"access.log", "access.log.1", "error.log"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	t.Run("pattern expansion", func(t *testing.T) {
		got, err := ExpandGlobs([]string{filepath.Join(dir, "access.log*")})
		if err != nil {
			t.Fatalf("ExpandGlobs() error = %v", err)
		}
		want := []string{
			filepath.Join(dir, "access.log"),
			filepath.Join(dir, "access.log.1"),
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ExpandGlobs() = %v, want %v", got, want)
		}
	})

	t.Run("deduplication", func(t *testing.T) {
		path := filepath.Join(dir, "error.log")
		got, err := ExpandGlobs([]string{path, path, filepath.Join(dir, "error.*")})
		if err != nil {
			t.Fatalf("ExpandGlobs() error = %v", err)
		}
		if len(got) != 1 || got[0] != path {
			t.Errorf("ExpandGlobs() = %v, want just %q", got, path)
		}
	})

	t.Run("non-matching pattern kept as literal", func(t *testing.T) {
		missing := filepath.Join(dir, "missing.log")
		got, err := ExpandGlobs([]string{missing})
		if err != nil {
			t.Fatalf("ExpandGlobs() error = %v", err)
		}
		if len(got) != 1 || got[0] != missing {
			t.Errorf("ExpandGlobs() = %v, want %v", got, []string{missing})
		}
	})

	t.Run("invalid pattern", func(t *testing.T) {
		if _, err := ExpandGlobs([]string{"["}); err == nil {
			t.Error("ExpandGlobs() accepted an invalid pattern")
		}
	})
}
