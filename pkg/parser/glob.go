package parser

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ExpandGlobs expands file paths and glob patterns into a deduplicated,
// sorted list of paths. A pattern that matches nothing is kept as a
// literal path so the caller gets a proper file-not-found error when it
// tries to open it.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			add(pattern)
			continue
		}
		for _, match := range matches {
			add(match)
		}
	}

	sort.Strings(result)
	return result, nil
}
