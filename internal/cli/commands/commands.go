// Package commands implements the clf2tab subcommands.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/streamtools/clf2tab/pkg/config"
	"github.com/streamtools/clf2tab/pkg/parser"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// newLineSource builds the line source a run reads from: stdin when no
// inputs are configured, otherwise the glob-expanded input files, in
// follow mode when requested.
func newLineSource(cfg *config.Config, stdin io.Reader) (parser.LineSource, error) {
	if len(cfg.Inputs) == 0 {
		return parser.NewReaderSource(stdin, "stdin", cfg.MaxLineSize), nil
	}

	files, err := parser.ExpandGlobs(cfg.Inputs)
	if err != nil {
		return nil, fmt.Errorf("expanding inputs: %w", err)
	}

	if cfg.Follow {
		if len(files) != 1 {
			return nil, fmt.Errorf("follow mode requires exactly one input file, matched %d", len(files))
		}
		return parser.NewTailSource(files[0])
	}

	return parser.NewFileSource(files, cfg.MaxLineSize), nil
}

// openOutput returns the record stream writer. An empty path selects
// fallback (stdout); otherwise the file is created or truncated. The
// returned func closes the file, if any.
func openOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}

	f, err := os.Create(path) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}
