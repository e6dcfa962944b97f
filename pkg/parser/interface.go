package parser

import "context"

// LineSource is a sequential iterator over raw log lines.
// Implementations must be safe for sequential access (not concurrent).
type LineSource interface {
	// Next returns the next raw line.
	// Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (*Line, error)

	// Close releases any resources held by the source.
	Close() error
}

// Buffer sizing shared by the sources.
const (
	// DefaultMaxLineSize bounds a single record; longer lines fail the
	// read rather than being split.
	DefaultMaxLineSize = 1024 * 1024

	initialBufferSize = 64 * 1024
)
