package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// ReaderSource yields lines from an arbitrary io.Reader, typically
// standard input in a shell pipeline.
type ReaderSource struct {
	scanner *bufio.Scanner
	name    string
	lineNum int
}

// NewReaderSource creates a LineSource over r. The name is used in
// Line.Source and error messages. maxLineSize bounds a single line;
// zero or negative selects DefaultMaxLineSize.
func NewReaderSource(r io.Reader, name string, maxLineSize int) *ReaderSource {
	if maxLineSize <= 0 {
		maxLineSize = DefaultMaxLineSize
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufferSize), maxLineSize)

	return &ReaderSource{
		scanner: scanner,
		name:    name,
	}
}

// Next returns the next line, or io.EOF when the reader is exhausted.
func (s *ReaderSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.name, err)
		}
		return nil, io.EOF
	}

	s.lineNum++
	return &Line{
		Text:   s.scanner.Text(),
		Source: s.name,
		Num:    s.lineNum,
	}, nil
}

// Close is a no-op; the underlying reader is owned by the caller.
func (s *ReaderSource) Close() error {
	return nil
}
