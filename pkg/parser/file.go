package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// FileSource yields lines from a list of log files in order. Files are
// opened lazily, one at a time.
type FileSource struct {
	files       []string
	maxLineSize int

	currentFile    *os.File
	currentScanner *bufio.Scanner
	currentSource  string
	currentLine    int
	fileIndex      int
}

// NewFileSource creates a LineSource over the given files. maxLineSize
// bounds a single line; zero or negative selects DefaultMaxLineSize.
func NewFileSource(files []string, maxLineSize int) *FileSource {
	if maxLineSize <= 0 {
		maxLineSize = DefaultMaxLineSize
	}
	return &FileSource{
		files:       files,
		maxLineSize: maxLineSize,
		fileIndex:   -1,
	}
}

// Next returns the next raw line. Line numbers restart at 1 for each
// file. Returns io.EOF when all files have been exhausted.
func (s *FileSource) Next(ctx context.Context) (*Line, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if s.currentScanner == nil {
			if err := s.openNextFile(); err != nil {
				return nil, err
			}
		}

		if s.currentScanner.Scan() {
			s.currentLine++
			return &Line{
				Text:   s.currentScanner.Text(),
				Source: s.currentSource,
				Num:    s.currentLine,
			}, nil
		}

		if err := s.currentScanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.currentSource, err)
		}

		// Current file exhausted, try next
		if err := s.closeCurrentFile(); err != nil {
			return nil, err
		}
	}
}

// Close releases resources.
func (s *FileSource) Close() error {
	return s.closeCurrentFile()
}

func (s *FileSource) openNextFile() error {
	s.fileIndex++
	if s.fileIndex >= len(s.files) {
		return io.EOF
	}

	path := s.files[s.fileIndex]
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", path, err)
	}

	s.currentFile = f
	s.currentScanner = bufio.NewScanner(f)
	s.currentScanner.Buffer(make([]byte, 0, initialBufferSize), s.maxLineSize)
	s.currentSource = path
	s.currentLine = 0

	return nil
}

func (s *FileSource) closeCurrentFile() error {
	if s.currentFile != nil {
		err := s.currentFile.Close()
		s.currentFile = nil
		s.currentScanner = nil
		return err
	}
	return nil
}
