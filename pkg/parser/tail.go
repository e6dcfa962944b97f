package parser

import (
	"context"
	"fmt"
	"io"

	"github.com/hpcloud/tail"
)

// TailSource follows a single log file as it is written, yielding new
// lines as they appear. The file is reopened on rotation. The source
// only ends when the context is cancelled.
type TailSource struct {
	path    string
	tailer  *tail.Tail
	lineNum int
}

// NewTailSource starts following the given file. The file must exist.
func NewTailSource(path string) (*TailSource, error) {
	cfg := tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Poll:      true,
		Logger:    tail.DiscardingLogger,
	}

	tf, err := tail.TailFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("tailing %s: %w", path, err)
	}

	return &TailSource{path: path, tailer: tf}, nil
}

// Next blocks until a new line is written, the context is cancelled,
// or the tailer stops. A stopped tailer surfaces as io.EOF.
func (s *TailSource) Next(ctx context.Context) (*Line, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case line, ok := <-s.tailer.Lines:
			if !ok {
				return nil, io.EOF
			}
			if line.Err != nil {
				return nil, fmt.Errorf("tailing %s: %w", s.path, line.Err)
			}
			s.lineNum++
			return &Line{
				Text:   line.Text,
				Source: s.path,
				Num:    s.lineNum,
			}, nil
		}
	}
}

// Close stops the tailer and removes its watch state.
func (s *TailSource) Close() error {
	err := s.tailer.Stop()
	s.tailer.Cleanup()
	return err
}
