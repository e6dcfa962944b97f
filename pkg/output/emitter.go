// Package output renders tokenized records and per-line diagnostics.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Emitter writes successful records to the output stream and failure
// diagnostics to the diagnostic stream. A failed line never produces
// partial record output.
type Emitter struct {
	out  *bufio.Writer
	diag io.Writer
}

// New creates an Emitter. Records go to out, diagnostics to diag.
func New(out, diag io.Writer) *Emitter {
	return &Emitter{
		out:  bufio.NewWriter(out),
		diag: diag,
	}
}

// EmitRecord writes the tokens joined by single tabs and a trailing
// newline. An empty token sequence writes nothing.
func (e *Emitter) EmitRecord(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if _, err := e.out.WriteString(strings.Join(tokens, "\t")); err != nil {
		return err
	}
	if err := e.out.WriteByte('\n'); err != nil {
		return err
	}

	// Flush per record so pipe consumers see lines as they complete.
	return e.out.Flush()
}

// EmitError reports a rejected line on the diagnostic stream. The raw
// line is reproduced verbatim so it can be replayed or inspected.
func (e *Emitter) EmitError(reason error, rawLine string) {
	fmt.Fprintf(e.diag, "Error \"%s\" on line: %s\n", reason, rawLine)
}

// Flush forces any buffered record output out.
func (e *Emitter) Flush() error {
	return e.out.Flush()
}
