// Package parser provides line-oriented access-log sources: standard
// input, plain files with glob expansion, and a follow mode for logs
// that are still being written.
package parser

// Line is a single raw record read from a source. The text is handed
// to the tokenizer untouched; no parsing happens at this layer.
type Line struct {
	// Text is the raw line content, without the trailing newline.
	Text string

	// Source names where the line came from (a file path, or "stdin").
	Source string

	// Num is the 1-based line number within the source.
	Num int
}
