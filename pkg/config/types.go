// Package config loads and validates converter configuration.
package config

// Config holds the converter settings. It is built once at startup,
// passed by reference, and never mutated afterwards.
type Config struct {
	// SkipValidation accepts every field regardless of content.
	// Tokenization boundaries are unaffected.
	SkipValidation bool `yaml:"skip_validation"`

	// Inputs are log file paths or glob patterns. Empty means read
	// from standard input.
	Inputs []string `yaml:"inputs"`

	// Follow keeps reading a single input file as it grows instead of
	// stopping at end of file.
	Follow bool `yaml:"follow"`

	// Output is the path the converted records are written to. Empty
	// means standard output.
	Output string `yaml:"output"`

	// MaxLineSize bounds a single input record, in bytes.
	MaxLineSize int `yaml:"max_line_size"`
}
