package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/streamtools/clf2tab/pkg/clf"
	"github.com/streamtools/clf2tab/pkg/config"
	"github.com/streamtools/clf2tab/pkg/output"
)

// ConvertOptions holds command-line options for the convert command.
type ConvertOptions struct {
	ConfigFile     string
	SkipValidation bool
	Follow         bool
	Output         string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file|glob ...]",
		Short: "Convert access logs to tab-separated records",
		Long: `Convert Common or Combined Log Format access logs into tab-separated
records, one per input line. With no file arguments, lines are read
from stdin; records are written to stdout unless --output is given.

Each line is tokenized field by field and every field is checked
against its grammar. The bracketed timestamp is replaced by Unix
epoch seconds computed from its literal zone offset, so the result
does not depend on this machine's timezone. Lines that fail are
reported on stderr in the form

  Error "<reason>" on line: <original line>

and produce no record; the remaining lines are unaffected.

Exit codes:
  0 - Input stream processed to the end
  2 - Configuration or I/O error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Path to YAML configuration file")
	cmd.Flags().BoolVar(&opts.SkipValidation, "skip-validation", false, "Accept every field regardless of content")
	cmd.Flags().BoolVarP(&opts.Follow, "follow", "f", false, "Keep reading the input file as it grows")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write records to this file instead of stdout")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, opts *ConvertOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConvertConfig(ctx, cmd, args, opts)
	if err != nil {
		return err
	}

	source, err := newLineSource(cfg, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer source.Close()

	out, closeOut, err := openOutput(cfg.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = closeOut() }()

	emitter := output.New(out, cmd.ErrOrStderr())
	scanner := clf.NewScanner(clf.NewValidator(cfg.SkipValidation))

	for {
		line, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		tokens, scanErr := scanner.ScanLine(line.Text)
		if scanErr != nil {
			// Per-line failure boundary: report and keep going.
			emitter.EmitError(scanErr, line.Text)
			continue
		}

		if err := emitter.EmitRecord(tokens); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}

	return emitter.Flush()
}

// resolveConvertConfig layers the run configuration: defaults, then the
// config file, then environment, then flags and arguments.
func resolveConvertConfig(ctx context.Context, cmd *cobra.Command, args []string, opts *ConvertOptions) (*config.Config, error) {
	cfg, err := config.Resolve(ctx, opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Inputs = args
	}
	if cmd.Flags().Changed("skip-validation") {
		cfg.SkipValidation = opts.SkipValidation
	}
	if cmd.Flags().Changed("follow") {
		cfg.Follow = opts.Follow
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = opts.Output
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
