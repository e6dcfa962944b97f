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

// CheckOptions holds command-line options for the check command.
type CheckOptions struct {
	ConfigFile string
	Quiet      bool
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check [file|glob ...]",
		Short: "Validate access logs without emitting records",
		Long: `Run the same tokenization and field validation as convert, but emit
only the per-line diagnostics and a summary. No records are written.

Useful for vetting a log file before feeding it into a pipeline.

Exit codes:
  0 - Every line tokenized and validated
  1 - One or more lines were rejected
  2 - Configuration or I/O error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Path to YAML configuration file")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no per-line diagnostics")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Resolve(ctx, opts.ConfigFile)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Inputs = args
	}
	// Check is a batch operation; never follow.
	cfg.Follow = false

	source, err := newLineSource(cfg, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer source.Close()

	emitter := output.New(io.Discard, cmd.ErrOrStderr())
	scanner := clf.NewScanner(clf.NewValidator(false))

	var checked, invalid int
	for {
		line, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		checked++
		if _, scanErr := scanner.ScanLine(line.Text); scanErr != nil {
			invalid++
			if !opts.Quiet {
				emitter.EmitError(scanErr, line.Text)
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "clf2tab: %d line(s) checked, %d invalid\n", checked, invalid)

	if invalid > 0 {
		ExitCode = 1
	}
	return nil
}
