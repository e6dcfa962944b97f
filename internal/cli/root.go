// Package cli provides the command-line interface for clf2tab.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/streamtools/clf2tab/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clf2tab",
		Short: "Convert Apache access logs to tab-separated records",
		Long: `clf2tab converts Apache Common and Combined Log Format access logs
into tab-separated records for downstream analytics tooling.

Each input line is retokenized field by field, the timestamp is
converted to Unix epoch seconds, and the validated record is written
as one tab-separated output line:

  address(es)  identity  user  epoch  method  path  protocol  code  size  [referer]  [agent]

Malformed lines are reported on stderr and skipped; the stream is
never interrupted by a single bad record.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
