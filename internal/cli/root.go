// Package cli provides the command-line interface for logfilter.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ccollicutt/logfilter/internal/cli/commands"
	"github.com/ccollicutt/logfilter/pkg/config"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		if config.IsUsageError(err) {
			_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", rootCmd.Name())
			return ExitUsage
		}
		return ExitFailure
	}
	return ExitOK
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := commands.NewFilterCommand()
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Accept --start_date and --end_date as spelled by older scripts.
	rootCmd.SetGlobalNormalizationFunc(underscoreToDash)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &config.UsageError{Msg: err.Error()}
	})

	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}

func underscoreToDash(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
