package commands

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logfilter/pkg/config"
	"github.com/ccollicutt/logfilter/pkg/diag"
	"github.com/ccollicutt/logfilter/pkg/filter"
	"github.com/ccollicutt/logfilter/pkg/output"
	"github.com/ccollicutt/logfilter/pkg/parser"
)

// Diagnostics is the sink used for per-line warnings during a run.
type Diagnostics interface {
	filter.Diagnostics
	Close() error
}

// NewDiagnostics creates the diagnostic sink for a run. Tests replace it.
var NewDiagnostics = func(opts diag.Options) (Diagnostics, error) {
	return diag.New(opts)
}

// FilterOptions holds command-line options for the filter command.
type FilterOptions struct {
	StartDate string
	EndDate   string
	Quiet     bool
	Summary   string
	LogFormat string
}

// NewFilterCommand creates the filter command.
func NewFilterCommand() *cobra.Command {
	opts := &FilterOptions{}

	cmd := &cobra.Command{
		Use:   "logfilter <log-file> [INFO|WARNING|ERROR]",
		Short: "Filter log lines by level and date range",
		Long: `Print the lines of a log file that match a level and/or a date range.

Lines must have the form:
  [YYYY-MM-DD HH:MM:SS] LEVEL: message

Matching lines are written to stdout unchanged. Lines that cannot be parsed
are reported on stderr and skipped. Date bounds are inclusive and must be
given together.

Exit codes:
  0 - Success (including when nothing matched)
  1 - Log file missing or unreadable, or unpaired date bounds
  2 - Invalid arguments`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return config.Levels, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.StartDate, "start-date", "", "Inclusive start date (YYYY-MM-DD), requires --end-date")
	cmd.Flags().StringVar(&opts.EndDate, "end-date", "", "Inclusive end date (YYYY-MM-DD), requires --start-date")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress warnings about malformed lines")
	cmd.Flags().StringVar(&opts.Summary, "summary", "", "Print a run summary to stderr (text|json)")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", "", "Diagnostic message format (txt|json)")

	return cmd
}

func runFilter(cmd *cobra.Command, args []string, opts *FilterOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfgOpts := config.Options{
		LogFile:   args[0],
		StartDate: opts.StartDate,
		EndDate:   opts.EndDate,
		Quiet:     opts.Quiet,
		Summary:   opts.Summary,
		LogFormat: opts.LogFormat,
	}
	if len(args) > 1 {
		cfgOpts.Level = args[1]
	}

	cfg, err := config.Load(ctx, cfgOpts)
	if err != nil {
		return err
	}

	// Read the whole file up front so a bad path fails before any output.
	source := parser.NewFileSource(cfg.LogFile)
	defer source.Close()
	if err := source.Load(); err != nil {
		return err
	}

	logger, err := NewDiagnostics(diag.Options{Quiet: cfg.Quiet, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	defer logger.Close()

	out := bufio.NewWriter(cmd.OutOrStdout())
	started := time.Now()

	stats, err := filter.New(cfg.Criteria(), out, logger).Run(ctx, source)
	if flushErr := out.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("writing output: %w", flushErr)
	}
	if err != nil {
		return err
	}

	if cfg.Summary == config.SummaryNone {
		return nil
	}

	formatter, err := output.NewFormatter(string(cfg.Summary))
	if err != nil {
		return err
	}
	summary := output.NewSummary(stats, cfg.LogFile, cfg.Criteria(), time.Since(started))
	if err := formatter.Format(ctx, summary, cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("formatting summary: %w", err)
	}

	return nil
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &config.UsageError{Msg: err.Error()}
		}
		return nil
	}
}
