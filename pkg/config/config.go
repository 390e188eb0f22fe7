package config

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ccollicutt/logfilter/pkg/filter"
	"github.com/ccollicutt/logfilter/pkg/parser"
)

// Load applies environment overrides to opts and validates the result.
func Load(_ context.Context, opts Options) (*Config, error) {
	opts.applyEnvironmentOverrides()
	return Validate(opts)
}

// Validate checks opts and builds a Config. Malformed input yields a
// *UsageError; a date given without its partner yields filter.ErrUnpairedDates.
func Validate(opts Options) (*Config, error) {
	if opts.LogFile == "" {
		return nil, &UsageError{Msg: "log file is required"}
	}

	if opts.Level != "" && !slices.Contains(Levels, opts.Level) {
		return nil, &UsageError{Msg: fmt.Sprintf("invalid level %q (must be %s)",
			opts.Level, strings.Join(Levels, ", "))}
	}

	start, err := parseDateOption("start-date", opts.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDateOption("end-date", opts.EndDate)
	if err != nil {
		return nil, err
	}

	criteria, err := filter.NewCriteria(opts.Level, start, end)
	if err != nil {
		return nil, err
	}

	summary := SummaryFormat(opts.Summary)
	switch summary {
	case SummaryNone, SummaryText, SummaryJSON:
	default:
		return nil, &UsageError{Msg: fmt.Sprintf("unknown summary format %q (use text or json)", opts.Summary)}
	}

	switch opts.LogFormat {
	case "", "txt", "json":
	default:
		return nil, &UsageError{Msg: fmt.Sprintf("unknown log format %q (use txt or json)", opts.LogFormat)}
	}

	return &Config{
		LogFile:   opts.LogFile,
		Level:     opts.Level,
		Quiet:     opts.Quiet,
		Summary:   summary,
		LogFormat: opts.LogFormat,
		criteria:  criteria,
	}, nil
}

// IsUsageError reports whether err is caused by invalid input.
func IsUsageError(err error) bool {
	var usage *UsageError
	return errors.As(err, &usage)
}

func parseDateOption(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := parser.ParseDate(value)
	if err != nil {
		return nil, &UsageError{Msg: fmt.Sprintf("incorrect %s format %q, expected YYYY-MM-DD", name, value)}
	}
	return &d, nil
}
