package filter

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ccollicutt/logfilter/pkg/parser"
)

// Diagnostics receives warnings about lines that were skipped.
// Arguments are key/value pairs with a leading "msg" key.
type Diagnostics interface {
	Warn(args ...any)
}

// Stats counts what happened to each line of a run.
type Stats struct {
	Lines     int `json:"lines"`
	Matched   int `json:"matched"`
	Excluded  int `json:"excluded"`
	Malformed int `json:"malformed"`
}

// Filter writes the lines of a source that pass its Criteria.
type Filter struct {
	criteria Criteria
	out      io.Writer
	diag     Diagnostics
}

// New creates a Filter that writes matching lines to out and reports
// malformed lines to diag.
func New(criteria Criteria, out io.Writer, diag Diagnostics) *Filter {
	return &Filter{
		criteria: criteria,
		out:      out,
		diag:     diag,
	}
}

// Run reads every line from source, in order. Matching lines are written
// verbatim followed by a newline. Malformed lines are reported and skipped;
// they never stop the run. Only source, write and context errors do.
func (f *Filter) Run(ctx context.Context, source parser.LineSource) (Stats, error) {
	var stats Stats

	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}
		stats.Lines++

		entry, err := parser.ParseLine(line.Content, line.LineNum)
		if err != nil {
			stats.Malformed++
			f.warn(err, line)
			continue
		}

		if !f.criteria.Match(entry) {
			stats.Excluded++
			continue
		}

		if _, err := fmt.Fprintln(f.out, entry.Raw); err != nil {
			return stats, fmt.Errorf("writing output: %w", err)
		}
		stats.Matched++
	}
}

func (f *Filter) warn(err error, line *parser.Line) {
	var malformed *parser.MalformedLineError
	if !errors.As(err, &malformed) {
		f.diag.Warn("msg", "Failed to parse line", "line", line.Content, "line_num", line.LineNum, "error", err)
		return
	}

	switch malformed.Reason {
	case parser.ReasonMissingMarkers:
		f.diag.Warn("msg", "Skipping malformed line", "line", line.Content, "line_num", line.LineNum)
	case parser.ReasonInvalidTimestamp:
		f.diag.Warn("msg", "Skipping line with invalid date format",
			"line", line.Content, "line_num", line.LineNum, "error", malformed.Err)
	default:
		f.diag.Warn("msg", "Failed to parse line",
			"line", line.Content, "line_num", line.LineNum, "error", malformed.Err)
	}
}
