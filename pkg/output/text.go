package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats summaries as human-readable text.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the summary as text.
func (f *TextFormatter) Format(ctx context.Context, summary *Summary, w io.Writer) error {
	md := summary.Metadata
	c := summary.Counts

	if _, err := fmt.Fprintf(w, "--- %s ---\n", md.LogFile); err != nil {
		return err
	}

	level := md.Level
	if level == "" {
		level = "any"
	}
	fmt.Fprintf(w, "Level:     %s\n", level)

	if md.TimeRange != nil {
		fmt.Fprintf(w, "Range:     %s to %s\n",
			md.TimeRange.Start.Format("2006-01-02"),
			md.TimeRange.End.Format("2006-01-02"))
	}

	fmt.Fprintf(w, "Summary: %d lines, %d matched, %d excluded, %d malformed\n",
		c.Lines, c.Matched, c.Excluded, c.Malformed)
	_, err := fmt.Fprintf(w, "Duration: %s\n", md.Duration.Round(1e6))
	return err
}
