package output

import (
	"context"
	"fmt"
	"io"
)

// Formatter renders a run summary in a specific format.
type Formatter interface {
	// Format renders the summary to the given writer.
	Format(ctx context.Context, summary *Summary, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// NewFormatter returns the formatter for name.
func NewFormatter(name string) (Formatter, error) {
	switch name {
	case "text":
		return NewTextFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown summary format %q (use text or json)", name)
	}
}
