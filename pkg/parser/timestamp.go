package parser

import (
	"errors"
	"fmt"
	"time"
)

// Layouts for the bracketed entry timestamp and for date-range bounds.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

var errTimestampPrecision = errors.New("timestamp must have exactly second precision")

// ParseTimestamp parses an entry timestamp such as "2024-01-15 10:30:00".
// Fractional seconds are rejected; time.Parse would otherwise accept them.
func ParseTimestamp(s string) (time.Time, error) {
	if len(s) != len(TimestampLayout) {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, errTimestampPrecision)
	}
	ts, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	if ts.Nanosecond() != 0 {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, errTimestampPrecision)
	}
	return ts, nil
}

// ParseDate parses a YYYY-MM-DD date. The result is midnight UTC of that day.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return d, nil
}
