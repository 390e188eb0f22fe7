// Package config turns command-line inputs into a validated filter configuration.
package config

import (
	"time"

	"github.com/ccollicutt/logfilter/pkg/filter"
)

// Options are the raw inputs as given on the command line.
type Options struct {
	LogFile   string
	Level     string
	StartDate string
	EndDate   string

	// Quiet suppresses per-line warnings.
	Quiet bool

	// Summary selects a run summary format written to stderr ("", text, json).
	Summary string

	// LogFormat is the diagnostic console format ("", txt, json).
	LogFormat string
}

// Config is the validated form of Options.
type Config struct {
	LogFile   string
	Level     string
	Quiet     bool
	Summary   SummaryFormat
	LogFormat string

	criteria filter.Criteria
}

// Criteria returns the filter criteria built during validation.
func (c *Config) Criteria() filter.Criteria {
	return c.criteria
}

// Range returns the inclusive date range, if one was given.
func (c *Config) Range() (start, end time.Time, ok bool) {
	return c.criteria.Range()
}

// SummaryFormat selects how the run summary is rendered.
type SummaryFormat string

const (
	SummaryNone SummaryFormat = ""
	SummaryText SummaryFormat = "text"
	SummaryJSON SummaryFormat = "json"
)

// UsageError reports invalid command-line input, as opposed to a runtime failure.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}
