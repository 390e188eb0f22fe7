// Package output renders run summaries for the diagnostic stream.
package output

import (
	"time"

	"github.com/ccollicutt/logfilter/pkg/filter"
)

// Summary describes a completed filter run.
type Summary struct {
	// Counts holds per-line outcomes.
	Counts filter.Stats `json:"counts"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Metadata provides context about the run.
type Metadata struct {
	// LogFile is the path of the filtered file.
	LogFile string `json:"log_file"`

	// Level is the level filter, if any.
	Level string `json:"level,omitempty"`

	// TimeRange is the date filter that was applied, if any.
	TimeRange *TimeRange `json:"time_range,omitempty"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration"`
}

// TimeRange is an inclusive date window.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewSummary creates a Summary from run statistics.
func NewSummary(stats filter.Stats, logFile string, criteria filter.Criteria, duration time.Duration) *Summary {
	s := &Summary{
		Counts: stats,
		Metadata: Metadata{
			LogFile:  logFile,
			Level:    criteria.Level(),
			Duration: duration,
		},
	}

	if start, end, ok := criteria.Range(); ok {
		s.Metadata.TimeRange = &TimeRange{Start: start, End: end}
	}

	return s
}
