// Package filter selects well-formed log entries by level and date range.
package filter

import (
	"errors"
	"time"

	"github.com/ccollicutt/logfilter/pkg/parser"
)

// ErrUnpairedDates is returned when only one end of a date range is given.
var ErrUnpairedDates = errors.New("both start date and end date must be provided together")

// Criteria holds the active filters. The zero value matches every entry.
type Criteria struct {
	level string
	start *time.Time
	end   *time.Time
}

// NewCriteria builds Criteria from optional inputs. An empty level disables
// level filtering. start and end must both be nil or both be set.
func NewCriteria(level string, start, end *time.Time) (Criteria, error) {
	if (start == nil) != (end == nil) {
		return Criteria{}, ErrUnpairedDates
	}

	c := Criteria{level: level}
	if start != nil {
		s, e := *start, *end
		c.start, c.end = &s, &e
	}
	return c, nil
}

// Level returns the level filter, or "" when unset.
func (c Criteria) Level() string { return c.level }

// Range returns the inclusive date bounds and whether a range is set.
func (c Criteria) Range() (start, end time.Time, ok bool) {
	if c.start == nil {
		return time.Time{}, time.Time{}, false
	}
	return *c.start, *c.end, true
}

// Active reports whether any filter is set.
func (c Criteria) Active() bool {
	return c.level != "" || c.start != nil
}

// Match reports whether entry passes every active filter.
// Level comparison is exact and case-sensitive; both bounds are inclusive.
func (c Criteria) Match(entry *parser.LogEntry) bool {
	if c.level != "" && entry.Level != c.level {
		return false
	}
	if c.start != nil && entry.Timestamp.Before(*c.start) {
		return false
	}
	if c.end != nil && entry.Timestamp.After(*c.end) {
		return false
	}
	return true
}
