package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Reason classifies why a line could not be parsed.
type Reason string

const (
	// ReasonMissingMarkers means the line lacks "]" or ": ".
	ReasonMissingMarkers Reason = "missing_markers"
	// ReasonInvalidTimestamp means the bracketed field is missing its "] "
	// terminator or is not a valid timestamp.
	ReasonInvalidTimestamp Reason = "invalid_timestamp"
	// ReasonUnexpected covers any other structural failure.
	ReasonUnexpected Reason = "unexpected"
)

var (
	errNoTimestampSeparator = errors.New(`no "] " separator after timestamp`)
	errNoLevelSeparator     = errors.New(`no ":" after level`)
)

// MalformedLineError reports a line that could not be parsed into a LogEntry.
type MalformedLineError struct {
	Reason  Reason
	Line    string
	LineNum int
	Err     error
}

func (e *MalformedLineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.LineNum, e.Reason, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.LineNum, e.Reason)
}

func (e *MalformedLineError) Unwrap() error {
	return e.Err
}

// ParseLine splits a trimmed line of the form
//
//	[YYYY-MM-DD HH:MM:SS] LEVEL: message
//
// into a LogEntry. Failures are returned as *MalformedLineError.
//
// The message starts two characters after the first colon, so "ERROR:boom"
// yields the message "oom".
func ParseLine(content string, lineNum int) (*LogEntry, error) {
	malformed := func(reason Reason, err error) error {
		return &MalformedLineError{Reason: reason, Line: content, LineNum: lineNum, Err: err}
	}

	if !strings.Contains(content, "]") || !strings.Contains(content, ": ") {
		return nil, malformed(ReasonMissingMarkers, nil)
	}

	stamp, rest, ok := strings.Cut(content, "] ")
	if !ok {
		return nil, malformed(ReasonInvalidTimestamp, errNoTimestampSeparator)
	}

	// The first byte is the opening bracket and is dropped unchecked.
	if stamp != "" {
		stamp = stamp[1:]
	}
	ts, err := ParseTimestamp(stamp)
	if err != nil {
		return nil, malformed(ReasonInvalidTimestamp, err)
	}

	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return nil, malformed(ReasonUnexpected, errNoLevelSeparator)
	}

	message := ""
	if colon+2 <= len(rest) {
		message = rest[colon+2:]
	}

	return &LogEntry{
		Raw:       content,
		Timestamp: ts,
		Level:     rest[:colon],
		Message:   message,
		LineNum:   lineNum,
	}, nil
}
