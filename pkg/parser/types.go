// Package parser reads log files and splits each line into timestamp, level and message.
package parser

import "time"

// LogEntry is a single well-formed log line with its extracted fields.
type LogEntry struct {
	// Raw is the trimmed line exactly as it appeared in the file.
	Raw string

	// Timestamp is parsed from the leading bracketed field.
	Timestamp time.Time

	// Level is the severity token, taken verbatim.
	Level string

	// Message is the text following "LEVEL: ".
	Message string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}

// Line is a trimmed, non-blank line before parsing.
type Line struct {
	// Content is the trimmed line text.
	Content string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}
