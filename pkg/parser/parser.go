package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// FileSource implements LineSource over a file read fully into memory.
type FileSource struct {
	path   string
	reader io.Reader

	lines  []Line
	index  int
	loaded bool
}

// NewFileSource creates a LineSource for the log file at path.
// The file is not touched until Load or the first call to Next.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// NewReaderSource creates a LineSource that reads from r.
// name is used in error messages only.
func NewReaderSource(r io.Reader, name string) *FileSource {
	return &FileSource{path: name, reader: r}
}

// Path returns the file path (or reader name) of the source.
func (s *FileSource) Path() string {
	return s.path
}

// Load reads the whole input and splits it into lines.
// Missing, unreadable, and directory paths are reported here,
// before any line is handed out. Calling Load more than once is a no-op.
func (s *FileSource) Load() error {
	if s.loaded {
		return nil
	}

	var data []byte
	if s.reader != nil {
		b, err := io.ReadAll(s.reader)
		if err != nil {
			return fmt.Errorf("reading %s: %w", s.path, err)
		}
		data = b
	} else {
		info, err := os.Stat(s.path)
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", s.path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("opening log file %s: is a directory", s.path)
		}

		b, err := os.ReadFile(s.path) // #nosec G304 -- user-provided paths are expected
		if err != nil {
			return fmt.Errorf("reading %s: %w", s.path, err)
		}
		data = b
	}

	s.lines = splitLines(data)
	s.loaded = true
	return nil
}

// Next returns the next non-blank line, trimmed of surrounding whitespace.
// Returns io.EOF when all lines have been returned.
func (s *FileSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	if s.index >= len(s.lines) {
		return nil, io.EOF
	}

	line := s.lines[s.index]
	s.index++
	return &line, nil
}

// Close releases the buffered lines.
func (s *FileSource) Close() error {
	s.lines = nil
	return nil
}

// splitLines splits data on newlines with no limit on line length.
func splitLines(data []byte) []Line {
	var lines []Line
	for i, raw := range bytes.Split(data, []byte("\n")) {
		content := strings.TrimSpace(string(raw))
		if content == "" {
			continue
		}
		lines = append(lines, Line{Content: content, LineNum: i + 1})
	}
	return lines
}
