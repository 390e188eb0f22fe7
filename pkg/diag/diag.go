// Package diag provides the diagnostic sink used for warnings and fatal errors.
package diag

import (
	"fmt"
	"time"

	"github.com/lixenwraith/log"
)

// shutdownTimeout bounds how long Close waits for buffered messages to flush.
const shutdownTimeout = 2 * time.Second

// Options controls the diagnostic logger.
type Options struct {
	// Quiet raises the level to error, suppressing warnings.
	Quiet bool

	// Format is the console format of the logger, "txt" or "json".
	// Empty selects the logger default.
	Format string
}

// Logger writes leveled diagnostics to standard error.
type Logger struct {
	logger *log.Logger
}

// New creates and starts a Logger.
func New(opts Options) (*Logger, error) {
	level := log.LevelWarn
	if opts.Quiet {
		level = log.LevelError
	}

	configArgs := []string{
		"disable_file=true",
		"enable_stdout=true",
		"stdout_target=stderr",
		fmt.Sprintf("level=%d", level),
	}
	if opts.Format != "" {
		configArgs = append(configArgs, fmt.Sprintf("format=%s", opts.Format))
	}

	logger := log.NewLogger()
	if err := logger.InitWithDefaults(configArgs...); err != nil {
		return nil, fmt.Errorf("initializing diagnostics: %w", err)
	}

	return &Logger{logger: logger}, nil
}

// Warn logs key/value pairs at warning level.
func (l *Logger) Warn(args ...any) {
	l.logger.Warn(args...)
}

// Close flushes pending messages and stops the logger.
func (l *Logger) Close() error {
	if err := l.logger.Shutdown(shutdownTimeout); err != nil {
		return fmt.Errorf("flushing diagnostics: %w", err)
	}
	return nil
}
