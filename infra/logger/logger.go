package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	corelogger "github.com/kilianp07/evcs/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger = corelogger.NopLogger

// New returns a Logger for the given component writing to stderr at info
// level. The format follows the APP_ENV variable.
func New(component string) Logger {
	return NewZerologLogger(component, os.Stderr, "info")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenOutput resolves a logging output setting: "stderr", "stdout",
// "discard" or a file path opened in append mode. The returned closer must
// be closed when logging is done.
func OpenOutput(spec string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(spec)) {
	case "", "stderr":
		return os.Stderr, nopCloser{}, nil
	case "stdout":
		return os.Stdout, nopCloser{}, nil
	case "discard", "none":
		return io.Discard, nopCloser{}, nil
	}
	f, err := os.OpenFile(spec, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log output: %w", err)
	}
	return f, f, nil
}
