package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var (
	logger  = newLogger(os.Stderr)
	verbose bool
)

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "todo",
		Level:           log.DebugLevel,
		ReportTimestamp: false,
	})
}

// DebugEnabled returns true if debug mode is enabled via the TODO_DEBUG
// environment variable or verbose output was requested.
func DebugEnabled() bool {
	return verbose || os.Getenv("TODO_DEBUG") != ""
}

// SetVerbose turns debug output on regardless of TODO_DEBUG.
func SetVerbose(v bool) {
	verbose = v
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	logger = newLogger(w)
}

// Logger returns the shared logger.
func Logger() *log.Logger {
	return logger
}

// Debugf logs a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		logger.Debugf(format, args...)
	}
}

// Debugln logs a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() && len(args) > 0 {
		logger.Debug(args[0], args[1:]...)
	}
}

// Warnf logs a warning unconditionally.
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}
