// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// defaultLogger is the package-level default logger instance.
//
//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

func getDefaultLogger() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// New creates a new logger with the specified level.
// Valid levels: "trace", "debug", "info", "warn", "error". The backend has
// no level below debug, so trace folds into debug.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})

	setLoggerLevel(logger, level)

	return logger
}

func setLoggerLevel(logger *log.Logger, level string) {
	switch strings.ToLower(level) {
	case "trace", "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// NewInteractive creates a logger for user-facing command output on the
// given writer, typically the command's stdout or stderr stream.
func NewInteractive(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(log.InfoLevel)
	return logger
}

// Trace logs below-debug detail on the default logger. The backend has no
// level under debug, so trace messages land there.
func Trace(msg interface{}, keyvals ...interface{}) {
	getDefaultLogger().Debug(msg, keyvals...)
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	return getDefaultLogger()
}

// SetDefault sets the package-level default logger.
func SetDefault(logger *log.Logger) {
	defaultLogger = logger
}

// SetLevel updates the log level of the default logger.
func SetLevel(level string) {
	setLoggerLevel(getDefaultLogger(), level)
}
