package cli

import (
	"errors"

	"github.com/yaklabco/prosechunk/pkg/runner"
)

// ErrInvalidUsage marks flag and argument mistakes so the entry point can
// exit with ExitInvalidUsage instead of a generic failure.
var ErrInvalidUsage = errors.New("invalid usage")

// Exit codes for prosechunk.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitExtractionFailed indicates one or more files could not be processed.
	ExitExtractionFailed = 1

	// ExitNoChunks indicates no chunks were extracted (with --fail-on-empty).
	ExitNoChunks = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and fail-on-empty mode.
func ExitCodeFromResult(result *runner.Result, failOnEmpty bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasErrors() {
		return ExitExtractionFailed
	}

	if failOnEmpty && !result.HasChunks() {
		return ExitNoChunks
	}

	return ExitSuccess
}
