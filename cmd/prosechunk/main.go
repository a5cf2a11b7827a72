// Package main is the entry point for the prosechunk CLI.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/yaklabco/prosechunk/internal/cli"
	"github.com/yaklabco/prosechunk/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Build and execute the root command.
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}

	// ErrExtractionFailed and ErrNoChunks are exit code signals; the
	// reporter already showed the underlying details.
	if !errors.Is(err, cli.ErrExtractionFailed) && !errors.Is(err, cli.ErrNoChunks) {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
	}

	return exitCode(err)
}

// exitCode maps an error from command execution to a sysexits-style code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, cli.ErrExtractionFailed):
		return cli.ExitExtractionFailed
	case errors.Is(err, cli.ErrNoChunks):
		return cli.ExitNoChunks
	case errors.Is(err, cli.ErrInvalidUsage):
		return cli.ExitInvalidUsage
	case errors.Is(err, cli.ErrConfigLoad):
		return cli.ExitConfigError
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return cli.ExitIOError
	}

	return cli.ExitInternalError
}
