// Package cli provides the Cobra command structure for prosechunk.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/prosechunk/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root prosechunk command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "prosechunk",
		Short: "Extract checkable prose from source comments and Markdown",
		Long: `prosechunk digs the prose out of source trees so external checkers can
work on clean text. Developer comments come out of source files, CommonMark
documents come in whole, and every extracted chunk carries a source map
back to the exact lines and columns it came from.

A span reported against a chunk translates back to source positions, so a
spell checker or grammar checker never needs to understand the language
the prose was embedded in.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flag and argument mistakes share one sentinel so the entry point can
	// map them to a usage exit code.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %s", ErrInvalidUsage, err)
	})
	rootCmd.Args = func(_ *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("%w: unknown command %q", ErrInvalidUsage, args[0])
		}
		return nil
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := newHelpFormatter(color, os.Stdout)
	helpFormatter.applyTo(rootCmd)

	return rootCmd
}
