package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/prosechunk/internal/configloader"
	"github.com/yaklabco/prosechunk/internal/logging"
	"github.com/yaklabco/prosechunk/pkg/config"
	"github.com/yaklabco/prosechunk/pkg/reporter"
	"github.com/yaklabco/prosechunk/pkg/runner"
)

// ErrExtractionFailed is returned when one or more files could not be processed.
var ErrExtractionFailed = errors.New("extraction failed")

// ErrNoChunks is returned when --fail-on-empty is set and nothing was extracted.
var ErrNoChunks = errors.New("no chunks extracted")

// ErrConfigLoad wraps configuration loading failures so the entry point can
// exit with ExitConfigError.
var ErrConfigLoad = errors.New("failed to load configuration")

type extractFlags struct {
	format         string
	ignore         []string
	mappings       bool
	compact        bool
	devComments    bool
	skipReadme     bool
	followSymlinks bool
}

func newExtractCommand() *cobra.Command {
	var cfg config.Config
	flags := &extractFlags{}

	cmd := &cobra.Command{
		Use:   "extract [paths...]",
		Short: "Extract checkable chunks from source and Markdown files",
		Long:  extractLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, &cfg, flags)
		},
	}

	addExtractFlags(cmd, &cfg, flags)

	return cmd
}

const extractLongDescription = `Extract developer comments and Markdown prose into checkable chunks.

By default, extracts from all .rs, .md and .markdown files in the current
directory and subdirectories. Specify paths to extract from specific files
or directories.

Each chunk is printed together with its source mapping, the table that
translates positions inside the chunk back to lines and columns in the
original file.

Examples:
  prosechunk extract                   # Extract from current directory
  prosechunk extract src/              # Extract from src directory
  prosechunk extract src/lib.rs        # Extract from a single file
  prosechunk extract --plain           # Erase Markdown syntax from chunks
  prosechunk extract --mappings        # Show chunk-to-source mappings
  prosechunk extract --format json     # Output as JSON for tooling
  prosechunk extract --fail-on-empty   # Exit non-zero when nothing is found`

func runExtract(cmd *cobra.Command, args []string, cfg *config.Config, flags *extractFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	// Map string flags to typed config values.
	// Only set values that were explicitly provided via CLI flags.
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	cfg.Ignore = flags.ignore

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	// Get working directory for config discovery.
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	// Build load options.
	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(ErrConfigLoad, err)
	}

	finalCfg := loadResult.Config

	// Boolean flags can carry false, which the precedence merge cannot see.
	// Apply them only when the user actually set them.
	if cmd.Flags().Changed("dev-comments") {
		finalCfg.DevComments = flags.devComments
	}
	if cmd.Flags().Changed("skip-readme") {
		finalCfg.SkipReadme = flags.skipReadme
	}

	// Log warnings from config loading.
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	// Log loaded configuration files.
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldLanguage, finalCfg.Lang,
		"dev_comments", finalCfg.DevComments,
		logging.FieldFormat, finalCfg.Format,
		logging.FieldJobs, finalCfg.Jobs,
	)

	// Build runner options.
	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     runner.DefaultExtensions(),
		ExcludeGlobs:   finalCfg.Ignore,
		FollowSymlinks: flags.followSymlinks,
		DevComments:    finalCfg.DevComments,
		SkipReadme:     finalCfg.SkipReadme,
		Jobs:           finalCfg.Jobs,
	}

	logger.Debug("starting extraction",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	// Run extraction.
	result, err := runner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("extraction run failed"), err)
	}

	logger.Debug("extraction finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesSkipped, result.Stats.FilesSkipped,
		logging.FieldChunksTotal, result.Stats.ChunksTotal,
	)

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}

	// Parse output format.
	format, err := config.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	// Create reporter.
	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		ErrorWriter:  cmd.ErrOrStderr(),
		Format:       format,
		Color:        colorMode,
		Plain:        finalCfg.Plain,
		ShowMappings: flags.mappings,
		ShowSummary:  true,
		Compact:      flags.compact,
		WorkingDir:   workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	// Report results.
	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	// Determine exit code based on result.
	switch ExitCodeFromResult(result, finalCfg.FailOnEmpty) {
	case ExitExtractionFailed:
		return ErrExtractionFailed
	case ExitNoChunks:
		return ErrNoChunks
	}

	return nil
}

func addExtractFlags(cmd *cobra.Command, cfg *config.Config, flags *extractFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&cfg.Plain, "plain", false, "erase Markdown syntax from chunk content")
	cmd.Flags().BoolVar(&flags.mappings, "mappings", false, "show chunk-to-source mapping entries")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringVar(&cfg.Lang, "lang", "", "dictionary language for downstream checkers")
	cmd.Flags().BoolVar(&flags.devComments, "dev-comments", true, "extract developer comments from source files")
	cmd.Flags().BoolVar(&flags.skipReadme, "skip-readme", false, "leave README files out of discovery")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow directory symlinks during discovery")
	cmd.Flags().BoolVar(&cfg.FailOnEmpty, "fail-on-empty", false, "exit non-zero when no chunks were extracted")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}
