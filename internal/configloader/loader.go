// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, validation, and cargo-spellcheck migration.
package configloader

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/prosechunk/pkg/config"
	"github.com/yaklabco/prosechunk/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// IgnoreSpellcheck skips cargo-spellcheck config detection and migration.
	IgnoreSpellcheck bool

	// NonInteractive disables interactive prompts (e.g., in CI).
	NonInteractive bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string

	// MigrationPerformed is true if a spellcheck.toml was converted.
	MigrationPerformed bool
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (PROSECHUNK_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.prosechunk.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/prosechunk/config.yaml)
//  6. System config (/etc/prosechunk/config.yaml)
//  7. Defaults
//
// File layers are decoded onto the accumulated config key by key, so a later
// file only overrides the keys it actually sets. A file writing
// `dev_comments: false` therefore takes effect even though false is the zero
// value.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{
		Paths: &ConfigPaths{},
	}

	// Resolve working directory
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	// Start with defaults
	cfg := config.NewConfig()

	// Discover config paths
	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	result.Paths = paths

	// Handle explicit config path
	if opts.ExplicitPath != "" {
		result.Paths.Explicit = opts.ExplicitPath
	}

	// Check for cargo-spellcheck config migration
	if !opts.IgnoreSpellcheck {
		migrated, err := handleSpellcheckMigration(ctx, paths, result, opts, workDir)
		if err != nil {
			return nil, err
		}
		if migrated {
			// Re-discover paths after migration
			paths, err = DiscoverPaths(ctx, workDir)
			if err != nil {
				return nil, fmt.Errorf("discover paths after migration: %w", err)
			}
			result.Paths = paths
		}
	}

	// Load in order (lowest to highest precedence)

	// 1. System config
	if !opts.IgnoreSystemConfig && paths.System != "" {
		if err := decodeConfigFile(paths.System, cfg); err != nil {
			return nil, fmt.Errorf("load system config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.System)
	}

	// 2. User config
	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := decodeConfigFile(paths.User, cfg); err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.User)
	}

	// 3. Project config
	if !opts.IgnoreProjectConfig && paths.Project != "" {
		if err := decodeConfigFile(paths.Project, cfg); err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.Project)
	}

	// 4. Explicit config (--config flag)
	if opts.ExplicitPath != "" {
		if err := decodeConfigFile(opts.ExplicitPath, cfg); err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	}

	// 5. Environment variables
	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	// 6. CLI config (highest precedence)
	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	// Validate final configuration
	validation := Validate(cfg)
	if !validation.Valid() {
		// Return first error
		return nil, &validation.Errors[0]
	}

	// Add validation warnings to result
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	result.Config = cfg
	return result, nil
}

// decodeConfigFile decodes a YAML file onto an existing configuration.
func decodeConfigFile(path string, cfg *config.Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if err := config.DecodeYAML(content, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// handleSpellcheckMigration checks for a cargo-spellcheck config and offers
// migration.
func handleSpellcheckMigration(
	ctx context.Context,
	paths *ConfigPaths,
	result *LoadResult,
	opts LoadOptions,
	workDir string,
) (bool, error) {
	// If we already have a prosechunk config, ignore the spellcheck config
	if paths.Project != "" {
		if paths.Spellcheck != "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("both .prosechunk.yml and %s exist; using .prosechunk.yml", paths.Spellcheck))
		}
		return false, nil
	}

	// No spellcheck config found
	if paths.Spellcheck == "" {
		return false, nil
	}

	// Check if we can migrate
	if !CanMigrate(paths.Spellcheck) {
		result.Warnings = append(result.Warnings, GetMigrationWarning(paths.Spellcheck))
		return false, nil
	}

	// In non-interactive mode, don't prompt
	if opts.NonInteractive || !isInteractive() {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("found %s but no .prosechunk.yml; run 'prosechunk config migrate' to convert", paths.Spellcheck))
		return false, nil
	}

	// Prompt user for migration
	shouldMigrate, err := promptMigration(paths.Spellcheck)
	if err != nil {
		return false, err
	}

	if !shouldMigrate {
		return false, nil
	}

	// Perform migration
	migrationResult, err := ConvertSpellcheckConfig(paths.Spellcheck)
	if err != nil {
		return false, fmt.Errorf("convert spellcheck config: %w", err)
	}

	// Add migration warnings
	result.Warnings = append(result.Warnings, migrationResult.Warnings...)

	// Write the new config
	outputPath := filepath.Join(workDir, ".prosechunk.yml")
	if err := writeConfig(ctx, migrationResult.Config, outputPath, paths.Spellcheck); err != nil {
		return false, fmt.Errorf("write migrated config: %w", err)
	}

	result.MigrationPerformed = true
	result.Warnings = append(result.Warnings,
		fmt.Sprintf("migrated %s to %s; you can now delete the old file", paths.Spellcheck, outputPath))

	return true, nil
}

// promptMigration asks the user if they want to migrate.
func promptMigration(spellcheckPath string) (bool, error) {
	// Write prompt to stdout
	if _, err := os.Stdout.WriteString("Found " + spellcheckPath + " but no .prosechunk.yml\n"); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}
	if _, err := os.Stdout.WriteString("Convert to prosechunk format? [Y/n] "); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "" || response == "y" || response == "yes", nil
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// writeConfig writes a configuration to a YAML file with a migration header.
func writeConfig(ctx context.Context, cfg *config.Config, path, sourcePath string) error {
	content, err := cfg.ToYAMLWithHeader(GenerateMigrationHeader(sourcePath))
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, path, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
