package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/prosechunk/internal/configloader"
	"github.com/yaklabco/prosechunk/internal/logging"
	"github.com/yaklabco/prosechunk/pkg/config"
	"github.com/yaklabco/prosechunk/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage prosechunk configuration",
		Long: `Create, inspect, and migrate prosechunk configuration files.

Configuration is resolved from (highest precedence first) CLI flags,
PROSECHUNK_* environment variables, an explicit --config file, the project
.prosechunk.yml found by searching upward, the user config under
$XDG_CONFIG_HOME/prosechunk/, and the system config under /etc/prosechunk/.`,
	}

	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigMigrateCommand())

	return cmd
}

// initFlags holds the flags for the config init command.
type initFlags struct {
	force  bool
	output string
}

func newConfigInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new prosechunk configuration file",
		Long: `Create a new .prosechunk.yml configuration file in the current directory
with sensible defaults. The file can be customized to change the dictionary
language, add search directories, and exclude files from extraction.

Examples:
  prosechunk config init                    Create .prosechunk.yml
  prosechunk config init --output conf.yml  Write to a custom file path
  prosechunk config init --force            Overwrite an existing file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .prosechunk.yml)")

	return cmd
}

func runConfigInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive(cmd.ErrOrStderr())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Determine output path
	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".prosechunk.yml"
	}

	// Make path absolute
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	// Write the starter template
	if err := fsutil.WriteAtomic(ctx, absPath, config.StarterTemplate(), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")

	return nil
}

// migrateFlags holds the flags for the config migrate command.
type migrateFlags struct {
	force  bool
	output string
	input  string
}

func newConfigMigrateCommand() *cobra.Command {
	flags := &migrateFlags{}

	cmd := &cobra.Command{
		Use:   "migrate [input]",
		Short: "Convert a cargo-spellcheck configuration to prosechunk format",
		Long: `Convert an existing cargo-spellcheck configuration file (spellcheck.toml)
to prosechunk format (.prosechunk.yml).

If no input file is specified, the command searches the current directory
for .config/spellcheck.toml, .spellcheck.toml, and spellcheck.toml.

Checker-side settings such as [languagetool], [hunspell.quirks], and
[reflow] have no equivalent here and produce warnings instead.

Examples:
  prosechunk config migrate                   Auto-detect and convert
  prosechunk config migrate spellcheck.toml   Convert specific file
  prosechunk config migrate -o custom.yml     Write to custom output path`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.input = args[0]
			}
			return runConfigMigrate(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing output file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", ".prosechunk.yml", "Output file path")

	return cmd
}

func runConfigMigrate(cmd *cobra.Command, flags *migrateFlags) error {
	logger := logging.NewInteractive(cmd.ErrOrStderr())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Find input file
	inputPath := flags.input
	if inputPath == "" {
		// Auto-detect spellcheck config
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}

		inputPath = configloader.FindSpellcheckConfig(cwd)
		if inputPath == "" {
			return errors.New("no cargo-spellcheck configuration file found in current directory")
		}

		logger.Info("found spellcheck config", logging.FieldPath, inputPath)
	}

	// Check input exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", inputPath)
	}

	// Check if we can migrate
	if !configloader.CanMigrate(inputPath) {
		return fmt.Errorf("migration not supported: %s", configloader.GetMigrationWarning(inputPath))
	}

	// Make output path absolute
	absOutput, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	// Check output exists
	if _, err := os.Stat(absOutput); err == nil {
		if !flags.force {
			return fmt.Errorf("output file %q already exists; use --force to overwrite", flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	// Perform migration
	result, err := configloader.ConvertSpellcheckConfig(inputPath)
	if err != nil {
		return fmt.Errorf("convert configuration: %w", err)
	}

	// Report warnings
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	// Serialize to YAML
	header := configloader.GenerateMigrationHeader(inputPath)
	content, err := result.Config.ToYAMLWithHeader(header)
	if err != nil {
		return fmt.Errorf("serialize configuration: %w", err)
	}

	// Write output
	if err := fsutil.WriteAtomic(ctx, absOutput, content, configFilePermissions); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	logger.Info("migration complete", logging.FieldInput, inputPath, logging.FieldOutput, flags.output)

	if len(result.Warnings) > 0 {
		logger.Warn("review warnings above and verify the migrated configuration")
	}

	logger.Info("you can now delete the old spellcheck configuration file")

	return nil
}
