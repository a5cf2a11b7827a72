package configloader

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/yaklabco/prosechunk/pkg/config"
)

// MigrationResult contains the result of converting a cargo-spellcheck config.
type MigrationResult struct {
	// Config is the converted prosechunk configuration.
	Config *config.Config

	// Warnings contains non-fatal issues encountered during conversion.
	Warnings []string

	// SourcePath is the path to the original spellcheck.toml.
	SourcePath string
}

// spellcheckConfig mirrors the subset of cargo-spellcheck's spellcheck.toml
// that maps onto our configuration. Everything else surfaces through
// MetaData.Undecoded as a warning.
type spellcheckConfig struct {
	DevComments *bool               `toml:"dev_comments"`
	SkipReadme  *bool               `toml:"skip_readme"`
	Hunspell    *spellcheckHunspell `toml:"hunspell"`
}

// spellcheckHunspell mirrors the [hunspell] table.
type spellcheckHunspell struct {
	Lang              string   `toml:"lang"`
	SearchDirs        []string `toml:"search_dirs"`
	ExtraDictionaries []string `toml:"extra_dictionaries"`
}

// ConvertSpellcheckConfig converts a cargo-spellcheck config file to
// prosechunk format. Returns the converted config, any warnings, and an
// error if conversion failed.
func ConvertSpellcheckConfig(path string) (*MigrationResult, error) {
	result := &MigrationResult{
		SourcePath: path,
	}

	if !CanMigrate(path) {
		return nil, fmt.Errorf("cannot convert %q; expected a cargo-spellcheck TOML file", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var raw spellcheckConfig
	meta, err := toml.Decode(string(content), &raw)
	if err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}

	cfg := config.NewConfig()

	if raw.DevComments != nil {
		cfg.DevComments = *raw.DevComments
	}
	if raw.SkipReadme != nil {
		cfg.SkipReadme = *raw.SkipReadme
	}

	if h := raw.Hunspell; h != nil {
		if h.Lang != "" {
			cfg.Lang = h.Lang
		}
		if len(h.ExtraDictionaries) > 0 {
			cfg.ExtraDictionaries = slices.Clone(h.ExtraDictionaries)
		}
		// Only explicit directories go into the converted config. OS default
		// directories are appended whenever the written file is read back, so
		// baking them in here would duplicate them.
		cfg.SearchDirs = config.SearchDirs(slices.Clone(h.SearchDirs))
	} else {
		cfg.SearchDirs = nil
	}

	appendUndecodedWarnings(meta, result)

	result.Config = cfg
	return result, nil
}

// undecodedGroups maps key prefixes in spellcheck.toml to a friendly warning
// for settings we do not carry over. Grouped so a table with many leaves
// produces one warning, not one per leaf.
//
//nolint:gochecknoglobals // Read-only lookup table.
var undecodedGroups = []struct {
	prefix  string
	message string
}{
	{
		prefix:  "languagetool",
		message: "[languagetool] configures a grammar backend; checker settings are not part of this config",
	},
	{
		prefix:  "reflow",
		message: "[reflow] configures comment rewrapping, which is not supported",
	},
	{
		prefix:  "hunspell.quirks",
		message: "[hunspell.quirks] tunes checker-side tokenization and does not carry over",
	},
	{
		prefix:  "hunspell.use_builtin",
		message: "'hunspell.use_builtin' has no equivalent; dictionaries come from search_dirs",
	},
	{
		prefix:  "hunspell.skip_os_lookups",
		message: "'hunspell.skip_os_lookups' has no equivalent; OS dictionary directories are always appended",
	},
}

// appendUndecodedWarnings turns keys the conversion did not map into warnings.
func appendUndecodedWarnings(meta toml.MetaData, result *MigrationResult) {
	seen := make(map[string]bool)

	for _, key := range meta.Undecoded() {
		name := key.String()

		grouped := false
		for _, group := range undecodedGroups {
			if name == group.prefix || strings.HasPrefix(name, group.prefix+".") {
				if !seen[group.prefix] {
					seen[group.prefix] = true
					result.Warnings = append(result.Warnings, group.message)
				}
				grouped = true
				break
			}
		}
		if grouped {
			continue
		}

		if !seen[name] {
			seen[name] = true
			result.Warnings = append(result.Warnings, fmt.Sprintf("unknown key %q; skipping", name))
		}
	}
}

// GenerateMigrationHeader returns a header comment for migrated configs.
func GenerateMigrationHeader(sourcePath string) string {
	return fmt.Sprintf(`# prosechunk configuration
# Migrated from: %s
# See: https://github.com/yaklabco/prosechunk
`, filepath.Base(sourcePath))
}

// CanMigrate returns true if the config file can be migrated.
// Only TOML files (cargo-spellcheck format) are convertible.
func CanMigrate(path string) bool {
	return IsTOMLConfig(path)
}

// GetMigrationWarning returns a warning message for files that cannot be migrated.
func GetMigrationWarning(path string) string {
	if IsYAMLConfig(path) {
		return fmt.Sprintf("config file %q is already in prosechunk YAML format; nothing to migrate", path)
	}
	if !IsTOMLConfig(path) {
		return fmt.Sprintf("config file %q is not a cargo-spellcheck TOML file; "+
			"create a .prosechunk.yml manually or run 'prosechunk config init'", path)
	}
	return ""
}

// DetectConfigFormat determines the format of a config file.
func DetectConfigFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "unknown"
	}
}
