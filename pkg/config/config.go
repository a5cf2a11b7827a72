// Package config defines core configuration types for prosechunk.
// These types are pure data structures; file discovery and loading live in
// internal/configloader.
package config

// Config is the root configuration structure for prosechunk.
type Config struct {
	// Lang is the dictionary language downstream checkers should use,
	// in "ll" or "ll_CC" form.
	Lang string `yaml:"lang"`

	// SearchDirs lists directories scanned for dictionary files. Explicit
	// entries keep their order; OS defaults are appended on unmarshal.
	SearchDirs SearchDirs `yaml:"search_dirs"`

	// ExtraDictionaries names additional dictionary files, resolved against
	// SearchDirs when relative.
	ExtraDictionaries []string `yaml:"extra_dictionaries"`

	// DevComments extracts developer comments from source files. When
	// false, only CommonMark documents produce chunks.
	DevComments bool `yaml:"dev_comments"`

	// SkipReadme leaves README files out of discovery.
	SkipReadme bool `yaml:"skip_readme"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Plain renders the Markdown-erased overlay instead of raw chunk
	// content.
	Plain bool `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// FailOnEmpty exits non-zero when no chunks were extracted.
	FailOnEmpty bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Lang:        "en_US",
		SearchDirs:  DefaultSearchDirs(),
		DevComments: true,
		SkipReadme:  false,
		Format:      FormatText,
		Jobs:        0, // 0 means use GOMAXPROCS
	}
}
