package configloader

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yaklabco/prosechunk/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "extra_dictionaries[0]").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., dictionary files with odd names).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// langPattern matches dictionary language identifiers: a lowercase language
// code optionally followed by an underscore and an uppercase country code,
// as in "en", "en_US", or "deu_AT".
//
//nolint:gochecknoglobals // Compiled once, read-only afterwards.
var langPattern = regexp.MustCompile(`^[a-z]{2,3}(_[A-Z]{2})?$`)

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	// Validate lang
	if cfg.Lang != "" && !langPattern.MatchString(cfg.Lang) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "lang",
			Value:   cfg.Lang,
			Message: fmt.Sprintf("invalid language %q; expected ll or ll_CC form such as en_US", cfg.Lang),
		})
	}

	// Validate format
	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json", cfg.Format),
		})
	}

	// Validate jobs
	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	// Validate search directories
	validateSearchDirs(cfg, result)

	// Validate extra dictionaries
	validateExtraDictionaries(cfg, result)

	// Validate ignore patterns
	validateIgnorePatterns(cfg, result)

	return result
}

// validateSearchDirs checks that search directory entries are non-empty.
func validateSearchDirs(cfg *config.Config, result *ValidationResult) {
	for i, dir := range cfg.SearchDirs {
		if strings.TrimSpace(dir) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("search_dirs[%d]", i),
				Value:   dir,
				Message: "search directory must not be empty",
			})
		}
	}
}

// validateExtraDictionaries checks extra dictionary entries. Hunspell
// dictionaries carry a .dic extension with an .aff sidecar next to them, so
// anything else gets a warning rather than an error.
func validateExtraDictionaries(cfg *config.Config, result *ValidationResult) {
	for i, dict := range cfg.ExtraDictionaries {
		if strings.TrimSpace(dict) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("extra_dictionaries[%d]", i),
				Value:   dict,
				Message: "dictionary path must not be empty",
			})
			continue
		}

		if ext := filepath.Ext(dict); ext != ".dic" {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("extra_dictionaries[%d]", i),
				Value:   dict,
				Message: fmt.Sprintf("dictionary %q does not end in .dic; checkers may not find it", dict),
			})
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match returns an error only for malformed patterns
		_, err := filepath.Match(pattern, "")
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	// Add file path to all errors and warnings
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidLang returns true if the language identifier is valid.
func IsValidLang(lang string) bool {
	return langPattern.MatchString(lang)
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return f.IsValid()
}
