package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/prosechunk/pkg/config"
)

// envVarPrefix is the prefix for all prosechunk environment variables.
const envVarPrefix = "PROSECHUNK_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"LANG":               {field: "lang", typ: envTypeString},
	"FORMAT":             {field: "format", typ: envTypeString},
	"JOBS":               {field: "jobs", typ: envTypeInt},
	"PLAIN":              {field: "plain", typ: envTypeBool},
	"DEV_COMMENTS":       {field: "dev_comments", typ: envTypeBool},
	"SKIP_README":        {field: "skip_readme", typ: envTypeBool},
	"FAIL_ON_EMPTY":      {field: "fail_on_empty", typ: envTypeBool},
	"IGNORE":             {field: "ignore", typ: envTypeSlice},
	"SEARCH_DIRS":        {field: "search_dirs", typ: envTypeSlice},
	"EXTRA_DICTIONARIES": {field: "extra_dictionaries", typ: envTypeSlice},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with PROSECHUNK_ (e.g., PROSECHUNK_LANG).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "lang":
		cfg.Lang = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "plain":
		cfg.Plain = value
	case "dev_comments":
		cfg.DevComments = value
	case "skip_readme":
		cfg.SkipReadme = value
	case "fail_on_empty":
		cfg.FailOnEmpty = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "search_dirs":
		// Explicit entries replace the configured list; OS defaults are
		// appended the same way the YAML path does it.
		cfg.SearchDirs = config.NewSearchDirs(value)
	case "extra_dictionaries":
		cfg.ExtraDictionaries = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"PROSECHUNK_LANG":               "Dictionary language in ll or ll_CC form (e.g. en_US)",
		"PROSECHUNK_FORMAT":             "Output format: text or json",
		"PROSECHUNK_JOBS":               "Number of parallel workers (0 = auto)",
		"PROSECHUNK_PLAIN":              "Render the Markdown-erased overlay: true or false",
		"PROSECHUNK_DEV_COMMENTS":       "Extract developer comments from source files: true or false",
		"PROSECHUNK_SKIP_README":        "Skip README files during discovery: true or false",
		"PROSECHUNK_FAIL_ON_EMPTY":      "Exit non-zero when no chunks were extracted: true or false",
		"PROSECHUNK_IGNORE":             "Comma-separated list of ignore patterns",
		"PROSECHUNK_SEARCH_DIRS":        "Comma-separated list of dictionary search directories",
		"PROSECHUNK_EXTRA_DICTIONARIES": "Comma-separated list of extra dictionary files",
	}
}
