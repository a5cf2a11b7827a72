package config

import (
	"fmt"
	"strings"
)

// OutputFormat specifies the output format for extracted chunks.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat converts a flag or config value into an OutputFormat.
func ParseFormat(value string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(value)))
	if !f.IsValid() {
		return "", fmt.Errorf("unknown output format %q (valid: %s, %s)", value, FormatText, FormatJSON)
	}
	return f, nil
}
