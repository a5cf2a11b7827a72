// Package reporter formats extraction results for terminals and tooling.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/prosechunk/pkg/config"
	"github.com/yaklabco/prosechunk/pkg/runner"
)

// Compile-time interface checks.
var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
)

// Reporter formats and writes extraction results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of chunks reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	// Default writer to stdout if not specified
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	// Validate and handle format
	format := opts.Format
	if format == "" {
		format = config.FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	case config.FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// displayPath relativizes path against workDir when that produces a shorter,
// non-escaping path. Otherwise the path is returned unchanged.
func displayPath(path, workDir string) string {
	if workDir == "" {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
