package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/prosechunk/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format config.OutputFormat

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// Plain renders chunk content with markdown markup erased instead of
	// the raw chunk text.
	Plain bool

	// ShowMappings includes the chunk-to-source mapping entries under each
	// chunk in text output.
	ShowMappings bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses compact/minified output where applicable.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      config.FormatText,
		Color:       "auto",
		ShowSummary: true,
		Compact:     false,
	}
}
