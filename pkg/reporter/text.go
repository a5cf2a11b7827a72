package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/prosechunk/internal/ui/pretty"
	"github.com/yaklabco/prosechunk/pkg/chunk"
	"github.com/yaklabco/prosechunk/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		// Handle file errors
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(displayPath(file.Path, r.opts.WorkingDir)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Skipped || len(file.Chunks) == 0 {
			continue
		}

		// File header
		path := displayPath(file.Path, r.opts.WorkingDir)
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Chunks)))

		label := pretty.OriginLabel(file.Origin)
		for i, c := range file.Chunks {
			r.reportChunk(i+1, label, c)
			total++
		}

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// reportChunk writes the header, content, and optional mappings for one chunk.
func (r *TextReporter) reportChunk(index int, label string, c *chunk.CheckableChunk) {
	startLine, endLine := chunkCoverage(c)
	fmt.Fprintln(r.bw, r.styles.FormatChunkHeader(index, label, startLine, endLine))

	content := c.String()
	if r.opts.Plain {
		content = c.EraseMarkdown().Plain()
	}
	fmt.Fprint(r.bw, r.styles.FormatChunkContent(content))

	if r.opts.ShowMappings {
		for _, pair := range c.SourceMapping().Pairs() {
			fmt.Fprint(r.bw, r.styles.FormatMapping(pair))
		}
	}
}

// chunkCoverage returns the first and last source lines a chunk maps to.
func chunkCoverage(c *chunk.CheckableChunk) (int, int) {
	pairs := c.SourceMapping().Pairs()
	if len(pairs) == 0 {
		return 0, 0
	}
	return pairs[0].Span.Start.Line, pairs[len(pairs)-1].Span.End.Line
}
