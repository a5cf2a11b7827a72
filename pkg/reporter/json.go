package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/prosechunk/internal/ui/pretty"
	"github.com/yaklabco/prosechunk/pkg/chunk"
	"github.com/yaklabco/prosechunk/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's extraction results.
type JSONFileResult struct {
	Path    string      `json:"path"`
	Kind    string      `json:"kind"`
	Origin  string      `json:"origin,omitempty"`
	Chunks  []JSONChunk `json:"chunks"`
	Skipped bool        `json:"skipped,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// JSONChunk represents one checkable chunk with its source map.
type JSONChunk struct {
	Content  string        `json:"content"`
	Plain    string        `json:"plain,omitempty"`
	Mappings []JSONMapping `json:"mappings"`
}

// JSONMapping maps a half-open byte range of chunk content back to an
// inclusive source span.
type JSONMapping struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Span  JSONSpan `json:"span"`
}

// JSONSpan is an inclusive source region. Lines are 1-indexed, columns are
// 0-indexed scalar offsets.
type JSONSpan struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesScanned    int `json:"filesScanned"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesErrored    int `json:"filesErrored"`
	FilesWithChunks int `json:"filesWithChunks"`
	TotalChunks     int `json:"totalChunks"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalChunks, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	output.Summary = JSONSummary{
		FilesDiscovered: result.Stats.FilesDiscovered,
		FilesScanned:    result.Stats.FilesProcessed,
		FilesSkipped:    result.Stats.FilesSkipped,
		FilesErrored:    result.Stats.FilesErrored,
		FilesWithChunks: result.Stats.FilesWithChunks,
		TotalChunks:     result.Stats.ChunksTotal,
	}

	// Pre-allocate if we have files
	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:    displayPath(file.Path, r.opts.WorkingDir),
			Kind:    file.Kind.String(),
			Chunks:  make([]JSONChunk, 0, len(file.Chunks)),
			Skipped: file.Skipped,
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		} else if !file.Skipped {
			fileResult.Origin = pretty.OriginLabel(file.Origin)
		}

		for _, c := range file.Chunks {
			fileResult.Chunks = append(fileResult.Chunks, r.buildChunk(c))
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}

func (r *JSONReporter) buildChunk(c *chunk.CheckableChunk) JSONChunk {
	pairs := c.SourceMapping().Pairs()

	jsonChunk := JSONChunk{
		Content:  c.String(),
		Mappings: make([]JSONMapping, 0, len(pairs)),
	}

	if r.opts.Plain {
		jsonChunk.Plain = c.EraseMarkdown().Plain()
	}

	for _, pair := range pairs {
		jsonChunk.Mappings = append(jsonChunk.Mappings, JSONMapping{
			Start: pair.Range.Start,
			End:   pair.Range.End,
			Span: JSONSpan{
				StartLine:   pair.Span.Start.Line,
				StartColumn: pair.Span.Start.Column,
				EndLine:     pair.Span.End.Line,
				EndColumn:   pair.Span.End.Column,
			},
		})
	}

	return jsonChunk
}
