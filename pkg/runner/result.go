package runner

import (
	"github.com/yaklabco/prosechunk/pkg/chunk"
	"github.com/yaklabco/prosechunk/pkg/langdetect"
)

// FileOutcome carries the extraction result for a single file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Kind is the detected file kind.
	Kind langdetect.FileKind

	// Origin identifies where the extracted chunks came from.
	Origin chunk.ContentOrigin

	// Chunks holds the checkable chunks extracted from the file, in
	// source order. Empty when the file contained no checkable prose.
	Chunks []*chunk.CheckableChunk

	// Skipped is true when the file was read but intentionally not
	// processed, e.g. an unrecognized kind or a README with skip_readme.
	Skipped bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files extraction actually ran on.
	FilesProcessed int

	// FilesSkipped is the number of files intentionally not processed.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithChunks is the number of files yielding at least one chunk.
	FilesWithChunks int

	// ChunksTotal is the total number of chunks across all files.
	ChunksTotal int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasChunks reports whether any file yielded checkable content.
func (r *Result) HasChunks() bool {
	if r == nil {
		return false
	}
	return r.Stats.ChunksTotal > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || len(r.Errors) > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Skipped {
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++

	if n := len(outcome.Chunks); n > 0 {
		r.Stats.ChunksTotal += n
		r.Stats.FilesWithChunks++
	}
}
