// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Extraction fields.
	FieldLanguage = "language"
	FieldKind     = "kind"
	FieldLine     = "line"
	FieldColumn   = "column"
	FieldSets     = "sets"

	// Run fields.
	FieldFormat = "format"
	FieldJobs   = "jobs"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesSkipped    = "files_skipped"
	FieldChunksTotal     = "chunks_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
