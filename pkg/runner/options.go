// Package runner provides multi-file extraction orchestration.
package runner

// Options controls multi-file extraction behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered during directory walks. Defaults to [".rs", ".md",
	// ".markdown"] via DefaultExtensions(). Files named explicitly in Paths
	// bypass this filter and are classified by content instead.
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// DevComments controls whether developer comments are extracted from
	// source files. When false, source files are neither discovered nor
	// processed.
	DevComments bool

	// SkipReadme drops README files from discovery and processing.
	SkipReadme bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int
}

// DefaultExtensions returns the default set of checkable file extensions.
func DefaultExtensions() []string {
	return []string{".rs", ".md", ".markdown"}
}

// effectiveExtensions returns the extensions to use during walks. Source
// extensions are dropped when developer comments are disabled.
func (o Options) effectiveExtensions() []string {
	exts := o.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions()
	}
	if o.DevComments {
		return exts
	}
	kept := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext == ".rs" {
			continue
		}
		kept = append(kept, ext)
	}
	return kept
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
