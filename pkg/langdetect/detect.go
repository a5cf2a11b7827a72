// Package langdetect decides how discovered files enter the extraction
// pipeline. It combines filename conventions with go-enry content detection
// to classify files as Rust sources, CommonMark documents, or neither.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// FileKind is the extraction treatment a file gets.
type FileKind int

const (
	// KindUnknown files are skipped.
	KindUnknown FileKind = iota

	// KindRustSource files go through developer comment extraction.
	KindRustSource

	// KindCommonMark files become one chunk per document.
	KindCommonMark
)

// String implements fmt.Stringer.
func (k FileKind) String() string {
	switch k {
	case KindRustSource:
		return "rust source"
	case KindCommonMark:
		return "commonmark document"
	default:
		return "unknown"
	}
}

// enry language names for the kinds served here.
const (
	enryRust     = "Rust"
	enryMarkdown = "Markdown"
)

// DetectFile classifies a file by path, falling back to content detection
// for paths without a conclusive extension.
func DetectFile(path string, content []byte) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".rs":
		return KindRustSource
	case ".md", ".markdown":
		return KindCommonMark
	}

	switch enry.GetLanguage(filepath.Base(path), content) {
	case enryRust:
		return KindRustSource
	case enryMarkdown:
		return KindCommonMark
	default:
		return KindUnknown
	}
}
