package langdetect_test

import (
	"testing"

	"github.com/yaklabco/prosechunk/pkg/langdetect"
)

func TestDetectFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		expected langdetect.FileKind
	}{
		{
			name:     "rust extension",
			path:     "src/lib.rs",
			content:  "fn main() {}",
			expected: langdetect.KindRustSource,
		},
		{
			name:     "rust extension wins over content",
			path:     "generated.rs",
			content:  "# looks like markdown\n\ntext",
			expected: langdetect.KindRustSource,
		},
		{
			name:     "markdown extension",
			path:     "README.md",
			content:  "# Title",
			expected: langdetect.KindCommonMark,
		},
		{
			name:     "long markdown extension",
			path:     "notes.markdown",
			content:  "plain text",
			expected: langdetect.KindCommonMark,
		},
		{
			name:     "uppercase extension",
			path:     "LEGACY.RS",
			content:  "fn main() {}",
			expected: langdetect.KindRustSource,
		},
		{
			name:     "go file is skipped",
			path:     "main.go",
			content:  "package main\n\nfunc main() {}",
			expected: langdetect.KindUnknown,
		},
		{
			name:     "json file is skipped",
			path:     "data.json",
			content:  `{"key": "value"}`,
			expected: langdetect.KindUnknown,
		},
		{
			name:     "empty extensionless file is skipped",
			path:     "LICENSE",
			content:  "",
			expected: langdetect.KindUnknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := langdetect.DetectFile(tt.path, []byte(tt.content))
			if got != tt.expected {
				t.Errorf("DetectFile(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestFileKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind langdetect.FileKind
		want string
	}{
		{langdetect.KindRustSource, "rust source"},
		{langdetect.KindCommonMark, "commonmark document"},
		{langdetect.KindUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
