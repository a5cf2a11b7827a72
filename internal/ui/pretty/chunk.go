package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/prosechunk/pkg/chunk"
)

// OriginLabel returns a short human label for a chunk origin.
func OriginLabel(origin chunk.ContentOrigin) string {
	switch {
	case origin.IsSourceFile():
		return "developer comments"
	case origin.IsDocTest():
		return "doc test"
	case origin.IsCommonMark():
		return "commonmark"
	default:
		return "content"
	}
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, chunkCount int) string {
	header := s.FilePath.Render(path)
	if chunkCount > 0 {
		word := "chunks"
		if chunkCount == 1 {
			word = "chunk"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", chunkCount, word))
	}
	return header
}

// FormatChunkHeader formats the heading line for one chunk. The line range
// covers the source lines the chunk maps back to.
func (s *Styles) FormatChunkHeader(index int, label string, startLine, endLine int) string {
	location := fmt.Sprintf("line %d", startLine)
	if endLine > startLine {
		location = fmt.Sprintf("lines %d-%d", startLine, endLine)
	}

	return fmt.Sprintf("  %s  %s  %s",
		s.Bold.Render(fmt.Sprintf("chunk %d", index)),
		s.Location.Render(location),
		s.Kind.Render(label),
	)
}

// FormatChunkContent renders chunk content with a gutter prefix, one line of
// output per content line.
func (s *Styles) FormatChunkContent(content string) string {
	if content == "" {
		return ""
	}

	var builder strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		builder.WriteString("    ")
		builder.WriteString(s.Dim.Render("|"))
		if line != "" {
			builder.WriteString(" ")
			builder.WriteString(s.Content.Render(line))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// FormatMapping renders one source-map entry as "range -> span".
func (s *Styles) FormatMapping(pair chunk.RangeSpan) string {
	return fmt.Sprintf("    %s\n", s.Dim.Render(fmt.Sprintf("%s -> %s", pair.Range, pair.Span)))
}
