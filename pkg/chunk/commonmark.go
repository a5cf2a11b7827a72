package chunk

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/prosechunk/pkg/span"
)

// FromCommonMark builds a chunk covering a standalone CommonMark document.
// Every non-empty line maps to its own single-line span so downstream
// consumers resolving fragments always land on one line. Lines are 1-based,
// columns start at 0, and the trailing newline stays outside the mapping.
func FromCommonMark(content string) *CheckableChunk {
	mapping := NewRangeMap()

	offset := 0
	line := 1
	for {
		rest := content[offset:]
		idx := strings.IndexByte(rest, '\n')

		lineText := rest
		if idx >= 0 {
			lineText = rest[:idx]
		}
		if n := utf8.RuneCountInString(lineText); n > 0 {
			mapping.Put(
				span.Range{Start: offset, End: offset + len(lineText)},
				span.Span{
					Start: span.Position{Line: line, Column: 0},
					End:   span.Position{Line: line, Column: n - 1},
				},
			)
		}

		if idx < 0 {
			break
		}
		offset += idx + 1
		line++
	}

	return FromString(content, mapping)
}
