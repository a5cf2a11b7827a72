package chunk

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/prosechunk/pkg/literal"
	"github.com/yaklabco/prosechunk/pkg/span"
)

// CheckableChunk is a rendered content string plus the authoritative mapping
// from byte ranges within it back to inclusive source spans. Chunks are
// immutable once built.
type CheckableChunk struct {
	content       string
	sourceMapping *RangeMap
}

// FromString builds a chunk from prepared content and mapping. The mapping is
// taken as authoritative and must hold ascending, disjoint ranges.
func FromString(content string, sourceMapping *RangeMap) *CheckableChunk {
	return &CheckableChunk{content: content, sourceMapping: sourceMapping}
}

// FromLiteralSet renders a literal set into a chunk: the trimmed contents
// joined by newlines, with each literal's byte range in the rendered content
// recorded against its source span. The separators themselves map to nothing.
func FromLiteralSet(set *literal.Set) *CheckableChunk {
	var sb strings.Builder
	mapping := NewRangeMap()

	cursor := 0
	for i, l := range set.Literals() {
		if i > 0 {
			sb.WriteByte('\n')
			cursor++
		}
		content := l.String()
		mapping.Put(span.Range{Start: cursor, End: cursor + len(content)}, l.Span())
		sb.WriteString(content)
		cursor += len(content)
	}

	return FromString(sb.String(), mapping)
}

// String returns the rendered content.
func (c *CheckableChunk) String() string {
	return c.content
}

// Len returns the rendered content length in bytes.
func (c *CheckableChunk) Len() int {
	return len(c.content)
}

// SourceMapping returns the chunk's range-to-span map.
func (c *CheckableChunk) SourceMapping() *RangeMap {
	return c.sourceMapping
}

// FindSpans resolves a byte range of the rendered content to the source
// spans it covers. The query may cross several mapping entries; each
// overlapped entry contributes one fragment with its span columns trimmed to
// the overlap. Entries are visited in order with an active flag: the entry
// containing the query start activates emission, and the entry containing
// the query end deactivates it after a right-trimmed fragment.
func (c *CheckableChunk) FindSpans(query span.Range) *RangeMap {
	found := NewRangeMap()
	if query.IsEmpty() {
		return found
	}
	active := false

	for _, pair := range c.sourceMapping.Pairs() {
		entry := pair.Range

		var frag span.Range
		switch {
		case entry.Contains(query.Start):
			active = true
			if entry.Contains(query.End - 1) {
				frag = span.Range{Start: query.Start, End: query.End}
			} else {
				frag = span.Range{Start: query.Start, End: entry.End}
			}
		case active:
			if entry.Contains(query.End) {
				active = false
				frag = span.Range{Start: entry.Start, End: query.End}
			} else {
				frag = entry
			}
		default:
			continue
		}

		found.Put(frag, c.trimSpanToFragment(pair, frag))
	}

	return found
}

// trimSpanToFragment adjusts an entry's span columns to cover only the
// emitted fragment. Columns count scalars while ranges count bytes, so the
// deltas are rune counts over the dropped content, not byte differences.
// Mapping entries must be single-line; a violation means the chunk was built
// from a multi-line literal, which the literal layer prevents.
func (c *CheckableChunk) trimSpanToFragment(pair RangeSpan, frag span.Range) span.Span {
	s := pair.Span
	if s.Start.Line != s.End.Line {
		panic(fmt.Sprintf("mapping entry %s has multi-line span %s", pair.Range, s))
	}

	s.Start.Column += utf8.RuneCountInString(c.content[pair.Range.Start:frag.Start])
	s.End.Column -= utf8.RuneCountInString(c.content[frag.End:pair.Range.End])
	if s.Start.Column > s.End.Column {
		panic(fmt.Sprintf(
			"span %s inverted while trimming entry %s to fragment %s", s, pair.Range, frag))
	}
	return s
}

// ScalarLen returns the number of Unicode scalars in the content slice
// covered by r.
func (c *CheckableChunk) ScalarLen(r span.Range) int {
	return utf8.RuneCountInString(c.content[r.Start:r.End])
}
