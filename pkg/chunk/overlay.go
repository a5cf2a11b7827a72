package chunk

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/prosechunk/pkg/span"
)

// OverlayMapping pairs a byte range of the plain rendering with the byte
// range of the chunk content it was copied from. Synthesized separators in
// the plain text have no mapping.
type OverlayMapping struct {
	Plain span.Range
	Chunk span.Range
}

// PlainOverlay is a Markdown-erased rendering of a chunk together with the
// mapping back into the chunk. Composing that mapping with the chunk's own
// source map resolves plain-text ranges all the way to file spans.
type PlainOverlay struct {
	chunk    *CheckableChunk
	plain    string
	chunkMap []OverlayMapping
}

// EraseMarkdown renders the chunk's content with Markdown syntax removed.
// Text nodes and inline code runs are copied verbatim, structural syntax
// (heading markers, emphasis, bullets, fences, link targets, raw HTML) is
// dropped along with code block bodies, and block boundaries collapse to a
// single blank line.
func (c *CheckableChunk) EraseMarkdown() *PlainOverlay {
	e := &eraser{src: []byte(c.content)}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(e.src))

	// The walker cannot fail; it only copies segments.
	_ = ast.Walk(doc, e.walk)

	return &PlainOverlay{
		chunk:    c,
		plain:    e.plain.String(),
		chunkMap: e.mappings,
	}
}

// Plain returns the erased rendering.
func (o *PlainOverlay) Plain() string {
	return o.plain
}

// Chunk returns the chunk this overlay was rendered from.
func (o *PlainOverlay) Chunk() *CheckableChunk {
	return o.chunk
}

// Mappings returns the plain-to-chunk ranges in ascending order. The slice
// is shared; callers must not mutate it.
func (o *PlainOverlay) Mappings() []OverlayMapping {
	return o.chunkMap
}

// FindSpans resolves a byte range of the plain rendering to source spans by
// translating it through the overlay mapping and the chunk's source map.
// Returned ranges are in plain coordinates.
func (o *PlainOverlay) FindSpans(query span.Range) *RangeMap {
	found := NewRangeMap()

	for _, m := range o.chunkMap {
		overlap := intersect(query, m.Plain)
		if overlap.IsEmpty() {
			continue
		}

		shift := m.Chunk.Start - m.Plain.Start
		chunkQuery := span.Range{Start: overlap.Start + shift, End: overlap.End + shift}
		for _, pair := range o.chunk.FindSpans(chunkQuery).Pairs() {
			plainFrag := span.Range{Start: pair.Range.Start - shift, End: pair.Range.End - shift}
			found.Put(plainFrag, pair.Span)
		}
	}

	return found
}

func intersect(a, b span.Range) span.Range {
	s := max(a.Start, b.Start)
	e := min(a.End, b.End)
	if s >= e {
		return span.Range{}
	}
	return span.Range{Start: s, End: e}
}

// eraser accumulates the plain rendering and its mapping during an AST walk.
type eraser struct {
	src      []byte
	plain    strings.Builder
	mappings []OverlayMapping

	// sep marks a pending block boundary, materialized as "\n\n" the next
	// time a segment is kept so empty blocks never stack separators.
	sep bool
}

func (e *eraser) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	switch n.(type) {
	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.ThematicBreak,
		*ast.AutoLink, *ast.RawHTML, *ast.String:
		return ast.WalkSkipChildren, nil

	case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
		e.sep = true

	case *ast.Text:
		t := n.(*ast.Text)
		e.keep(t.Segment)
		if t.SoftLineBreak() || t.HardLineBreak() {
			e.lineBreak()
		}
	}

	return ast.WalkContinue, nil
}

// keep copies a source segment into the plain rendering and records the
// mapping, merging with the previous entry when both sides are contiguous.
func (e *eraser) keep(seg text.Segment) {
	if seg.Stop <= seg.Start {
		return
	}

	if e.sep {
		if e.plain.Len() > 0 {
			e.plain.WriteString("\n\n")
		}
		e.sep = false
	}

	start := e.plain.Len()
	e.plain.Write(e.src[seg.Start:seg.Stop])

	if n := len(e.mappings); n > 0 {
		last := &e.mappings[n-1]
		if last.Plain.End == start && last.Chunk.End == seg.Start {
			last.Plain.End = e.plain.Len()
			last.Chunk.End = seg.Stop
			return
		}
	}

	e.mappings = append(e.mappings, OverlayMapping{
		Plain: span.Range{Start: start, End: e.plain.Len()},
		Chunk: span.Range{Start: seg.Start, End: seg.Stop},
	})
}

// lineBreak renders a soft or hard break inside a block as a bare newline.
func (e *eraser) lineBreak() {
	if e.plain.Len() > 0 && !e.sep {
		e.plain.WriteByte('\n')
	}
}
