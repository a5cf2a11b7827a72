package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prosechunk/pkg/chunk"
	"github.com/yaklabco/prosechunk/pkg/literal"
	"github.com/yaklabco/prosechunk/pkg/span"
)

func TestEraseMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		plain   string
	}{
		{
			name:    "heading and emphasis",
			content: "# Title\n\nSome *bold* text",
			plain:   "Title\n\nSome bold text",
		},
		{
			name:    "plain prose passes through",
			content: "Just plain prose.\n\nSecond paragraph.",
			plain:   "Just plain prose.\n\nSecond paragraph.",
		},
		{
			name:    "soft break keeps the newline",
			content: "first line\nsecond line",
			plain:   "first line\nsecond line",
		},
		{
			name:    "fenced code block body is dropped",
			content: "text\n\n```\ncode here\n```\n\nafter",
			plain:   "text\n\nafter",
		},
		{
			name:    "link keeps label drops target",
			content: "See [the docs](https://example.com) now",
			plain:   "See the docs now",
		},
		{
			name:    "inline code is kept verbatim",
			content: "run `go vet` often",
			plain:   "run go vet often",
		},
		{
			name:    "tight list items",
			content: "- one\n- two",
			plain:   "one\n\ntwo",
		},
		{
			name:    "thematic break vanishes",
			content: "above\n\n---\n\nbelow",
			plain:   "above\n\nbelow",
		},
		{
			name:    "empty content",
			content: "",
			plain:   "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			overlay := chunk.FromCommonMark(tt.content).EraseMarkdown()
			assert.Equal(t, tt.plain, overlay.Plain())
		})
	}
}

func TestEraseMarkdownStableOnPlainProse(t *testing.T) {
	t.Parallel()

	const prose = "Nothing fancy here.\n\nTwo paragraphs of it."

	once := chunk.FromCommonMark(prose).EraseMarkdown()
	require.Equal(t, prose, once.Plain())

	twice := chunk.FromCommonMark(once.Plain()).EraseMarkdown()
	assert.Equal(t, once.Plain(), twice.Plain())
}

func TestEraseMarkdownMappings(t *testing.T) {
	t.Parallel()

	c := chunk.FromCommonMark("# Title\n\nSome *bold* text")
	overlay := c.EraseMarkdown()

	expected := []chunk.OverlayMapping{
		{Plain: span.Range{Start: 0, End: 5}, Chunk: span.Range{Start: 2, End: 7}},
		{Plain: span.Range{Start: 7, End: 12}, Chunk: span.Range{Start: 9, End: 14}},
		{Plain: span.Range{Start: 12, End: 16}, Chunk: span.Range{Start: 15, End: 19}},
		{Plain: span.Range{Start: 16, End: 21}, Chunk: span.Range{Start: 20, End: 25}},
	}
	assert.Equal(t, expected, overlay.Mappings())

	content := c.String()
	for _, m := range overlay.Mappings() {
		assert.Equal(t,
			content[m.Chunk.Start:m.Chunk.End],
			overlay.Plain()[m.Plain.Start:m.Plain.End],
			"mapped bytes must be copied verbatim")
	}
}

func TestOverlayFindSpans(t *testing.T) {
	t.Parallel()

	set := literal.NewSet(mustLiteral(t, literal.VariantDoubleSlash, "//# Heading", 2, 0, 1, 0))
	require.True(t, set.AddAdjacent(mustLiteral(t, literal.VariantDoubleSlash, "//plain text", 2, 0, 2, 0)))

	c := chunk.FromLiteralSet(set)
	require.Equal(t, "# Heading\nplain text", c.String())

	overlay := c.EraseMarkdown()
	require.Equal(t, "Heading\n\nplain text", overlay.Plain())

	t.Run("whole rendering", func(t *testing.T) {
		t.Parallel()

		found := overlay.FindSpans(span.Range{Start: 0, End: len(overlay.Plain())})
		require.Equal(t, 2, found.Len())

		head, ok := found.Get(span.Range{Start: 0, End: 7})
		require.True(t, ok)
		assert.Equal(t, span.Span{
			Start: span.Position{Line: 1, Column: 4},
			End:   span.Position{Line: 1, Column: 10},
		}, head, "erased heading resolves past the comment and heading markers")

		tail, ok := found.Get(span.Range{Start: 9, End: 19})
		require.True(t, ok)
		assert.Equal(t, span.Span{
			Start: span.Position{Line: 2, Column: 2},
			End:   span.Position{Line: 2, Column: 11},
		}, tail)
	})

	t.Run("single word", func(t *testing.T) {
		t.Parallel()

		// "text" sits at plain bytes 15..19.
		found := overlay.FindSpans(span.Range{Start: 15, End: 19})
		require.Equal(t, 1, found.Len())

		got, ok := found.Get(span.Range{Start: 15, End: 19})
		require.True(t, ok)
		assert.Equal(t, span.Span{
			Start: span.Position{Line: 2, Column: 8},
			End:   span.Position{Line: 2, Column: 11},
		}, got)
	})

	t.Run("separator only", func(t *testing.T) {
		t.Parallel()

		found := overlay.FindSpans(span.Range{Start: 7, End: 9})
		assert.Equal(t, 0, found.Len())
	})
}

func TestOverlayAccessors(t *testing.T) {
	t.Parallel()

	c := chunk.FromCommonMark("words")
	overlay := c.EraseMarkdown()

	assert.Same(t, c, overlay.Chunk())
	assert.Equal(t, "words", overlay.Plain())
}
