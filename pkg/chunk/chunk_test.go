package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prosechunk/pkg/chunk"
	"github.com/yaklabco/prosechunk/pkg/literal"
	"github.com/yaklabco/prosechunk/pkg/span"
)

func mustLiteral(t *testing.T, variant literal.CommentVariant, raw string, pre, post, line, column int) literal.TrimmedLiteral {
	t.Helper()

	l, err := literal.NewTrimmedLiteral(variant, raw, pre, post, line, column)
	require.NoError(t, err)
	return l
}

func TestRangeMap(t *testing.T) {
	t.Parallel()

	m := chunk.NewRangeMap()
	assert.Equal(t, 0, m.Len())

	first := span.Span{
		Start: span.Position{Line: 1, Column: 2},
		End:   span.Position{Line: 1, Column: 6},
	}
	second := span.Span{
		Start: span.Position{Line: 2, Column: 0},
		End:   span.Position{Line: 2, Column: 4},
	}
	m.Put(span.Range{Start: 0, End: 5}, first)
	m.Put(span.Range{Start: 6, End: 11}, second)

	require.Equal(t, 2, m.Len())

	got, ok := m.Get(span.Range{Start: 6, End: 11})
	require.True(t, ok)
	assert.Equal(t, second, got)

	_, ok = m.Get(span.Range{Start: 6, End: 10})
	assert.False(t, ok)

	// Insertion order is preserved.
	pairs := m.Pairs()
	assert.Equal(t, span.Range{Start: 0, End: 5}, pairs[0].Range)
	assert.Equal(t, span.Range{Start: 6, End: 11}, pairs[1].Range)

	other := chunk.NewRangeMap()
	other.Put(span.Range{Start: 0, End: 5}, first)
	assert.False(t, m.Equal(other))
	other.Put(span.Range{Start: 6, End: 11}, second)
	assert.True(t, m.Equal(other))
}

func TestFromLiteralSetLineComments(t *testing.T) {
	t.Parallel()

	// Two indented line comments on consecutive lines.
	set := literal.NewSet(mustLiteral(t, literal.VariantDoubleSlash, "// Line 1", 2, 0, 1, 2))
	require.True(t, set.AddAdjacent(mustLiteral(t, literal.VariantDoubleSlash, "// Line 2", 2, 0, 2, 2)))

	c := chunk.FromLiteralSet(set)
	assert.Equal(t, " Line 1\n Line 2", c.String())
	assert.Equal(t, 15, c.Len())

	expected := chunk.NewRangeMap()
	expected.Put(span.Range{Start: 0, End: 7}, span.Span{
		Start: span.Position{Line: 1, Column: 4},
		End:   span.Position{Line: 1, Column: 10},
	})
	expected.Put(span.Range{Start: 8, End: 15}, span.Span{
		Start: span.Position{Line: 2, Column: 4},
		End:   span.Position{Line: 2, Column: 10},
	})
	assert.True(t, c.SourceMapping().Equal(expected),
		"mapping %+v", c.SourceMapping().Pairs())
}

func TestFromLiteralSetBlockComment(t *testing.T) {
	t.Parallel()

	set := literal.NewSet(mustLiteral(t, literal.VariantSlashAsterisk, "/* block */", 2, 2, 1, 0))

	c := chunk.FromLiteralSet(set)
	assert.Equal(t, " block ", c.String())

	got, ok := c.SourceMapping().Get(span.Range{Start: 0, End: 7})
	require.True(t, ok)
	assert.Equal(t, span.Span{
		Start: span.Position{Line: 1, Column: 2},
		End:   span.Position{Line: 1, Column: 8},
	}, got)
}

func TestFindSpansAcrossEntries(t *testing.T) {
	t.Parallel()

	mapping := chunk.NewRangeMap()
	mapping.Put(span.Range{Start: 0, End: 5}, span.Span{
		Start: span.Position{Line: 1, Column: 2},
		End:   span.Position{Line: 1, Column: 6},
	})
	mapping.Put(span.Range{Start: 6, End: 11}, span.Span{
		Start: span.Position{Line: 2, Column: 0},
		End:   span.Position{Line: 2, Column: 4},
	})
	c := chunk.FromString("abcde\nfghij", mapping)

	found := c.FindSpans(span.Range{Start: 2, End: 9})
	require.Equal(t, 2, found.Len())

	head, ok := found.Get(span.Range{Start: 2, End: 5})
	require.True(t, ok)
	assert.Equal(t, span.Span{
		Start: span.Position{Line: 1, Column: 4},
		End:   span.Position{Line: 1, Column: 6},
	}, head)

	tail, ok := found.Get(span.Range{Start: 6, End: 9})
	require.True(t, ok)
	assert.Equal(t, span.Span{
		Start: span.Position{Line: 2, Column: 0},
		End:   span.Position{Line: 2, Column: 2},
	}, tail)
}

func TestFindSpansWithinSingleEntry(t *testing.T) {
	t.Parallel()

	mapping := chunk.NewRangeMap()
	mapping.Put(span.Range{Start: 0, End: 5}, span.Span{
		Start: span.Position{Line: 1, Column: 2},
		End:   span.Position{Line: 1, Column: 6},
	})
	c := chunk.FromString("abcde", mapping)

	found := c.FindSpans(span.Range{Start: 1, End: 4})
	require.Equal(t, 1, found.Len())

	got, ok := found.Get(span.Range{Start: 1, End: 4})
	require.True(t, ok)
	assert.Equal(t, span.Span{
		Start: span.Position{Line: 1, Column: 3},
		End:   span.Position{Line: 1, Column: 5},
	}, got)
}

func TestFindSpansFullContent(t *testing.T) {
	t.Parallel()

	set := literal.NewSet(mustLiteral(t, literal.VariantDoubleSlash, "// alpha", 2, 0, 1, 0))
	require.True(t, set.AddAdjacent(mustLiteral(t, literal.VariantDoubleSlash, "// beta", 2, 0, 2, 0)))
	c := chunk.FromLiteralSet(set)

	found := c.FindSpans(span.Range{Start: 0, End: c.Len()})
	assert.True(t, found.Equal(c.SourceMapping()),
		"querying the whole content must return the mapping unchanged")
}

func TestFindSpansStartingInGap(t *testing.T) {
	t.Parallel()

	set := literal.NewSet(mustLiteral(t, literal.VariantDoubleSlash, "// alpha", 2, 0, 1, 0))
	require.True(t, set.AddAdjacent(mustLiteral(t, literal.VariantDoubleSlash, "// beta", 2, 0, 2, 0)))
	c := chunk.FromLiteralSet(set)

	// Byte 6 is the separator newline between the two literals.
	found := c.FindSpans(span.Range{Start: 6, End: c.Len()})
	assert.Equal(t, 0, found.Len())
}

func TestFindSpansScalarLengthsAgree(t *testing.T) {
	t.Parallel()

	set := literal.NewSet(mustLiteral(t, literal.VariantDoubleSlash, "// te中st", 2, 0, 1, 0))
	c := chunk.FromLiteralSet(set)

	for _, pair := range c.FindSpans(span.Range{Start: 0, End: c.Len()}).Pairs() {
		spanScalars := pair.Span.End.Column - pair.Span.Start.Column + 1
		assert.Equal(t, spanScalars, c.ScalarLen(pair.Range),
			"range %s and span %s must cover the same number of scalars", pair.Range, pair.Span)
	}
}

func TestScalarLen(t *testing.T) {
	t.Parallel()

	c := chunk.FromString("为读 ab", chunk.NewRangeMap())
	assert.Equal(t, 2, c.ScalarLen(span.Range{Start: 0, End: 6}))
	assert.Equal(t, 5, c.ScalarLen(span.Range{Start: 0, End: 9}))
	assert.Equal(t, 0, c.ScalarLen(span.Range{Start: 3, End: 3}))
}

func TestFromCommonMark(t *testing.T) {
	t.Parallel()

	c := chunk.FromCommonMark("# Title\n\nSome text\n")

	expected := chunk.NewRangeMap()
	expected.Put(span.Range{Start: 0, End: 7}, span.Span{
		Start: span.Position{Line: 1, Column: 0},
		End:   span.Position{Line: 1, Column: 6},
	})
	expected.Put(span.Range{Start: 9, End: 18}, span.Span{
		Start: span.Position{Line: 3, Column: 0},
		End:   span.Position{Line: 3, Column: 8},
	})
	assert.True(t, c.SourceMapping().Equal(expected),
		"mapping %+v", c.SourceMapping().Pairs())
}

func TestFromCommonMarkMultibyte(t *testing.T) {
	t.Parallel()

	c := chunk.FromCommonMark("中文 content")

	got, ok := c.SourceMapping().Get(span.Range{Start: 0, End: 14})
	require.True(t, ok)
	assert.Equal(t, span.Span{
		Start: span.Position{Line: 1, Column: 0},
		End:   span.Position{Line: 1, Column: 9},
	}, got)
}

func TestFromCommonMarkEmpty(t *testing.T) {
	t.Parallel()

	c := chunk.FromCommonMark("")
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.SourceMapping().Len())
}
