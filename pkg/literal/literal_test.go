package literal_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prosechunk/pkg/literal"
	"github.com/yaklabco/prosechunk/pkg/span"
)

func TestNewTrimmedLiteralSingleLineBlockComment(t *testing.T) {
	t.Parallel()

	raw := "/* block 种 comment */"
	l, err := literal.NewTrimmedLiteral(literal.VariantUnknown, raw, 2, 2, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, l.Pre())
	assert.Equal(t, 2, l.Post())
	assert.Equal(t, " block 种 comment ", l.String())
	assert.Equal(t, utf8.RuneCountInString(raw)-4, l.LenInScalars())
	assert.Equal(t, len(raw)-4, l.Len())

	s := l.Span()
	assert.Equal(t, span.Position{Line: 1, Column: 2}, s.Start)
	assert.Equal(t, span.Position{Line: 1, Column: utf8.RuneCountInString(raw) - 2 - 1}, s.End)
}

func TestNewTrimmedLiteralIndented(t *testing.T) {
	t.Parallel()

	raw := "/* block 种 comment */"
	const indent = 4
	l, err := literal.NewTrimmedLiteral(literal.VariantUnknown, raw, 2, 2, 1, indent)
	require.NoError(t, err)

	s := l.Span()
	assert.Equal(t, span.Position{Line: 1, Column: indent + 2}, s.Start)
	assert.Equal(t, span.Position{Line: 1, Column: indent + utf8.RuneCountInString(raw) - 2 - 1}, s.End)
}

func TestNewTrimmedLiteralLineComment(t *testing.T) {
	t.Parallel()

	l, err := literal.NewTrimmedLiteral(literal.VariantUnknown, "// A constant ", 2, 0, 2, 23)
	require.NoError(t, err)

	assert.Equal(t, " A constant ", l.String())
	assert.Equal(t, len(" A constant "), l.Len())

	s := l.Span()
	assert.Equal(t, span.Position{Line: 2, Column: 25}, s.Start)
	assert.Equal(t, span.Position{Line: 2, Column: 25 + utf8.RuneCountInString(" A constant ") - 1}, s.End)
}

func TestNewTrimmedLiteralRejectsDegenerateContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		pre, post int
	}{
		{name: "shorter than delimiters", raw: "/*", pre: 2, post: 2},
		{name: "empty block comment", raw: "/**/", pre: 2, post: 2},
		{name: "lone terminator line", raw: "*/", pre: 0, post: 2},
		{name: "empty line comment", raw: "//", pre: 2, post: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := literal.NewTrimmedLiteral(literal.VariantUnknown, tt.raw, tt.pre, tt.post, 1, 0)
			assert.Error(t, err)
		})
	}
}

func TestTrimmedLiteralMiddleLineOfBlock(t *testing.T) {
	t.Parallel()

	l, err := literal.NewTrimmedLiteral(literal.VariantUnknown, " 种 ", 0, 0, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, " 种 ", l.String())
	assert.Equal(t, 3, l.LenInScalars())

	s := l.Span()
	assert.Equal(t, span.Position{Line: 2, Column: 0}, s.Start)
	assert.Equal(t, span.Position{Line: 2, Column: 2}, s.End)
}

func TestCommentVariantTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		variant     literal.CommentVariant
		pre, post   string
		preN, postN int
		doc         bool
	}{
		{variant: literal.VariantUnknown, pre: "", post: "", preN: 0, postN: 0, doc: false},
		{variant: literal.VariantDoubleSlash, pre: "//", post: "", preN: 2, postN: 0, doc: false},
		{variant: literal.VariantTripleSlash, pre: "///", post: "", preN: 3, postN: 0, doc: true},
		{variant: literal.VariantDoubleSlashBang, pre: "//!", post: "", preN: 3, postN: 0, doc: true},
		{variant: literal.VariantSlashAsterisk, pre: "/*", post: "*/", preN: 2, postN: 2, doc: false},
		{variant: literal.VariantSlashAsteriskAsterisk, pre: "/**", post: "*/", preN: 3, postN: 2, doc: true},
		{variant: literal.VariantSlashAsteriskBang, pre: "/*!", post: "*/", preN: 3, postN: 2, doc: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.pre, tt.variant.Prefix(), "variant %s", tt.variant)
		assert.Equal(t, tt.post, tt.variant.Postfix(), "variant %s", tt.variant)
		assert.Equal(t, tt.preN, tt.variant.PrefixScalars(), "variant %s", tt.variant)
		assert.Equal(t, tt.postN, tt.variant.PostfixScalars(), "variant %s", tt.variant)
		assert.Equal(t, tt.doc, tt.variant.IsDoc(), "variant %s", tt.variant)
	}
}
