// Package source scans source text into tokens with exact byte offsets and
// classifies the tokens that are developer comments. Concatenating the token
// contents in order always reproduces the input byte-for-byte, so positions
// derived from token offsets are authoritative.
package source

import (
	"unicode/utf8"

	"github.com/yaklabco/prosechunk/pkg/span"
)

// Delimiter strings per token kind. Scalar widths are derived, never
// hard-coded, so the table stays the single source of truth.
const (
	blockCommentPrefix  = "/*"
	blockCommentPostfix = "*/"
	lineCommentPrefix   = "//"
)

// TokenWithLocation is a token paired with the byte offset of its first
// byte in the source string.
type TokenWithLocation struct {
	// Content is the full token text, including delimiters like "//".
	Content string

	// Location is the byte offset of the token start, 0-indexed.
	Location int
}

// TokenWithLineColumn is a token paired with the line (1-indexed) and column
// (0-indexed, in Unicode scalars) of its first scalar.
type TokenWithLineColumn struct {
	Content string
	Line    int
	Column  int
}

// TokenKind distinguishes developer comments from everything else.
type TokenKind int

const (
	// KindOther covers every token that is not a developer comment,
	// including doc comments and unterminated block comments.
	KindOther TokenKind = iota

	// KindBlockComment is a closed, non-doc "/* ... */" comment.
	KindBlockComment

	// KindLineComment is a non-doc "// ..." comment.
	KindLineComment
)

// String implements fmt.Stringer.
func (k TokenKind) String() string {
	switch k {
	case KindBlockComment:
		return "developer block comment"
	case KindLineComment:
		return "developer line comment"
	default:
		return "not a developer comment"
	}
}

// Pre returns the delimiter prefix for the kind.
func (k TokenKind) Pre() string {
	switch k {
	case KindBlockComment:
		return blockCommentPrefix
	case KindLineComment:
		return lineCommentPrefix
	default:
		return ""
	}
}

// Post returns the delimiter postfix for the kind.
func (k TokenKind) Post() string {
	if k == KindBlockComment {
		return blockCommentPostfix
	}
	return ""
}

// PreScalars returns the prefix width in Unicode scalars.
func (k TokenKind) PreScalars() int {
	return utf8.RuneCountInString(k.Pre())
}

// PostScalars returns the postfix width in Unicode scalars.
func (k TokenKind) PostScalars() int {
	return utf8.RuneCountInString(k.Post())
}

// TokenWithKind is a classified token with its source position.
type TokenWithKind struct {
	Kind    TokenKind
	Content string
	Line    int
	Column  int
}

// WithLineColumns converts byte-offset tokens to line/column tokens by
// applying the coordinate index to the source prefix before each token.
func WithLineColumns(source string, tokens []TokenWithLocation) []TokenWithLineColumn {
	out := make([]TokenWithLineColumn, 0, len(tokens))
	for _, t := range tokens {
		prefix := source[:t.Location]
		out = append(out, TokenWithLineColumn{
			Content: t.Content,
			Line:    span.LineOf(prefix),
			Column:  span.ColumnOf(prefix),
		})
	}
	return out
}
