package literal

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/prosechunk/pkg/span"
)

// TrimmedLiteral is one contiguous run of comment content with its delimiter
// widths stripped off and an exact source span. The raw text keeps the
// delimiters; accessors expose the trimmed view.
type TrimmedLiteral struct {
	// Variant records which comment syntax produced the literal.
	Variant CommentVariant

	raw    string
	pre    int
	post   int
	line   int
	column int
}

// NewTrimmedLiteral builds a literal from raw comment text and the delimiter
// widths to strip, both in Unicode scalars. It fails when the raw text is
// shorter than the delimiters or when the resulting span would be invalid,
// which covers empty comments like "/**/" and bare "*/" terminator lines.
func NewTrimmedLiteral(variant CommentVariant, raw string, pre, post, line, column int) (TrimmedLiteral, error) {
	scalars := utf8.RuneCountInString(raw)
	if scalars < pre+post {
		return TrimmedLiteral{}, fmt.Errorf(
			"raw content %q has %d scalars, shorter than its delimiters (pre %d, post %d)",
			raw, scalars, pre, post)
	}

	l := TrimmedLiteral{
		Variant: variant,
		raw:     raw,
		pre:     pre,
		post:    post,
		line:    line,
		column:  column,
	}
	if s := l.Span(); !s.IsValid() {
		return TrimmedLiteral{}, fmt.Errorf(
			"raw content %q at %d:%d trims to an invalid span %s", raw, line, column, s)
	}
	return l, nil
}

// Pre returns the stripped prefix width in scalars.
func (l TrimmedLiteral) Pre() int { return l.pre }

// Post returns the stripped postfix width in scalars.
func (l TrimmedLiteral) Post() int { return l.post }

// Line returns the 1-indexed line of the literal's first raw scalar.
func (l TrimmedLiteral) Line() int { return l.line }

// Column returns the 0-indexed scalar column of the literal's first raw scalar.
func (l TrimmedLiteral) Column() int { return l.column }

// Raw returns the untrimmed text, delimiters included.
func (l TrimmedLiteral) Raw() string { return l.raw }

// String returns the trimmed content, the prose between the delimiters.
func (l TrimmedLiteral) String() string {
	return cutScalars(l.raw, l.pre, l.post)
}

// Len returns the trimmed content length in bytes.
func (l TrimmedLiteral) Len() int {
	return len(l.String())
}

// LenInScalars returns the trimmed content length in Unicode scalars.
func (l TrimmedLiteral) LenInScalars() int {
	return utf8.RuneCountInString(l.raw) - l.pre - l.post
}

// Span returns the inclusive source region of the trimmed content. The end
// column is measured from the literal's column over the full raw width, so a
// literal must be single-line for the span to be meaningful; multi-line block
// comments are split into per-line literals before construction.
func (l TrimmedLiteral) Span() span.Span {
	return span.Span{
		Start: span.Position{
			Line:   l.line,
			Column: l.column + l.pre,
		},
		End: span.Position{
			Line:   l.line + strings.Count(l.raw, "\n"),
			Column: l.column + utf8.RuneCountInString(l.raw) - l.post - 1,
		},
	}
}

// cutScalars drops pre scalars from the front of s and post from the back,
// returning the byte slice between them.
func cutScalars(s string, pre, post int) string {
	start := 0
	for i := 0; i < pre; i++ {
		_, size := utf8.DecodeRuneInString(s[start:])
		start += size
	}
	end := len(s)
	for i := 0; i < post; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:end])
		end -= size
	}
	return s[start:end]
}
