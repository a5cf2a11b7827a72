package source

import "regexp"

// Developer comment recognizers. Both must match the full token content. The
// line comment class rejects the "///" and "//!" doc forms; closed block
// comments additionally go through the doc-style check below so "/** */" and
// "/*! */" never classify as developer comments.
//
//nolint:gochecknoglobals // compiled once, read-only after init
var (
	blockCommentPattern = regexp.MustCompile(`^/\*(?s)(?P<content>.*)\*/$`)
	lineCommentPattern  = regexp.MustCompile(`^//[^/!].*$`)
)

// ClassifyToken tags a token by matching its content against the developer
// comment patterns. Classification is a pure function of the content.
func ClassifyToken(token TokenWithLineColumn) TokenWithKind {
	kind := KindOther
	switch {
	case IsBlockComment(token.Content):
		kind = KindBlockComment
	case lineCommentPattern.MatchString(token.Content):
		kind = KindLineComment
	}
	return TokenWithKind{
		Kind:    kind,
		Content: token.Content,
		Line:    token.Line,
		Column:  token.Column,
	}
}

// Classify tags every token in order.
func Classify(tokens []TokenWithLineColumn) []TokenWithKind {
	out := make([]TokenWithKind, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, ClassifyToken(t))
	}
	return out
}

// RetainDeveloperComments drops every token that is not a developer comment.
func RetainDeveloperComments(tokens []TokenWithKind) []TokenWithKind {
	out := make([]TokenWithKind, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != KindOther {
			out = append(out, t)
		}
	}
	return out
}

// IsBlockComment reports whether content is a closed, non-doc block comment.
func IsBlockComment(content string) bool {
	return blockCommentPattern.MatchString(content) && !isDocBlock(content)
}

// isDocBlock applies the Rust doc-comment rule to a string known to start
// with "/*" and end with "*/": "/*!" is always a doc comment, "/**" is one
// unless the next character is another '*' or the closing '/', which keeps
// "/**/" and "/***/" plain.
func isDocBlock(content string) bool {
	switch content[2] {
	case '!':
		return true
	case '*':
		return content[3] != '*' && content[3] != '/'
	default:
		return false
	}
}
