package source

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize scans a source string into an ordered token sequence. The scan is
// Rust-shaped: line and block comments (doc variants included) are single
// tokens, block comments nest, string and char literals are opaque so a "//"
// inside one never looks like a comment, whitespace runs coalesce, and
// anything else is an identifier, number, or single-scalar punctuation token.
func Tokenize(source string) []TokenWithLocation {
	var tokens []TokenWithLocation
	for i := 0; i < len(source); {
		end := i + tokenEnd(source[i:])
		tokens = append(tokens, TokenWithLocation{
			Content:  source[i:end],
			Location: i,
		})
		i = end
	}
	return tokens
}

// tokenEnd returns the byte length of the token starting at rest[0].
// rest is never empty.
func tokenEnd(rest string) int {
	r, size := utf8.DecodeRuneInString(rest)

	switch {
	case strings.HasPrefix(rest, lineCommentPrefix):
		return lineCommentEnd(rest)
	case strings.HasPrefix(rest, blockCommentPrefix):
		return blockCommentEnd(rest)
	case unicode.IsSpace(r):
		return spaceEnd(rest)
	case r == '"':
		return stringEnd(rest)
	case r == 'r' && isRawStringStart(rest):
		return rawStringEnd(rest)
	case r == '\'':
		return charOrLifetimeEnd(rest)
	case isIdentStart(r):
		return identEnd(rest)
	case unicode.IsDigit(r):
		return numberEnd(rest)
	default:
		return size
	}
}

// lineCommentEnd ends at the line's newline, exclusive, or at EOF.
func lineCommentEnd(rest string) int {
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return i
	}
	return len(rest)
}

// blockCommentEnd scans a nesting-aware block comment. An unterminated
// comment runs to EOF and is later classified as Other.
func blockCommentEnd(rest string) int {
	depth := 1
	i := len(blockCommentPrefix)
	for i < len(rest) {
		switch {
		case strings.HasPrefix(rest[i:], blockCommentPrefix):
			depth++
			i += len(blockCommentPrefix)
		case strings.HasPrefix(rest[i:], blockCommentPostfix):
			depth--
			i += len(blockCommentPostfix)
			if depth == 0 {
				return i
			}
		default:
			_, size := utf8.DecodeRuneInString(rest[i:])
			i += size
		}
	}
	return len(rest)
}

func spaceEnd(rest string) int {
	for i, r := range rest {
		if !unicode.IsSpace(r) {
			return i
		}
	}
	return len(rest)
}

// stringEnd scans a conventional string literal, honoring backslash escapes.
// Byte iteration is safe here: UTF-8 continuation bytes never equal '"' or
// '\\', so multibyte content cannot terminate the literal early.
func stringEnd(rest string) int {
	for i := 1; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(rest)
}

// isRawStringStart reports whether rest begins a raw string literal,
// r"..." or r#"..."# with any number of hashes.
func isRawStringStart(rest string) bool {
	i := 1
	for i < len(rest) && rest[i] == '#' {
		i++
	}
	return i < len(rest) && rest[i] == '"'
}

func rawStringEnd(rest string) int {
	hashes := 0
	for rest[1+hashes] == '#' {
		hashes++
	}
	body := 1 + hashes + 1
	closing := `"` + strings.Repeat("#", hashes)
	if i := strings.Index(rest[body:], closing); i >= 0 {
		return body + i + len(closing)
	}
	return len(rest)
}

// charOrLifetimeEnd disambiguates char literals ('x', '\n') from lifetimes
// and labels ('a, 'static). A lone quote falls back to punctuation.
func charOrLifetimeEnd(rest string) int {
	if len(rest) < 2 {
		return 1
	}
	if rest[1] == '\\' {
		for i := 2; i < len(rest); i++ {
			switch rest[i] {
			case '\\':
				i++
			case '\'':
				return i + 1
			}
		}
		return len(rest)
	}

	c, size := utf8.DecodeRuneInString(rest[1:])
	after := 1 + size
	if after < len(rest) && rest[after] == '\'' {
		return after + 1
	}
	if isIdentStart(c) {
		return 1 + identEnd(rest[1:])
	}
	return 1
}

func identEnd(rest string) int {
	for i, r := range rest {
		if !isIdentPart(r) {
			return i
		}
	}
	return len(rest)
}

// numberEnd consumes a numeric literal loosely: the leading digit plus any
// following identifier scalars, which covers hex, underscores, and suffixes.
func numberEnd(rest string) int {
	_, size := utf8.DecodeRuneInString(rest)
	return size + identEnd(rest[size:])
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
