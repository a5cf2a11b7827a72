// Package literal represents single lines of comment prose: trimmed literals
// that remember their delimiter widths and exact source span, and sets of
// line-adjacent literals that form one continuous block of prose.
package literal

import "unicode/utf8"

// CommentVariant names the comment syntax a literal was carved out of.
// Delimiter widths are always passed explicitly at construction; the variant
// is a tag for callers that want to distinguish comment syntaxes when
// rendering or filtering.
type CommentVariant int

const (
	// VariantUnknown carries no implied delimiters.
	VariantUnknown CommentVariant = iota

	// VariantDoubleSlash is a plain "//" comment.
	VariantDoubleSlash

	// VariantTripleSlash is a "///" outer doc comment.
	VariantTripleSlash

	// VariantDoubleSlashBang is a "//!" inner doc comment.
	VariantDoubleSlashBang

	// VariantSlashAsterisk is a plain "/* ... */" comment.
	VariantSlashAsterisk

	// VariantSlashAsteriskAsterisk is a "/** ... */" outer doc comment.
	VariantSlashAsteriskAsterisk

	// VariantSlashAsteriskBang is a "/*! ... */" inner doc comment.
	VariantSlashAsteriskBang
)

// variantDelimiters maps each variant to its delimiter pair.
//
//nolint:gochecknoglobals // fixed lookup table
var variantDelimiters = map[CommentVariant][2]string{
	VariantUnknown:               {"", ""},
	VariantDoubleSlash:           {"//", ""},
	VariantTripleSlash:           {"///", ""},
	VariantDoubleSlashBang:       {"//!", ""},
	VariantSlashAsterisk:         {"/*", "*/"},
	VariantSlashAsteriskAsterisk: {"/**", "*/"},
	VariantSlashAsteriskBang:     {"/*!", "*/"},
}

// Prefix returns the variant's opening delimiter.
func (v CommentVariant) Prefix() string {
	return variantDelimiters[v][0]
}

// Postfix returns the variant's closing delimiter.
func (v CommentVariant) Postfix() string {
	return variantDelimiters[v][1]
}

// PrefixScalars returns the opening delimiter width in Unicode scalars.
func (v CommentVariant) PrefixScalars() int {
	return utf8.RuneCountInString(v.Prefix())
}

// PostfixScalars returns the closing delimiter width in Unicode scalars.
func (v CommentVariant) PostfixScalars() int {
	return utf8.RuneCountInString(v.Postfix())
}

// IsDoc reports whether the variant is one of the doc comment syntaxes.
func (v CommentVariant) IsDoc() bool {
	switch v {
	case VariantTripleSlash, VariantDoubleSlashBang,
		VariantSlashAsteriskAsterisk, VariantSlashAsteriskBang:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (v CommentVariant) String() string {
	switch v {
	case VariantDoubleSlash:
		return "//"
	case VariantTripleSlash:
		return "///"
	case VariantDoubleSlashBang:
		return "//!"
	case VariantSlashAsterisk:
		return "/* */"
	case VariantSlashAsteriskAsterisk:
		return "/** */"
	case VariantSlashAsteriskBang:
		return "/*! */"
	default:
		return "unknown"
	}
}
