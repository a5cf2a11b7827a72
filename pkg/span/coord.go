package span

import (
	"strings"
	"unicode/utf8"
)

// LineOf returns the 1-indexed line on which the last character of fragment
// sits. The fragment is the source prefix up to, but not including, a byte
// offset; LineOf("") is 1.
func LineOf(fragment string) int {
	return strings.Count(fragment, "\n") + 1
}

// ColumnOf returns the 0-indexed column, in Unicode scalars, of the character
// just after fragment. With no newline in the fragment that is simply its
// scalar count; otherwise it is the number of scalars after the last newline.
// ColumnOf("") is 0.
func ColumnOf(fragment string) int {
	p := strings.LastIndexByte(fragment, '\n')
	if p < 0 {
		return utf8.RuneCountInString(fragment)
	}
	return utf8.RuneCountInString(fragment) - utf8.RuneCountInString(fragment[:p]) - 1
}

// PositionOf combines LineOf and ColumnOf for the prefix source[:offset].
// The offset must lie on a scalar boundary within source.
func PositionOf(source string, offset int) Position {
	prefix := source[:offset]
	return Position{Line: LineOf(prefix), Column: ColumnOf(prefix)}
}
