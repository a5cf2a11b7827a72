// Package span provides source coordinates for extracted prose: positions in
// 1-indexed lines and 0-indexed columns counted in Unicode scalar values,
// inclusive line/column spans, and half-open byte ranges into rendered content.
package span

import "fmt"

// Position is a location in a source file. Line is 1-indexed. Column is
// 0-indexed and counted in Unicode scalar values, never bytes.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if the position has a positive line and a
// non-negative column.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column >= 0
}

// Before returns true if p precedes other in (line, column) order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// String renders the position as "line:column" with the column shown
// 0-indexed, matching the rest of the tool's output.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is an inclusive region of a source file. End names the last scalar
// covered, not one past it.
type Span struct {
	Start Position
	End   Position
}

// IsValid returns true if both endpoints are valid and Start does not
// follow End.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && !s.End.Before(s.Start)
}

// IsSingleLine returns true if the span starts and ends on the same line.
func (s Span) IsSingleLine() bool {
	return s.Start.Line == s.End.Line
}

// ScalarLen returns the number of scalars covered by a single-line span.
// Multi-line spans have no flat scalar length and return 0.
func (s Span) ScalarLen() int {
	if !s.IsSingleLine() {
		return 0
	}
	return s.End.Column - s.Start.Column + 1
}

// String renders the span as "start..end".
func (s Span) String() string {
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}

// Range is a half-open [Start, End) byte interval into a rendered content
// string. Unlike Span it counts bytes, not scalars.
type Range struct {
	Start int
	End   int
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the given offset is within this range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// String renders the range as "start..end".
func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}
