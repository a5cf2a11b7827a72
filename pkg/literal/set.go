package literal

import "github.com/yaklabco/prosechunk/pkg/span"

// Set is a non-empty ordered sequence of literals on consecutive source
// lines, together forming one continuous block of prose.
type Set struct {
	literals []TrimmedLiteral
}

// NewSet opens a set containing a single literal.
func NewSet(first TrimmedLiteral) *Set {
	return &Set{literals: []TrimmedLiteral{first}}
}

// AddAdjacent appends l if it sits exactly one line below the set's last
// literal and reports whether it was absorbed. On false the caller still
// holds l unchanged and should open a new set for it.
func (s *Set) AddAdjacent(l TrimmedLiteral) bool {
	last := s.literals[len(s.literals)-1]
	if l.Line() != last.Line()+1 {
		return false
	}
	s.literals = append(s.literals, l)
	return true
}

// Len returns the number of literals in the set.
func (s *Set) Len() int {
	return len(s.literals)
}

// Literals returns the set's literals in order. The slice is shared; callers
// must not mutate it.
func (s *Set) Literals() []TrimmedLiteral {
	return s.literals
}

// CoverageSpan returns the region from the first literal's start to the last
// literal's end, which is the set's position for source-order sorting.
func (s *Set) CoverageSpan() span.Span {
	return span.Span{
		Start: s.literals[0].Span().Start,
		End:   s.literals[len(s.literals)-1].Span().End,
	}
}
