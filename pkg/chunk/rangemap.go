// Package chunk turns literal sets into checkable chunks: rendered content
// strings carrying an ordered range-to-span map back to the original file,
// with span lookup for sub-ranges and a Markdown-erased plain overlay.
package chunk

import "github.com/yaklabco/prosechunk/pkg/span"

// RangeSpan is one entry of a RangeMap: a byte range in rendered content
// paired with the inclusive source span it was rendered from.
type RangeSpan struct {
	Range span.Range
	Span  span.Span
}

// RangeMap is an insertion-ordered mapping from content ranges to source
// spans. Ranges are non-overlapping and inserted in ascending order; lookups
// walk the entries, which stay small (one per literal line).
type RangeMap struct {
	pairs []RangeSpan
}

// NewRangeMap returns an empty map.
func NewRangeMap() *RangeMap {
	return &RangeMap{}
}

// Put appends an entry. Callers are responsible for keeping ranges ascending
// and disjoint; the map preserves exactly the order given.
func (m *RangeMap) Put(r span.Range, s span.Span) {
	m.pairs = append(m.pairs, RangeSpan{Range: r, Span: s})
}

// Len returns the number of entries.
func (m *RangeMap) Len() int {
	return len(m.pairs)
}

// Pairs returns the entries in insertion order. The slice is shared; callers
// must not mutate it.
func (m *RangeMap) Pairs() []RangeSpan {
	return m.pairs
}

// Get returns the span recorded for exactly r.
func (m *RangeMap) Get(r span.Range) (span.Span, bool) {
	for _, p := range m.pairs {
		if p.Range == r {
			return p.Span, true
		}
	}
	return span.Span{}, false
}

// Equal reports whether two maps hold the same entries in the same order.
func (m *RangeMap) Equal(other *RangeMap) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i, p := range m.pairs {
		if other.pairs[i] != p {
			return false
		}
	}
	return true
}
