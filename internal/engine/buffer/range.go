package buffer

import "fmt"

// Offset is a rune index into field text.
type Offset = int

// Range is a half-open span [Start, End) of rune offsets.
type Range struct {
	Start Offset
	End   Offset
}

// NewRange creates a range, swapping the endpoints if they are reversed.
func NewRange(start, end Offset) Range {
	if start > end {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// Len returns the number of runes spanned by the range.
func (r Range) Len() Offset {
	return r.End - r.Start
}

// IsEmpty returns true if the range spans no runes.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the offset falls within the range.
func (r Range) Contains(offset Offset) bool {
	return offset >= r.Start && offset < r.End
}

// IsValid returns true if the range is well formed and fits within a text
// of textLen runes.
func (r Range) IsValid(textLen int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= textLen
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
