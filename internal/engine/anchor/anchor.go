package anchor

import (
	"github.com/dshills/dialfield/internal/engine/digits"
)

// Anchor identifies a logical digit position in field text.
// Anchor is an immutable value type.
type Anchor struct {
	// Char is the anchored rune.
	Char rune
	// FromEnd is how many occurrences of Char exist from the anchored
	// position through the end of the text, inclusive. Always >= 1.
	FromEnd int
}

// Extract finds the anchor for the given text and cursor offset: the first
// digit at or after cursor, counted by occurrences of that rune through the
// end of the text. A leading '+' is accepted elsewhere in the pipeline but
// never qualifies as an anchor target.
//
// Returns false if no digit exists at or after the cursor; the caller
// degrades to end-of-text placement.
func Extract(text string, cursor int) (Anchor, bool) {
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	for i := cursor; i < len(runes); i++ {
		if !digits.IsDigit(runes[i]) {
			continue
		}
		count := 0
		for j := i; j < len(runes); j++ {
			if runes[j] == runes[i] {
				count++
			}
		}
		return Anchor{Char: runes[i], FromEnd: count}, true
	}
	return Anchor{}, false
}

// Relocate returns the offset of the anchored rune in newly formatted text.
// It scans from the last rune backward, counting occurrences of a.Char, and
// returns the index at which the running count reaches a.FromEnd.
//
// Returns false if newText holds fewer occurrences than the anchor expects;
// the caller degrades to end-of-text placement.
func Relocate(newText string, a Anchor) (int, bool) {
	if a.FromEnd < 1 {
		return 0, false
	}
	runes := []rune(newText)
	count := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] != a.Char {
			continue
		}
		count++
		if count == a.FromEnd {
			return i, true
		}
	}
	return 0, false
}
