// Package digits defines the accepted character set for phone entry and
// derives the raw digit stream from edited field text.
//
// The character class is an explicit predicate over ASCII rather than a
// locale-aware classification so behavior is identical everywhere: the
// accepted set is '0'-'9' plus a '+' permitted only in the leading
// position when the field allows an international prefix.
package digits

// IsDigit returns true for the ASCII decimal digits '0'-'9'.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsAccepted returns true if the rune belongs to the accepted set.
// leading indicates whether the rune would be the first accepted character
// and leadingPlus whether the field permits an international prefix.
func IsAccepted(r rune, leading, leadingPlus bool) bool {
	if IsDigit(r) {
		return true
	}
	return r == '+' && leading && leadingPlus
}

// Filter returns the raw digit stream for text: every accepted character
// in order, with at most one leading '+' retained when leadingPlus is set.
// The stream is derived fresh on every call.
func Filter(text string, leadingPlus bool) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if IsAccepted(r, len(out) == 0, leadingPlus) {
			out = append(out, r)
		}
	}
	return string(out)
}

// Count returns the number of digit runes in text, ignoring any prefix
// marker and punctuation.
func Count(text string) int {
	n := 0
	for _, r := range text {
		if IsDigit(r) {
			n++
		}
	}
	return n
}
