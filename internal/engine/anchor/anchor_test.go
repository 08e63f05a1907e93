package anchor

import "testing"

func TestExtractFirstDigitAfterCursor(t *testing.T) {
	// Cursor before the '-' in "(412) 555-121": first digit after is the
	// '1' at offset 10, and '1' occurs twice from there to the end.
	a, ok := Extract("(412) 555-121", 9)
	if !ok {
		t.Fatal("expected an anchor")
	}
	if a.Char != '1' || a.FromEnd != 2 {
		t.Errorf("expected {'1', 2}, got {%q, %d}", a.Char, a.FromEnd)
	}
}

func TestExtractSkipsPunctuation(t *testing.T) {
	// Cursor before ") ": the next digit is the '5' at offset 6, which
	// occurs three times through the end.
	a, ok := Extract("(412) 555", 4)
	if !ok {
		t.Fatal("expected an anchor")
	}
	if a.Char != '5' || a.FromEnd != 3 {
		t.Errorf("expected {'5', 3}, got {%q, %d}", a.Char, a.FromEnd)
	}
}

func TestExtractCursorAtEnd(t *testing.T) {
	if _, ok := Extract("(412) 555-1212", 14); ok {
		t.Error("cursor at end of text should yield no anchor")
	}
}

func TestExtractOnlyTrailingPunctuation(t *testing.T) {
	if _, ok := Extract("(412) ", 5); ok {
		t.Error("trailing punctuation only should yield no anchor")
	}
}

func TestExtractPlusNeverAnchors(t *testing.T) {
	// '+' is accepted input but not an anchor target; with nothing after
	// it, there is no anchor.
	if _, ok := Extract("+", 0); ok {
		t.Error("'+' should not qualify as an anchor")
	}

	// With digits after the '+', the first digit anchors instead.
	a, ok := Extract("+14", 0)
	if !ok {
		t.Fatal("expected an anchor")
	}
	if a.Char != '1' || a.FromEnd != 1 {
		t.Errorf("expected {'1', 1}, got {%q, %d}", a.Char, a.FromEnd)
	}
}

func TestExtractEmptyText(t *testing.T) {
	if _, ok := Extract("", 0); ok {
		t.Error("empty text should yield no anchor")
	}
}

func TestExtractNegativeCursorClamps(t *testing.T) {
	a, ok := Extract("412", -3)
	if !ok {
		t.Fatal("expected an anchor")
	}
	if a.Char != '4' || a.FromEnd != 1 {
		t.Errorf("expected {'4', 1}, got {%q, %d}", a.Char, a.FromEnd)
	}
}

func TestRelocateCountsFromEnd(t *testing.T) {
	// Second-from-end '1' in "(412) 555-2121" is at offset 11.
	got, ok := Relocate("(412) 555-2121", Anchor{Char: '1', FromEnd: 2})
	if !ok {
		t.Fatal("expected relocation to succeed")
	}
	if got != 11 {
		t.Errorf("expected offset 11, got %d", got)
	}
}

func TestRelocateStopsAtFirstSatisfyingMatch(t *testing.T) {
	// Four '5's; the scan must return the 2nd from the end, not keep going.
	got, ok := Relocate("5555", Anchor{Char: '5', FromEnd: 2})
	if !ok {
		t.Fatal("expected relocation to succeed")
	}
	if got != 2 {
		t.Errorf("expected offset 2, got %d", got)
	}
}

func TestRelocateTooFewOccurrences(t *testing.T) {
	if _, ok := Relocate("(412) 555", Anchor{Char: '9', FromEnd: 1}); ok {
		t.Error("expected failure when the rune is absent")
	}
	if _, ok := Relocate("121", Anchor{Char: '1', FromEnd: 3}); ok {
		t.Error("expected failure when occurrences fall short")
	}
}

func TestRelocateInvalidAnchor(t *testing.T) {
	if _, ok := Relocate("412", Anchor{}); ok {
		t.Error("zero-value anchor should not relocate")
	}
}

// Round trip: on unchanged text, relocating an extracted anchor lands on
// the exact rune the extractor found.
func TestExtractRelocateRoundTrip(t *testing.T) {
	texts := []string{
		"(412) 555-1212",
		"+1 412-555-1212",
		"412555",
		"07911 123456",
	}
	for _, text := range texts {
		runes := []rune(text)
		for cursor := 0; cursor <= len(runes); cursor++ {
			a, ok := Extract(text, cursor)
			if !ok {
				continue
			}
			got, ok := Relocate(text, a)
			if !ok {
				t.Errorf("%q cursor %d: relocation failed", text, cursor)
				continue
			}
			// The expected landing spot is the first digit at or
			// after the cursor.
			want := -1
			for i := cursor; i < len(runes); i++ {
				if runes[i] >= '0' && runes[i] <= '9' {
					want = i
					break
				}
			}
			if got != want {
				t.Errorf("%q cursor %d: expected offset %d, got %d", text, cursor, want, got)
			}
		}
	}
}
