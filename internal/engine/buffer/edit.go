package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by edit application.
var (
	ErrRangeInvalid = errors.New("edit range out of bounds")
)

// Edit represents a single contiguous replace-in-place operation.
// An insertion has an empty range; a deletion has empty NewText.
type Edit struct {
	Range   Range  // The range to replace
	NewText string // The replacement text
}

// NewEdit creates a new Edit.
func NewEdit(r Range, newText string) Edit {
	return Edit{Range: r, NewText: newText}
}

// NewInsert creates an Edit that inserts text at an offset.
func NewInsert(offset Offset, text string) Edit {
	return Edit{
		Range:   Range{Start: offset, End: offset},
		NewText: text,
	}
}

// NewDelete creates an Edit that deletes a range of text.
func NewDelete(start, end Offset) Edit {
	return Edit{
		Range:   Range{Start: start, End: end},
		NewText: "",
	}
}

// IsInsert returns true if this is a pure insertion (empty range).
func (e Edit) IsInsert() bool {
	return e.Range.IsEmpty() && e.NewText != ""
}

// IsDelete returns true if this is a pure deletion (empty replacement).
func (e Edit) IsDelete() bool {
	return !e.Range.IsEmpty() && e.NewText == ""
}

// IsReplace returns true if this replaces existing text with new text.
func (e Edit) IsReplace() bool {
	return !e.Range.IsEmpty() && e.NewText != ""
}

// IsNoOp returns true if this edit does nothing.
func (e Edit) IsNoOp() bool {
	return e.Range.IsEmpty() && e.NewText == ""
}

// Delta returns the change in text length (in runes) caused by this edit.
func (e Edit) Delta() Offset {
	return len([]rune(e.NewText)) - e.Range.Len()
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range.String())
	}
	return fmt.Sprintf("Replace%s with %q", e.Range.String(), e.NewText)
}

// Apply returns the text produced by applying the edit.
// Returns ErrRangeInvalid if the edit's range does not fit the text.
func Apply(text string, e Edit) (string, error) {
	runes := []rune(text)
	if !e.Range.IsValid(len(runes)) {
		return "", fmt.Errorf("%w: %s in text of %d runes", ErrRangeInvalid, e.Range, len(runes))
	}
	out := make([]rune, 0, len(runes)+e.Delta())
	out = append(out, runes[:e.Range.Start]...)
	out = append(out, []rune(e.NewText)...)
	out = append(out, runes[e.Range.End:]...)
	return string(out), nil
}

// Deleted returns the text removed by the edit, or an empty string if the
// edit's range does not fit the text.
func Deleted(text string, e Edit) string {
	runes := []rune(text)
	if !e.Range.IsValid(len(runes)) {
		return ""
	}
	return string(runes[e.Range.Start:e.Range.End])
}
