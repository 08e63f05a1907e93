// Package field orchestrates live reformatting of phone entry.
//
// The host calls ShouldChangeText with the current text, the current
// cursor offset, and the proposed edit on every keystroke. Each call runs
// to completion before the next: capture the cursor anchor from the
// pre-edit text, apply the edit, filter the result to its raw digit
// stream, hand the stream to the formatter collaborator, then relocate
// the anchor in the formatted text so the cursor stays on the same
// logical digit. The Result tells the host whether the edit was accepted
// and, when the field handled it, the replacement text and cursor to set
// in place of the host's default behavior.
//
// The field holds configuration, hooks, and a notifier, but no text: the
// host owns the buffer and the field re-derives everything per call.
package field
