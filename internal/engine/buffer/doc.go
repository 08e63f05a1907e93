// Package buffer provides the edit primitives for field text.
//
// The buffer package handles:
//
//   - Rune-indexed ranges via the Range type
//   - Single contiguous replace-in-place edits via the Edit type
//   - Pure application of an edit to a string with Apply
//
// All offsets are rune indices, not byte offsets. Field text is a short
// formatted phone number, so there is no backing structure: Apply derives
// a new string from the old one on every call and the package holds no
// state between calls.
package buffer
