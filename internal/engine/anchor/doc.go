// Package anchor keeps the cursor stable across reformatting.
//
// When field text is re-derived from its digit stream, punctuation shifts
// but digit identity and order are preserved. The anchor exploits that:
// the first digit strictly after the cursor, identified by how many times
// that exact rune occurs from there through the end of the string, names
// the same logical position in any reformatted rendering of the text.
//
// Extract captures the anchor from the pre-edit text and cursor. Relocate
// finds the matching offset in the newly formatted text by scanning from
// the end backward until the occurrence count is met.
//
// Both functions are pure. An Anchor is scoped to a single reformat call
// and is never persisted across edits.
package anchor
