// Package format renders a raw digit stream as display text.
//
// The field treats its formatter as a black-box collaborator: FormatPartial
// must be pure and total, never blocking and never failing. Every
// implementation preserves digit identity and order; only punctuation is
// inserted or removed. Implementations that cannot format a given stream
// degrade to returning it unchanged rather than erroring.
//
// Three formatters are provided:
//
//   - Passthrough returns the digit stream as-is.
//   - Pattern applies deterministic progressive grouping with no metadata.
//   - Libphone renders complete, valid numbers via libphonenumber and
//     delegates partial input to Pattern.
package format
