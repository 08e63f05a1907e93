// Package hook provides extensible pre/post change hooks for the field.
//
// Pre-change hooks run before an edit is processed and may veto it.
// Post-change hooks observe the applied result. Hooks are ordered by
// priority; higher priorities run first for pre-hooks and last for
// post-hooks.
package hook
