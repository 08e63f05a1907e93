// Package lua runs user scripts as field change hooks.
//
// A script defines a single function:
//
//	function on_before_change(text, start, length, replacement)
//	    return true  -- allow the edit
//	end
//
// It receives the current field text, the edit's start offset, the length
// of the replaced range, and the replacement text, and returns false to
// veto the edit. The Lua state is sandboxed: only the base, table, string
// and math libraries are opened, so scripts cannot reach the file system
// or spawn processes. A script error fails open (the edit is allowed).
//
// LState is not goroutine-safe; Script serializes calls with a mutex,
// which is sufficient under the field's one-edit-at-a-time model.
package lua
