package lua

import (
	"errors"
	"fmt"
	"os"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/dialfield/internal/engine/buffer"
)

// Errors returned by script loading.
var (
	// ErrMissingHandler indicates the script defines no on_before_change.
	ErrMissingHandler = errors.New("script does not define on_before_change")

	// ErrScriptClosed indicates use of a closed script.
	ErrScriptClosed = errors.New("script is closed")
)

// handlerName is the global function a script must define.
const handlerName = "on_before_change"

// pluginPriority places scripts in the plugin band of hook priorities.
const pluginPriority = 250

// Script is a loaded Lua change hook. It implements hook.PreChangeHook.
type Script struct {
	mu     sync.Mutex
	state  *lua.LState
	name   string
	closed bool
}

// Load compiles source in a sandboxed state and resolves its handler.
// name identifies the script in hook listings.
func Load(name, source string) (*Script, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("load script %s: %w", name, err)
	}
	if L.GetGlobal(handlerName).Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("script %s: %w", name, ErrMissingHandler)
	}
	return &Script{state: L, name: name}, nil
}

// LoadFile reads and loads a script from disk.
func LoadFile(path string) (*Script, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return Load(path, string(source))
}

// openSafeLibraries opens only safe Lua standard libraries.
// io, os, debug and package stay closed: no file system access, no
// system calls, no sandbox escape.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// Name implements hook.Hook.
func (s *Script) Name() string { return s.name }

// Priority implements hook.Hook.
func (s *Script) Priority() int { return pluginPriority }

// BeforeChange implements hook.PreChangeHook. The handler is called with
// (text, start, length, replacement); a falsy return vetoes the edit.
// Script errors fail open so a broken script cannot lock the field.
func (s *Script) BeforeChange(text string, edit buffer.Edit) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return true
	}

	err := s.state.CallByParam(lua.P{
		Fn:      s.state.GetGlobal(handlerName),
		NRet:    1,
		Protect: true,
	},
		lua.LString(text),
		lua.LNumber(edit.Range.Start),
		lua.LNumber(edit.Range.Len()),
		lua.LString(edit.NewText),
	)
	if err != nil {
		return true
	}

	ret := s.state.Get(-1)
	s.state.Pop(1)
	return lua.LVAsBool(ret)
}

// Close releases the Lua state. Safe to call more than once.
func (s *Script) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrScriptClosed
	}
	s.closed = true
	s.state.Close()
	return nil
}
