package hook

import (
	"sort"

	"github.com/dshills/dialfield/internal/engine/buffer"
	"github.com/dshills/dialfield/internal/event"
)

// Hook is the base interface for all change hooks.
type Hook interface {
	// Name returns a unique identifier for this hook.
	Name() string

	// Priority returns the hook priority.
	// Higher values run first for pre-hooks, last for post-hooks.
	// Standard priorities:
	//   1000+ = system/critical hooks
	//   500-999 = framework hooks
	//   100-499 = plugin hooks
	//   0-99 = user hooks
	Priority() int
}

// PreChangeHook is called before an edit is processed.
type PreChangeHook interface {
	Hook

	// BeforeChange is called with the current text and the proposed edit.
	// Returns false to veto the edit.
	BeforeChange(text string, edit buffer.Edit) bool
}

// PostChangeHook is called after a change has been applied.
type PostChangeHook interface {
	Hook

	// AfterChange observes the applied change.
	AfterChange(change event.Change)
}

// PreChangeFunc wraps a function as a PreChangeHook.
type PreChangeFunc struct {
	name     string
	priority int
	fn       func(text string, edit buffer.Edit) bool
}

// NewPreChangeFunc creates a new PreChangeFunc hook.
func NewPreChangeFunc(name string, priority int, fn func(text string, edit buffer.Edit) bool) *PreChangeFunc {
	return &PreChangeFunc{
		name:     name,
		priority: priority,
		fn:       fn,
	}
}

// Name implements Hook.
func (f *PreChangeFunc) Name() string { return f.name }

// Priority implements Hook.
func (f *PreChangeFunc) Priority() int { return f.priority }

// BeforeChange implements PreChangeHook.
func (f *PreChangeFunc) BeforeChange(text string, edit buffer.Edit) bool {
	if f.fn == nil {
		return true
	}
	return f.fn(text, edit)
}

// PostChangeFunc wraps a function as a PostChangeHook.
type PostChangeFunc struct {
	name     string
	priority int
	fn       func(change event.Change)
}

// NewPostChangeFunc creates a new PostChangeFunc hook.
func NewPostChangeFunc(name string, priority int, fn func(change event.Change)) *PostChangeFunc {
	return &PostChangeFunc{
		name:     name,
		priority: priority,
		fn:       fn,
	}
}

// Name implements Hook.
func (f *PostChangeFunc) Name() string { return f.name }

// Priority implements Hook.
func (f *PostChangeFunc) Priority() int { return f.priority }

// AfterChange implements PostChangeHook.
func (f *PostChangeFunc) AfterChange(change event.Change) {
	if f.fn != nil {
		f.fn(change)
	}
}

// SortPre orders pre-change hooks so higher priorities run first.
// This mutates the input slice. Equal priorities keep insertion order.
func SortPre(hooks []PreChangeHook) {
	sort.SliceStable(hooks, func(i, j int) bool {
		return hooks[i].Priority() > hooks[j].Priority()
	})
}

// SortPost orders post-change hooks so higher priorities run last.
// This mutates the input slice. Equal priorities keep insertion order.
func SortPost(hooks []PostChangeHook) {
	sort.SliceStable(hooks, func(i, j int) bool {
		return hooks[i].Priority() < hooks[j].Priority()
	})
}
