package field

import (
	"github.com/dshills/dialfield/internal/config"
	"github.com/dshills/dialfield/internal/engine/anchor"
	"github.com/dshills/dialfield/internal/engine/buffer"
	"github.com/dshills/dialfield/internal/engine/digits"
	"github.com/dshills/dialfield/internal/event"
	"github.com/dshills/dialfield/internal/format"
	"github.com/dshills/dialfield/internal/hook"
)

// Result is the outcome of one edit.
type Result struct {
	// Accept reports whether the edit may proceed at all. False means
	// the host must make no change.
	Accept bool

	// Handled reports that the field performed the replacement itself.
	// The host must suppress its default text change and instead set
	// Text and Cursor. When false and Accept is true, the host applies
	// the edit as typed.
	Handled bool

	// Text is the new field text when Handled is set.
	Text string

	// Cursor is the new cursor offset (rune index) when Handled is set.
	// Always within [0, len(Text)].
	Cursor int
}

// reject is the make-no-changes result.
func reject() Result {
	return Result{}
}

// passthrough accepts the edit as typed, leaving the replacement to the
// host's default behavior.
func passthrough() Result {
	return Result{Accept: true}
}

// Field processes edits for one phone entry field.
type Field struct {
	cfg       config.Config
	formatter format.Formatter
	notifier  *event.Notifier
	pre       []hook.PreChangeHook
	post      []hook.PostChangeHook
}

// Option configures a Field.
type Option func(*Field)

// WithFormatter sets the formatter collaborator.
func WithFormatter(f format.Formatter) Option {
	return func(fl *Field) {
		fl.formatter = f
	}
}

// WithConfig sets the field configuration.
func WithConfig(cfg config.Config) Option {
	return func(fl *Field) {
		fl.cfg = cfg
	}
}

// New creates a Field. Without options it formats for the default
// configuration using the pattern formatter.
func New(opts ...Option) *Field {
	f := &Field{
		cfg:      config.Default(),
		notifier: event.NewNotifier(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.formatter == nil {
		f.formatter = format.NewPattern(f.cfg.Region)
	}
	f.applyConfig()
	return f
}

// Config returns the current configuration.
func (f *Field) Config() config.Config {
	return f.cfg
}

// SetConfig validates and installs a new configuration, re-applying it to
// the formatter collaborator.
func (f *Field) SetConfig(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	f.cfg = cfg
	f.applyConfig()
	return nil
}

func (f *Field) applyConfig() {
	if c, ok := f.formatter.(format.Configurable); ok {
		// A formatter that rejects its configuration keeps its prior
		// settings; formatting itself never fails.
		_ = c.Configure(f.cfg)
	}
}

// Notifier returns the change notifier for subscribing to applied edits.
func (f *Field) Notifier() *event.Notifier {
	return f.notifier
}

// AddPreChangeHook registers a veto hook. Higher priorities run first.
func (f *Field) AddPreChangeHook(h hook.PreChangeHook) {
	f.pre = append(f.pre, h)
	hook.SortPre(f.pre)
}

// AddPostChangeHook registers an observer hook. Higher priorities run last.
func (f *Field) AddPostChangeHook(h hook.PostChangeHook) {
	f.post = append(f.post, h)
	hook.SortPost(f.post)
}

// ShouldChangeText processes one edit against the current text and cursor.
// See Result for how the host must interpret the outcome.
func (f *Field) ShouldChangeText(text string, cursor int, edit buffer.Edit) Result {
	// Autofill allowance: a single blank inserted into empty text goes
	// through untouched so host-side autofill is not fought.
	if text == "" && edit.IsInsert() && edit.Range.Start == 0 && edit.NewText == " " {
		return passthrough()
	}

	// External veto before any processing.
	for _, h := range f.pre {
		if !h.BeforeChange(text, edit) {
			return reject()
		}
	}

	if !f.cfg.Reformat {
		return passthrough()
	}

	candidate, err := buffer.Apply(text, edit)
	if err != nil {
		return reject()
	}

	raw := digits.Filter(candidate, f.cfg.AllowLeadingPlus)
	if f.cfg.MaxDigits > 0 && digits.Count(raw) > f.cfg.MaxDigits {
		return reject()
	}

	// Backspacing over punctuation keeps the candidate text as-is so the
	// next backspace reaches the digit behind it. Everything else is
	// re-derived from the digit stream.
	var newText string
	if f.deletesThroughPunctuation(text, edit) {
		newText = candidate
	} else {
		newText = f.formatPartial(raw)
	}

	newCursor := len([]rune(newText))
	if a, ok := anchor.Extract(text, cursor); ok {
		if idx, ok := anchor.Relocate(newText, a); ok {
			newCursor = idx
		}
	}
	if newCursor < 0 {
		newCursor = 0
	}
	if max := len([]rune(newText)); newCursor > max {
		newCursor = max
	}

	change := event.Change{
		OldText:   text,
		NewText:   newText,
		OldCursor: cursor,
		NewCursor: newCursor,
	}
	f.notifier.Publish(change)
	for _, h := range f.post {
		h.AfterChange(change)
	}

	return Result{Accept: true, Handled: true, Text: newText, Cursor: newCursor}
}

// deletesThroughPunctuation reports whether the edit is a single-rune
// backward deletion of a non-digit. Range deletions spanning several
// runes always reformat through the formatter.
func (f *Field) deletesThroughPunctuation(text string, edit buffer.Edit) bool {
	if !edit.IsDelete() || edit.Range.Len() != 1 {
		return false
	}
	deleted := buffer.Deleted(text, edit)
	if deleted == "" {
		return false
	}
	return !digits.IsDigit([]rune(deleted)[0])
}

// formatPartial calls the formatter collaborator, degrading to the raw
// digit stream if the formatter panics. The edit must never fail the host.
func (f *Field) formatPartial(raw string) (out string) {
	defer func() {
		if recover() != nil {
			out = raw
		}
	}()
	return f.formatter.FormatPartial(raw)
}
