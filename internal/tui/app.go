package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/dialfield/internal/engine/buffer"
	"github.com/dshills/dialfield/internal/engine/digits"
	"github.com/dshills/dialfield/internal/engine/field"
	"github.com/dshills/dialfield/internal/format"
)

const prompt = "Phone: "

// App drives one phone entry field on a tcell screen.
type App struct {
	screen    tcell.Screen
	field     *field.Field
	validator *format.Libphone

	text   string
	cursor int
}

// Option configures an App.
type Option func(*App)

// WithValidator enables the validity status line.
func WithValidator(v *format.Libphone) Option {
	return func(a *App) {
		a.validator = v
	}
}

// WithScreen supplies a screen, primarily for tests using tcell's
// simulation screen.
func WithScreen(s tcell.Screen) Option {
	return func(a *App) {
		a.screen = s
	}
}

// New creates an App around the given field.
func New(f *field.Field, opts ...Option) *App {
	a := &App{field: f}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Text returns the current field text.
func (a *App) Text() string {
	return a.text
}

// Cursor returns the current cursor offset in runes.
func (a *App) Cursor() int {
	return a.cursor
}

// Run takes over the screen until the user quits with Escape or Ctrl-C.
func (a *App) Run() error {
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		a.screen = screen
	}
	if err := a.screen.Init(); err != nil {
		return err
	}
	defer a.screen.Fini()

	a.draw()
	for {
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return nil
			}
		case nil:
			// Screen finalized.
			return nil
		}
		a.draw()
	}
}

// handleKey processes one key event. Returns true to quit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	textLen := len([]rune(a.text))

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		if a.cursor > 0 {
			a.cursor--
		}
	case tcell.KeyRight:
		if a.cursor < textLen {
			a.cursor++
		}
	case tcell.KeyHome, tcell.KeyCtrlA:
		a.cursor = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		a.cursor = textLen
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if a.cursor > 0 {
			a.apply(buffer.NewDelete(a.cursor-1, a.cursor))
		}
	case tcell.KeyDelete:
		if a.cursor < textLen {
			a.apply(buffer.NewDelete(a.cursor, a.cursor+1))
		}
	case tcell.KeyCtrlU:
		if textLen > 0 {
			a.apply(buffer.NewDelete(0, textLen))
		}
	case tcell.KeyRune:
		a.apply(buffer.NewInsert(a.cursor, string(ev.Rune())))
	}
	return false
}

// apply routes an edit through the field and installs the outcome.
func (a *App) apply(edit buffer.Edit) {
	res := a.field.ShouldChangeText(a.text, a.cursor, edit)
	if !res.Accept {
		return
	}
	if res.Handled {
		a.text = res.Text
		a.cursor = res.Cursor
		return
	}
	// Accepted as typed: perform the host-side default replacement.
	candidate, err := buffer.Apply(a.text, edit)
	if err != nil {
		return
	}
	a.text = candidate
	a.cursor = edit.Range.Start + len([]rune(edit.NewText))
}

func (a *App) draw() {
	a.screen.Clear()

	style := tcell.StyleDefault
	drawString(a.screen, 0, 0, style.Bold(true), prompt)
	drawString(a.screen, len(prompt), 0, style, a.text)
	a.screen.ShowCursor(len(prompt)+a.cursor, 0)

	if a.validator != nil {
		drawString(a.screen, 0, 2, style.Dim(true), a.status())
	}
	drawString(a.screen, 0, 4, style.Dim(true), "Esc to quit")

	a.screen.Show()
}

// status describes the current entry for the status line.
func (a *App) status() string {
	raw := digits.Filter(a.text, a.field.Config().AllowLeadingPlus)
	if raw == "" {
		return "enter a phone number"
	}
	e164, err := a.validator.E164(raw)
	if err != nil {
		return "incomplete"
	}
	region := a.validator.Region(raw)
	if region != "" {
		return "valid (" + region + ") " + e164
	}
	return "valid " + e164
}

func drawString(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
