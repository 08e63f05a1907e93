package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/dialfield/internal/engine/field"
)

func typeString(a *App, s string) {
	for _, r := range s {
		a.handleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func TestTypingFormatsLive(t *testing.T) {
	a := New(field.New())
	typeString(a, "4125551212")

	if a.Text() != "(412) 555-1212" {
		t.Errorf("expected %q, got %q", "(412) 555-1212", a.Text())
	}
	if a.Cursor() != 14 {
		t.Errorf("expected cursor at end, got %d", a.Cursor())
	}
}

func TestBackspaceDeletesDigit(t *testing.T) {
	a := New(field.New())
	typeString(a, "4125551212")
	a.handleKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))

	if a.Text() != "(412) 555-121" {
		t.Errorf("expected %q, got %q", "(412) 555-121", a.Text())
	}
}

func TestCursorMovement(t *testing.T) {
	a := New(field.New())
	typeString(a, "412555")

	a.handleKey(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	if a.Cursor() != 0 {
		t.Errorf("expected cursor 0 after Home, got %d", a.Cursor())
	}
	a.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if a.Cursor() != 1 {
		t.Errorf("expected cursor 1 after Right, got %d", a.Cursor())
	}
	a.handleKey(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	if a.Cursor() != len([]rune(a.Text())) {
		t.Errorf("expected cursor at end after End, got %d", a.Cursor())
	}
	a.handleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if a.Cursor() != len([]rune(a.Text()))-1 {
		t.Errorf("expected cursor one before end after Left, got %d", a.Cursor())
	}
}

func TestMidTextInsertKeepsCursorStable(t *testing.T) {
	a := New(field.New())
	typeString(a, "412555121")
	// Move before the '-' (offset 9 in "(412) 555-121") and type '2'.
	for a.Cursor() > 9 {
		a.handleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	}
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone))

	if a.Text() != "(412) 555-2121" {
		t.Errorf("expected %q, got %q", "(412) 555-2121", a.Text())
	}
	if a.Cursor() != 11 {
		t.Errorf("expected cursor 11, got %d", a.Cursor())
	}
}

func TestClearLine(t *testing.T) {
	a := New(field.New())
	typeString(a, "4125551212")
	a.handleKey(tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModNone))

	if a.Text() != "" {
		t.Errorf("expected empty text, got %q", a.Text())
	}
	if a.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", a.Cursor())
	}
}

func TestEscapeQuits(t *testing.T) {
	a := New(field.New())
	if !a.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape should quit")
	}
	if a.handleKey(tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone)) {
		t.Error("typing should not quit")
	}
}

func TestDrawOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer screen.Fini()

	a := New(field.New(), WithScreen(screen))
	typeString(a, "412")
	a.draw()

	cx, cy, visible := screen.GetCursor()
	if !visible {
		t.Fatal("cursor should be visible")
	}
	if cy != 0 || cx != len(prompt)+a.Cursor() {
		t.Errorf("cursor drawn at (%d, %d), expected (%d, 0)", cx, cy, len(prompt)+a.Cursor())
	}
}
