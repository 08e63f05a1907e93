// Package tui is an interactive terminal harness for the field engine.
//
// It renders a single phone entry line, routes every keystroke through
// field.ShouldChangeText, and places the terminal cursor at the relocated
// offset, so the reformat-and-reposition behavior can be exercised by
// hand. A libphonenumber validator, when provided, drives a status line
// showing validity and the E.164 form of the current entry.
package tui
