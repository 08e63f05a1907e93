// Package config defines the field configuration surface.
//
// Config is a flat value: region for the formatter, whether a leading '+'
// is accepted, an optional digit cap, and the master reformatting toggle.
// There is no hidden state; the field re-applies a Config to its formatter
// collaborator explicitly whenever the configuration changes.
package config
