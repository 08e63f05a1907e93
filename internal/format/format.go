package format

import "github.com/dshills/dialfield/internal/config"

// Formatter renders a raw digit stream as display text.
type Formatter interface {
	// FormatPartial returns the display form of the digit stream. It is
	// pure and total: same input, same output, no errors. The returned
	// string contains exactly the digits of the input, in order.
	FormatPartial(digitStream string) string
}

// Configurable is implemented by formatters that accept field
// configuration. The field re-applies its Config on every change.
type Configurable interface {
	Configure(cfg config.Config) error
}

// Passthrough returns the digit stream unformatted. It is the degradation
// target when no real formatter is available and a convenient test double.
type Passthrough struct{}

// FormatPartial implements Formatter.
func (Passthrough) FormatPartial(digitStream string) string {
	return digitStream
}
