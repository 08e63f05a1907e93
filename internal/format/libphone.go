package format

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/dshills/dialfield/internal/config"
	"github.com/dshills/dialfield/internal/engine/digits"
)

// ErrInvalidNumber is returned when a digit stream does not parse or
// validate as a phone number for the configured region.
var ErrInvalidNumber = errors.New("invalid phone number")

// Libphone formats complete numbers through libphonenumber and delegates
// everything else to a Pattern fallback. Partial streams rarely validate,
// so mid-entry display stays on the deterministic pattern; the moment the
// stream is a valid number the metadata-correct rendering takes over.
type Libphone struct {
	region   string
	fallback *Pattern
}

// NewLibphone creates a libphonenumber-backed formatter for the region.
func NewLibphone(region string) *Libphone {
	return &Libphone{
		region:   strings.ToUpper(region),
		fallback: NewPattern(region),
	}
}

// Configure implements Configurable.
func (f *Libphone) Configure(cfg config.Config) error {
	f.region = strings.ToUpper(cfg.Region)
	return f.fallback.Configure(cfg)
}

// FormatPartial implements Formatter. It never fails: parse errors,
// invalid numbers, renderings that would alter the digit stream, and
// library panics all degrade to the fallback or the raw stream.
func (f *Libphone) FormatPartial(digitStream string) (out string) {
	defer func() {
		if recover() != nil {
			out = digitStream
		}
	}()

	if digitStream == "" {
		return ""
	}
	num, err := phonenumbers.Parse(digitStream, f.region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return f.fallback.FormatPartial(digitStream)
	}

	var formatted string
	if strings.HasPrefix(digitStream, "+") {
		formatted = phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
	} else {
		formatted = phonenumbers.Format(num, phonenumbers.NATIONAL)
	}

	// Formatting must only move punctuation. Some renderings reorder or
	// drop digits (national prefixes); those fall back.
	if digits.Filter(formatted, true) != digitStream {
		return f.fallback.FormatPartial(digitStream)
	}
	return formatted
}

// E164 returns the E.164 form of the digit stream, or ErrInvalidNumber if
// it does not validate for the configured region.
func (f *Libphone) E164(digitStream string) (string, error) {
	num, err := phonenumbers.Parse(digitStream, f.region)
	if err != nil {
		return "", ErrInvalidNumber
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidNumber
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// IsValid reports whether the digit stream is a valid number for the
// configured region.
func (f *Libphone) IsValid(digitStream string) bool {
	num, err := phonenumbers.Parse(digitStream, f.region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// Region returns the ISO region of the digit stream, or "" if it cannot
// be determined.
func (f *Libphone) Region(digitStream string) string {
	num, err := phonenumbers.Parse(digitStream, f.region)
	if err != nil {
		return ""
	}
	return phonenumbers.GetRegionCodeForNumber(num)
}
