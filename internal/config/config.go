package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration validation.
var (
	// ErrInvalidRegion indicates the region is not a two-letter code.
	ErrInvalidRegion = errors.New("region must be a two-letter ISO code")

	// ErrInvalidMaxDigits indicates a negative digit cap.
	ErrInvalidMaxDigits = errors.New("max digits must not be negative")
)

// Config holds the field settings.
type Config struct {
	// Region is the ISO 3166-1 alpha-2 region the formatter targets.
	Region string

	// AllowLeadingPlus accepts a '+' international prefix marker as the
	// first character of the digit stream.
	AllowLeadingPlus bool

	// MaxDigits caps the number of digits in the field; 0 means no cap.
	// Edits that would exceed the cap are rejected.
	MaxDigits int

	// Reformat enables live reformatting. When false every edit is
	// accepted as typed.
	Reformat bool
}

// Option configures a Config.
type Option func(*Config)

// WithRegion sets the formatter region.
func WithRegion(region string) Option {
	return func(c *Config) {
		c.Region = region
	}
}

// WithLeadingPlus sets whether a leading '+' is accepted.
func WithLeadingPlus(allow bool) Option {
	return func(c *Config) {
		c.AllowLeadingPlus = allow
	}
}

// WithMaxDigits caps the number of digits in the field.
func WithMaxDigits(max int) Option {
	return func(c *Config) {
		c.MaxDigits = max
	}
}

// WithReformat toggles live reformatting.
func WithReformat(enable bool) Option {
	return func(c *Config) {
		c.Reformat = enable
	}
}

// Default returns the default configuration: US region, leading '+'
// accepted, no digit cap, reformatting on.
func Default() Config {
	return Config{
		Region:           "US",
		AllowLeadingPlus: true,
		Reformat:         true,
	}
}

// New builds a validated Config from the defaults and the given options.
func New(opts ...Option) (Config, error) {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the configuration for well-formedness.
func (c Config) Validate() error {
	if len(c.Region) != 2 || !isASCIILetters(c.Region) {
		return fmt.Errorf("%w: %q", ErrInvalidRegion, c.Region)
	}
	if c.MaxDigits < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxDigits, c.MaxDigits)
	}
	return nil
}

func isASCIILetters(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
