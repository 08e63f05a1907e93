package format

import (
	"strings"

	"github.com/dshills/dialfield/internal/config"
)

// nanpRegions are the regions formatted with the North American
// "(AAA) BBB-CCCC" national pattern.
var nanpRegions = map[string]bool{
	"US": true,
	"CA": true,
}

// Pattern formats a digit stream by progressive grouping. It carries no
// number metadata, which keeps partial input deterministic: every prefix
// of a number formats the same way on every keystroke.
type Pattern struct {
	region string
}

// NewPattern creates a pattern formatter for the given region.
func NewPattern(region string) *Pattern {
	return &Pattern{region: strings.ToUpper(region)}
}

// Configure implements Configurable.
func (p *Pattern) Configure(cfg config.Config) error {
	p.region = strings.ToUpper(cfg.Region)
	return nil
}

// FormatPartial implements Formatter.
func (p *Pattern) FormatPartial(digitStream string) string {
	if digitStream == "" {
		return ""
	}
	if strings.HasPrefix(digitStream, "+") {
		return formatInternational(digitStream[1:])
	}
	if nanpRegions[p.region] {
		return formatNANP(digitStream)
	}
	return groupDigits(digitStream)
}

// formatNANP renders a national NANP number progressively:
// up to 3 digits bare, up to 7 as "AAA-BBBB", up to 10 as
// "(AAA) BBB-CCCC". Streams past 10 digits are left ungrouped.
func formatNANP(d string) string {
	n := len(d)
	switch {
	case n <= 3:
		return d
	case n <= 7:
		return d[:3] + "-" + d[3:]
	case n <= 10:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	default:
		return d
	}
}

// formatInternational renders "+CC" followed by space-separated groups.
// Country codes 1 and 7 are single-digit; all others are treated as two
// digits, which is close enough for display grouping without metadata.
func formatInternational(d string) string {
	if d == "" {
		return "+"
	}
	ccLen := 2
	if d[0] == '1' || d[0] == '7' {
		ccLen = 1
	}
	if ccLen > len(d) {
		ccLen = len(d)
	}
	cc, rest := d[:ccLen], d[ccLen:]
	if rest == "" {
		return "+" + cc
	}
	return "+" + cc + " " + groupDigits(rest)
}

// groupDigits splits digits into space-separated groups of three, using a
// group of four where it avoids stranding a single trailing digit.
func groupDigits(d string) string {
	var parts []string
	for len(d) > 0 {
		size := 3
		if len(d) == 4 || len(d) == 8 {
			size = 4
		}
		if size > len(d) {
			size = len(d)
		}
		parts = append(parts, d[:size])
		d = d[size:]
	}
	return strings.Join(parts, " ")
}
