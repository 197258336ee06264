// Package numfmt formats numbers for display and parses them back.
//
// Six display styles are supported: grouped decimal, scientific, percent,
// binary, hex and roman numerals. Thousands and decimal separators, prefix,
// suffix and fractional digits are carried by an immutable Settings record;
// Number and Batch offer a fluent builder on top of it.
package numfmt

import (
	"strings"

	"quantkit/internal/errors"
)

// Style selects a display representation
type Style int

const (
	// StyleDefault groups integer digits and joins the fraction with the decimal separator
	StyleDefault Style = iota

	// StyleScientific renders a mantissa in [1,10) and a signed exponent
	StyleScientific

	// StylePercent multiplies by 100 and appends '%'
	StylePercent

	// StyleBinary renders non-negative integers in base 2 with a 0b marker
	StyleBinary

	// StyleHex renders non-negative integers in base 16 with a 0x marker
	StyleHex

	// StyleRoman renders integers 1..3999 in subtractive roman notation
	StyleRoman
)

var styleNames = [...]string{"default", "scientific", "percent", "binary", "hex", "roman"}

// Styles lists every style in declaration order
func Styles() []Style {
	return []Style{StyleDefault, StyleScientific, StylePercent, StyleBinary, StyleHex, StyleRoman}
}

// String returns the style name
func (s Style) String() string {
	if s >= 0 && int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "unknown"
}

// ParseStyle maps a style name to a Style
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(name, n) {
			return Style(i), nil
		}
	}
	return StyleDefault, errors.Validation("unknown number style %q", name)
}
