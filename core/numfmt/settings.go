package numfmt

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"quantkit/internal/errors"
)

// AutoDecimals lets each style pick its own fractional digit count:
// 0 for integral values and 2 otherwise in the default style,
// 6 in scientific and 2 in percent.
const AutoDecimals = -1

// reserved characters would make parsing ambiguous
const reserved = "0123456789+-%eE"

// Settings is the display bundle applied when formatting. It is a value:
// every With* method returns a modified copy.
type Settings struct {
	ThousandsSep string `json:"thousands_sep"`
	DecimalSep   string `json:"decimal_sep"`
	Prefix       string `json:"prefix,omitempty"`
	Suffix       string `json:"suffix,omitempty"`
	Decimals     int    `json:"decimals"`
}

// DefaultSettings returns the non-anglo preset with automatic decimals
func DefaultSettings() Settings {
	return NotAngloSettings()
}

// AngloSettings uses ',' for thousands and '.' for decimals
func AngloSettings() Settings {
	return Settings{ThousandsSep: ",", DecimalSep: ".", Decimals: AutoDecimals}
}

// NotAngloSettings uses '.' for thousands and ',' for decimals
func NotAngloSettings() Settings {
	return Settings{ThousandsSep: ".", DecimalSep: ",", Decimals: AutoDecimals}
}

// LocaleSettings derives both separators from CLDR data for tag
func LocaleSettings(tag language.Tag) Settings {
	return Settings{Decimals: AutoDecimals}.Locale(tag)
}

// WithSeparators replaces both separators
func (s Settings) WithSeparators(thousands, decimal string) Settings {
	s.ThousandsSep = thousands
	s.DecimalSep = decimal
	return s
}

// Anglo switches to ',' thousands and '.' decimals
func (s Settings) Anglo() Settings {
	return s.WithSeparators(",", ".")
}

// NotAnglo switches to '.' thousands and ',' decimals
func (s Settings) NotAnglo() Settings {
	return s.WithSeparators(".", ",")
}

// Locale switches to the separators CLDR defines for tag
func (s Settings) Locale(tag language.Tag) Settings {
	thousands, decimal := localeSeparators(tag)
	return s.WithSeparators(thousands, decimal)
}

// WithPrefix replaces the prefix
func (s Settings) WithPrefix(prefix string) Settings {
	s.Prefix = prefix
	return s
}

// WithSuffix replaces the suffix
func (s Settings) WithSuffix(suffix string) Settings {
	s.Suffix = suffix
	return s
}

// WithDecimals fixes the fractional digit count; AutoDecimals restores the style default
func (s Settings) WithDecimals(decimals int) Settings {
	s.Decimals = decimals
	return s
}

// Validate rejects separator combinations that cannot be parsed back
func (s Settings) Validate() error {
	if s.DecimalSep == "" {
		return errors.Validation("decimal separator must not be empty")
	}
	if s.ThousandsSep == s.DecimalSep {
		return errors.Validation("thousands and decimal separators are both %q", s.DecimalSep).
			WithContext("separator", s.DecimalSep)
	}
	if s.ThousandsSep != "" &&
		(strings.Contains(s.ThousandsSep, s.DecimalSep) || strings.Contains(s.DecimalSep, s.ThousandsSep)) {
		return errors.Validation("separators %q and %q overlap", s.ThousandsSep, s.DecimalSep)
	}
	for _, sep := range []string{s.ThousandsSep, s.DecimalSep} {
		if strings.ContainsAny(sep, reserved) {
			return errors.Validation("separator %q contains a reserved character", sep)
		}
	}
	if s.Decimals < AutoDecimals {
		return errors.Validation("decimals must be non-negative, got %d", s.Decimals)
	}
	if s.Decimals > MaxDecimals {
		return errors.Validation("decimals must be at most %d, got %d", MaxDecimals, s.Decimals)
	}
	return nil
}

// localeSeparators formats a probe number for tag and reads the separators
// off the non-digit runs: the first is the grouping mark, the last the
// decimal mark.
func localeSeparators(tag language.Tag) (thousands, decimal string) {
	p := message.NewPrinter(tag)
	probe := p.Sprint(number.Decimal(1234567.5, number.Scale(1)))

	var runs []string
	var cur strings.Builder
	for _, r := range probe {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}

	switch len(runs) {
	case 0:
		return "", "."
	case 1:
		return "", runs[0]
	default:
		return runs[0], runs[len(runs)-1]
	}
}
