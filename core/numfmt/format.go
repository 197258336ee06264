package numfmt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"quantkit/internal/errors"
)

var ten = decimal.NewFromInt(10)

// Format renders v in the given style
func Format[T Numeric](v T, style Style, s Settings) (string, error) {
	val, err := ValueOf(v)
	if err != nil {
		return "", err
	}
	return FormatValue(val, style, s)
}

// FormatBatch formats every element in order. The first failure aborts.
func FormatBatch[T Numeric](vs []T, style Style, s Settings) ([]string, error) {
	out := make([]string, 0, len(vs))
	for i, v := range vs {
		str, err := Format(v, style, s)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeValidation, err, "element %d", i).WithContext("index", i)
		}
		out = append(out, str)
	}
	return out, nil
}

// FormatValue renders an already converted value. The sign is written
// before the prefix.
func FormatValue(v Value, style Style, s Settings) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	var (
		neg  bool
		body string
		err  error
	)
	switch style {
	case StyleDefault:
		neg, body = formatDefault(v, s)
	case StyleScientific:
		neg, body = formatScientific(v, s)
	case StylePercent:
		neg, body = formatPercent(v, s)
	case StyleBinary:
		body, err = formatBase(v, style, 2, "0b")
	case StyleHex:
		body, err = formatBase(v, style, 16, "0x")
	case StyleRoman:
		body, err = formatRoman(v)
	default:
		return "", errors.Validation("unknown number style %d", style)
	}
	if err != nil {
		return "", err
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return sign + s.Prefix + body + s.Suffix, nil
}

func formatDefault(v Value, s Settings) (bool, string) {
	places := s.Decimals
	if places == AutoDecimals {
		places = 2
		if v.integral {
			places = 0
		}
	}

	r := v.dec.Round(int32(places))
	digits := r.Abs().StringFixed(int32(places))
	intPart, frac, _ := strings.Cut(digits, ".")

	body := group(intPart, s.ThousandsSep)
	if places > 0 {
		body += s.DecimalSep + frac
	}
	return r.IsNegative(), body
}

func formatScientific(v Value, s Settings) (bool, string) {
	places := s.Decimals
	if places == AutoDecimals {
		places = 6
	}

	mant := decimal.Zero
	exp := 0
	if !v.dec.IsZero() {
		exp = v.dec.NumDigits() - 1 + int(v.dec.Exponent())
		mant = v.dec.Abs().Shift(int32(-exp)).Round(int32(places))
		if mant.GreaterThanOrEqual(ten) {
			mant = mant.Shift(-1).Round(int32(places))
			exp++
		}
	}

	m := strings.Replace(mant.StringFixed(int32(places)), ".", s.DecimalSep, 1)
	return v.dec.IsNegative(), m + fmt.Sprintf("e%+03d", exp)
}

func formatPercent(v Value, s Settings) (bool, string) {
	places := s.Decimals
	if places == AutoDecimals {
		places = 2
	}

	p := v.dec.Shift(2).Round(int32(places))
	body := strings.Replace(p.Abs().StringFixed(int32(places)), ".", s.DecimalSep, 1)
	return p.IsNegative(), body + "%"
}

func formatBase(v Value, style Style, base int, marker string) (string, error) {
	if !v.dec.IsInteger() {
		return "", errors.Validation("%s style requires an integer, got %s", style, v.dec).
			WithContext("style", style.String())
	}
	if v.dec.IsNegative() {
		return "", errors.Validation("%s style requires a non-negative number, got %s", style, v.dec).
			WithContext("style", style.String())
	}
	return marker + v.dec.BigInt().Text(base), nil
}

func formatRoman(v Value) (string, error) {
	if !v.dec.IsInteger() {
		return "", errors.Validation("roman style requires an integer, got %s", v.dec)
	}
	if v.dec.LessThan(decimal.NewFromInt(1)) || v.dec.GreaterThan(decimal.NewFromInt(MaxRoman)) {
		return "", errors.Validation("roman numerals cover 1..%d, got %s", MaxRoman, v.dec)
	}
	return toRoman(int(v.dec.IntPart())), nil
}

// group inserts sep between runs of three digits counted from the right
func group(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
