package numfmt

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"quantkit/internal/errors"
)

// Parse reads a string produced by FormatValue back into a Value
func Parse(s string, style Style, settings Settings, enforce Enforce) (Value, error) {
	if err := settings.Validate(); err != nil {
		return Value{}, err
	}

	body, neg := stripAffixes(s, settings)

	var (
		v  Value
		ok bool
	)
	switch style {
	case StyleDefault:
		v, ok = parseDefault(body, settings)
	case StyleScientific:
		v, ok = parseScientific(body, settings)
	case StylePercent:
		v, ok = parsePercent(body, settings)
	case StyleBinary:
		v, ok = parseBase(body, 2, "0b")
	case StyleHex:
		v, ok = parseBase(body, 16, "0x")
	case StyleRoman:
		v, ok = parseRoman(body)
	default:
		return Value{}, errors.Validation("unknown number style %d", style)
	}
	if !ok {
		return Value{}, errors.Parsef("%q is not a %s number", s, style).
			WithContext("style", style.String())
	}

	if neg {
		v.dec = v.dec.Neg()
	}
	return v.enforce(enforce)
}

// ParseBatch parses every element in order. The first failure aborts.
func ParseBatch(ss []string, style Style, settings Settings, enforce Enforce) ([]Value, error) {
	out := make([]Value, 0, len(ss))
	for _, s := range ss {
		v, err := Parse(s, style, settings, enforce)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// stripAffixes trims whitespace, the prefix, the suffix and a single sign,
// which may appear on either side of the prefix.
func stripAffixes(s string, settings Settings) (string, bool) {
	s = strings.TrimSpace(s)
	neg, signed := false, false

	takeSign := func() {
		if signed {
			return
		}
		switch {
		case strings.HasPrefix(s, "-"):
			neg, signed = true, true
			s = s[1:]
		case strings.HasPrefix(s, "+"):
			signed = true
			s = s[1:]
		}
	}

	takeSign()
	if settings.Prefix != "" {
		if rest, ok := strings.CutPrefix(s, settings.Prefix); ok {
			s = rest
			takeSign()
		}
	}
	if settings.Suffix != "" {
		s = strings.TrimSuffix(s, settings.Suffix)
	}
	return strings.TrimSpace(s), neg
}

func parseDefault(body string, settings Settings) (Value, bool) {
	if settings.ThousandsSep != "" {
		body = strings.ReplaceAll(body, settings.ThousandsSep, "")
	}
	d, hasFrac, ok := plainDecimal(body, settings.DecimalSep)
	if !ok {
		return Value{}, false
	}
	return Value{dec: d, integral: !hasFrac}, true
}

func parseScientific(body string, settings Settings) (Value, bool) {
	i := strings.LastIndexAny(body, "eE")
	if i < 0 {
		return Value{}, false
	}
	exp, err := strconv.ParseInt(body[i+1:], 10, 32)
	if err != nil {
		return Value{}, false
	}

	d, _, ok := plainDecimal(body[:i], settings.DecimalSep)
	if !ok {
		return Value{}, false
	}
	return Value{dec: d.Shift(int32(exp))}, true
}

// plainDecimal reads unsigned digits with an optional fraction after sep
func plainDecimal(s, sep string) (decimal.Decimal, bool, bool) {
	intPart, frac, hasFrac := strings.Cut(s, sep)
	if !digits(intPart, hasFrac) || (hasFrac && !digits(frac, false)) {
		return decimal.Zero, false, false
	}
	if intPart == "" {
		intPart = "0"
	}

	lit := intPart
	if hasFrac {
		lit += "." + frac
	}
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return decimal.Zero, false, false
	}
	return d, hasFrac, true
}

func parsePercent(body string, settings Settings) (Value, bool) {
	rest, ok := strings.CutSuffix(body, "%")
	if !ok {
		return Value{}, false
	}
	v, ok := parseDefault(strings.TrimSpace(rest), settings)
	if !ok {
		return Value{}, false
	}
	return Value{dec: v.dec.Shift(-2)}, true
}

func parseBase(body string, base int, marker string) (Value, bool) {
	if len(body) >= len(marker) && strings.EqualFold(body[:len(marker)], marker) {
		body = body[len(marker):]
	}
	if body == "" || strings.ContainsAny(body, "+-_") {
		return Value{}, false
	}
	n, ok := new(big.Int).SetString(body, base)
	if !ok {
		return Value{}, false
	}
	return Value{dec: decimal.NewFromBigInt(n, 0), integral: true}, true
}

func parseRoman(body string) (Value, bool) {
	n, ok := fromRoman(body)
	if !ok {
		return Value{}, false
	}
	return Value{dec: decimal.NewFromInt(int64(n)), integral: true}, true
}

// digits reports whether s is all ASCII digits; s may be empty only when
// a fractional part follows.
func digits(s string, allowEmpty bool) bool {
	if s == "" {
		return allowEmpty
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
