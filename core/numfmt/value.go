package numfmt

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"quantkit/internal/errors"
)

// MaxDecimals caps the fractional digits SetDecimals will produce
const MaxDecimals = 1000

// Numeric is any built-in integer or floating point type
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Value is a finite number held exactly. The integral flag records whether
// it came from an integer type or was parsed without a fractional part,
// which decides how many decimals the default style shows.
type Value struct {
	dec      decimal.Decimal
	integral bool
}

// ValueOf converts a Go number into a Value. NaN and infinities are rejected.
func ValueOf[T Numeric](v T) (Value, error) {
	var one T = 1
	if one/2 == 0 {
		var zero T
		if zero-1 > 0 {
			return Value{dec: decimal.NewFromUint64(uint64(v)), integral: true}, nil
		}
		return Value{dec: decimal.NewFromInt(int64(v)), integral: true}, nil
	}

	if f, ok := any(v).(float32); ok {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return Value{}, errors.Validation("non-finite number %v", f)
		}
		return Value{dec: decimal.NewFromFloat32(f)}, nil
	}

	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, errors.Validation("non-finite number %v", f)
	}
	return Value{dec: decimal.NewFromFloat(f)}, nil
}

// FromDecimal wraps an exact decimal
func FromDecimal(d decimal.Decimal, integral bool) Value {
	if integral {
		d = d.Truncate(0)
	}
	return Value{dec: d, integral: integral}
}

// Decimal returns the exact value
func (v Value) Decimal() decimal.Decimal {
	return v.dec
}

// Float64 returns the nearest float64
func (v Value) Float64() float64 {
	return v.dec.InexactFloat64()
}

// IsIntegral reports whether the value is treated as an integer
func (v Value) IsIntegral() bool {
	return v.integral
}

// Equal compares numerically; the integral flag is ignored
func (v Value) Equal(other Value) bool {
	return v.dec.Equal(other.dec)
}

// String returns the plain decimal representation
func (v Value) String() string {
	return v.dec.String()
}

// Round rounds half away from zero. The result is integral when it has no
// fractional part and forceFloat is false.
func (v Value) Round(decimals int, forceFloat bool) (Value, error) {
	if decimals < 0 {
		return Value{}, errors.Validation("decimals must be non-negative, got %d", decimals)
	}
	if decimals > MaxDecimals {
		decimals = MaxDecimals
	}
	r := v.dec.Round(int32(decimals))
	return Value{dec: r, integral: !forceFloat && r.IsInteger()}, nil
}

// SetDecimals rounds v to the given number of fractional digits
func SetDecimals[T Numeric](v T, decimals int, forceFloat bool) (Value, error) {
	val, err := ValueOf(v)
	if err != nil {
		return Value{}, err
	}
	return val.Round(decimals, forceFloat)
}

// SetDecimalsString parses a plain numeric string, accepting ',' as the
// decimal point, and rounds it like SetDecimals.
func SetDecimalsString(s string, decimals int, forceFloat bool) (Value, error) {
	clean := strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Value{}, errors.Wrapf(errors.TypeParse, err, "%q is not numeric", s)
	}
	return Value{dec: d}.Round(decimals, forceFloat)
}

// enforce coerces a parsed value to the requested kind
func (v Value) enforce(e Enforce) (Value, error) {
	switch e {
	case EnforceNone:
		return v, nil
	case EnforceInt:
		return Value{dec: v.dec.Truncate(0), integral: true}, nil
	case EnforceFloat:
		return Value{dec: v.dec}, nil
	case EnforceStrictInt:
		if !v.dec.IsInteger() {
			return Value{}, errors.Validation("%s has a fractional part", v.dec)
		}
		return Value{dec: v.dec.Truncate(0), integral: true}, nil
	case EnforceStrictFloat:
		if !decimal.NewFromFloat(v.dec.InexactFloat64()).Equal(v.dec) {
			return Value{}, errors.Validation("%s is not exactly representable as float64", v.dec)
		}
		return Value{dec: v.dec}, nil
	default:
		return Value{}, errors.Validation("unknown enforce mode %d", e)
	}
}

// Enforce selects the numeric kind Parse returns
type Enforce int

const (
	// EnforceNone keeps the detected kind
	EnforceNone Enforce = iota

	// EnforceInt truncates toward zero
	EnforceInt

	// EnforceFloat marks the result non-integral
	EnforceFloat

	// EnforceStrictInt fails when the value has a fractional part
	EnforceStrictInt

	// EnforceStrictFloat fails when float64 cannot hold the value exactly
	EnforceStrictFloat
)
