package numfmt

import (
	"golang.org/x/text/language"
)

// Override adjusts settings for a single formatting call
type Override func(*Settings)

// WithPrefixOverride replaces the prefix for one call
func WithPrefixOverride(prefix string) Override {
	return func(s *Settings) { s.Prefix = prefix }
}

// WithSuffixOverride replaces the suffix for one call
func WithSuffixOverride(suffix string) Override {
	return func(s *Settings) { s.Suffix = suffix }
}

// WithDecimalsOverride replaces the decimals for one call
func WithDecimalsOverride(decimals int) Override {
	return func(s *Settings) { s.Decimals = decimals }
}

// WithSeparatorsOverride replaces both separators for one call
func WithSeparatorsOverride(thousands, decimal string) Override {
	return func(s *Settings) {
		s.ThousandsSep = thousands
		s.DecimalSep = decimal
	}
}

func apply(s Settings, overrides []Override) Settings {
	for _, o := range overrides {
		o(&s)
	}
	return s
}

// Number pairs a value with display settings. Every method returns a new
// Number; the receiver is never modified.
type Number struct {
	value    Value
	settings Settings
}

// New wraps v with the default settings
func New[T Numeric](v T) (Number, error) {
	return NewWithSettings(v, DefaultSettings())
}

// NewWithSettings wraps v with explicit settings
func NewWithSettings[T Numeric](v T, s Settings) (Number, error) {
	val, err := ValueOf(v)
	if err != nil {
		return Number{}, err
	}
	return Number{value: val, settings: s}, nil
}

// FromValue wraps an existing Value
func FromValue(v Value, s Settings) Number {
	return Number{value: v, settings: s}
}

// ParseNumber parses s and keeps the settings used for parsing
func ParseNumber(s string, style Style, settings Settings, enforce Enforce) (Number, error) {
	v, err := Parse(s, style, settings, enforce)
	if err != nil {
		return Number{}, err
	}
	return Number{value: v, settings: settings}, nil
}

func (n Number) with(s Settings) Number {
	n.settings = s
	return n
}

// Value returns the stored value
func (n Number) Value() Value { return n.value }

// Settings returns the display settings
func (n Number) Settings() Settings { return n.settings }

// Float64 returns the nearest float64
func (n Number) Float64() float64 { return n.value.Float64() }

// Anglo switches to ',' thousands and '.' decimals
func (n Number) Anglo() Number { return n.with(n.settings.Anglo()) }

// NotAnglo switches to '.' thousands and ',' decimals
func (n Number) NotAnglo() Number { return n.with(n.settings.NotAnglo()) }

// Locale switches to the separators of tag
func (n Number) Locale(tag language.Tag) Number { return n.with(n.settings.Locale(tag)) }

// WithSeparators replaces both separators
func (n Number) WithSeparators(thousands, decimal string) Number {
	return n.with(n.settings.WithSeparators(thousands, decimal))
}

// AddPrefix is an alias of WithPrefix
func (n Number) AddPrefix(prefix string) Number { return n.WithPrefix(prefix) }

// WithPrefix replaces the prefix
func (n Number) WithPrefix(prefix string) Number { return n.with(n.settings.WithPrefix(prefix)) }

// AddSuffix is an alias of WithSuffix
func (n Number) AddSuffix(suffix string) Number { return n.WithSuffix(suffix) }

// WithSuffix replaces the suffix
func (n Number) WithSuffix(suffix string) Number { return n.with(n.settings.WithSuffix(suffix)) }

// WithDecimals fixes the displayed fractional digits
func (n Number) WithDecimals(decimals int) Number {
	return n.with(n.settings.WithDecimals(decimals))
}

// WithSettings replaces all settings at once
func (n Number) WithSettings(s Settings) Number { return n.with(s) }

// Precise returns a Number whose stored value is rounded
func (n Number) Precise(decimals int, forceFloat bool) (Number, error) {
	v, err := n.value.Round(decimals, forceFloat)
	if err != nil {
		return Number{}, err
	}
	n.value = v
	return n, nil
}

// Format renders the number in style with optional one-call overrides
func (n Number) Format(style Style, overrides ...Override) (string, error) {
	return FormatValue(n.value, style, apply(n.settings, overrides))
}

// Default renders the grouped decimal style
func (n Number) Default(overrides ...Override) (string, error) {
	return n.Format(StyleDefault, overrides...)
}

// Scientific renders mantissa and exponent
func (n Number) Scientific(overrides ...Override) (string, error) {
	return n.Format(StyleScientific, overrides...)
}

// Percent renders value×100 with a '%' sign
func (n Number) Percent(overrides ...Override) (string, error) {
	return n.Format(StylePercent, overrides...)
}

// Binary renders base 2
func (n Number) Binary(overrides ...Override) (string, error) {
	return n.Format(StyleBinary, overrides...)
}

// Hex renders base 16
func (n Number) Hex(overrides ...Override) (string, error) {
	return n.Format(StyleHex, overrides...)
}

// Roman renders roman numerals
func (n Number) Roman(overrides ...Override) (string, error) {
	return n.Format(StyleRoman, overrides...)
}

// Raw renders style without prefix and suffix
func (n Number) Raw(style Style) (string, error) {
	return n.Format(style, WithPrefixOverride(""), WithSuffixOverride(""))
}

// String renders the default style, falling back to the plain value when
// the settings are invalid.
func (n Number) String() string {
	s, err := n.Default()
	if err != nil {
		return n.value.String()
	}
	return s
}

// Batch is a Number over an ordered sequence of values
type Batch struct {
	values   []Value
	settings Settings
}

// NewBatch wraps vs with the default settings
func NewBatch[T Numeric](vs []T) (Batch, error) {
	values := make([]Value, 0, len(vs))
	for _, v := range vs {
		val, err := ValueOf(v)
		if err != nil {
			return Batch{}, err
		}
		values = append(values, val)
	}
	return Batch{values: values, settings: DefaultSettings()}, nil
}

// BatchOf wraps existing values
func BatchOf(values []Value, s Settings) Batch {
	return Batch{values: append([]Value(nil), values...), settings: s}
}

func (b Batch) with(s Settings) Batch {
	b.settings = s
	return b
}

// Len returns the number of values
func (b Batch) Len() int { return len(b.values) }

// Values returns a copy of the stored values
func (b Batch) Values() []Value { return append([]Value(nil), b.values...) }

// Settings returns the display settings
func (b Batch) Settings() Settings { return b.settings }

// Anglo switches to ',' thousands and '.' decimals
func (b Batch) Anglo() Batch { return b.with(b.settings.Anglo()) }

// NotAnglo switches to '.' thousands and ',' decimals
func (b Batch) NotAnglo() Batch { return b.with(b.settings.NotAnglo()) }

// Locale switches to the separators of tag
func (b Batch) Locale(tag language.Tag) Batch { return b.with(b.settings.Locale(tag)) }

// WithSeparators replaces both separators
func (b Batch) WithSeparators(thousands, decimal string) Batch {
	return b.with(b.settings.WithSeparators(thousands, decimal))
}

// AddPrefix is an alias of WithPrefix
func (b Batch) AddPrefix(prefix string) Batch { return b.WithPrefix(prefix) }

// WithPrefix replaces the prefix
func (b Batch) WithPrefix(prefix string) Batch { return b.with(b.settings.WithPrefix(prefix)) }

// AddSuffix is an alias of WithSuffix
func (b Batch) AddSuffix(suffix string) Batch { return b.WithSuffix(suffix) }

// WithSuffix replaces the suffix
func (b Batch) WithSuffix(suffix string) Batch { return b.with(b.settings.WithSuffix(suffix)) }

// WithDecimals fixes the displayed fractional digits
func (b Batch) WithDecimals(decimals int) Batch {
	return b.with(b.settings.WithDecimals(decimals))
}

// WithSettings replaces all settings at once
func (b Batch) WithSettings(s Settings) Batch { return b.with(s) }

// Precise rounds every stored value
func (b Batch) Precise(decimals int, forceFloat bool) (Batch, error) {
	values := make([]Value, 0, len(b.values))
	for _, v := range b.values {
		r, err := v.Round(decimals, forceFloat)
		if err != nil {
			return Batch{}, err
		}
		values = append(values, r)
	}
	b.values = values
	return b, nil
}

// Format renders every value; overrides apply to all of them
func (b Batch) Format(style Style, overrides ...Override) ([]string, error) {
	s := apply(b.settings, overrides)
	out := make([]string, 0, len(b.values))
	for _, v := range b.values {
		str, err := FormatValue(v, style, s)
		if err != nil {
			return nil, err
		}
		out = append(out, str)
	}
	return out, nil
}

// Default renders the grouped decimal style
func (b Batch) Default(overrides ...Override) ([]string, error) {
	return b.Format(StyleDefault, overrides...)
}

// Scientific renders mantissa and exponent
func (b Batch) Scientific(overrides ...Override) ([]string, error) {
	return b.Format(StyleScientific, overrides...)
}

// Percent renders value×100 with a '%' sign
func (b Batch) Percent(overrides ...Override) ([]string, error) {
	return b.Format(StylePercent, overrides...)
}

// Binary renders base 2
func (b Batch) Binary(overrides ...Override) ([]string, error) {
	return b.Format(StyleBinary, overrides...)
}

// Hex renders base 16
func (b Batch) Hex(overrides ...Override) ([]string, error) {
	return b.Format(StyleHex, overrides...)
}

// Roman renders roman numerals
func (b Batch) Roman(overrides ...Override) ([]string, error) {
	return b.Format(StyleRoman, overrides...)
}

// Raw renders style without prefix and suffix
func (b Batch) Raw(style Style) ([]string, error) {
	return b.Format(style, WithPrefixOverride(""), WithSuffixOverride(""))
}
