package numfmt

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFluentBuilder(t *testing.T) {
	n, err := New(1234567.89)
	if err != nil {
		t.Fatal(err)
	}

	got, err := n.NotAnglo().AddPrefix("€").WithDecimals(2).Default()
	if err != nil {
		t.Fatal(err)
	}
	if got != "€1.234.567,89" {
		t.Errorf("expected €1.234.567,89, got %q", got)
	}

	got, err = n.Anglo().AddSuffix(" m").Scientific()
	if err != nil {
		t.Fatal(err)
	}
	if got != "1.234568e+06 m" {
		t.Errorf("expected 1.234568e+06 m, got %q", got)
	}
}

func TestBuilderDoesNotMutateReceiver(t *testing.T) {
	base, err := New(10)
	if err != nil {
		t.Fatal(err)
	}
	derived := base.AddPrefix("x").AddSuffix("y").Anglo().WithDecimals(3)

	if base.Settings() != DefaultSettings() {
		t.Errorf("receiver changed: %+v", base.Settings())
	}
	if derived.Settings().Prefix != "x" || derived.Settings().Decimals != 3 {
		t.Errorf("derived settings not applied: %+v", derived.Settings())
	}
}

func TestOverridesDoNotPersist(t *testing.T) {
	n, err := New(1234.5)
	if err != nil {
		t.Fatal(err)
	}

	got, err := n.Default(WithPrefixOverride("$"), WithSeparatorsOverride(",", "."))
	if err != nil {
		t.Fatal(err)
	}
	if got != "$1,234.50" {
		t.Errorf("expected $1,234.50, got %q", got)
	}

	got, err = n.Default()
	if err != nil {
		t.Fatal(err)
	}
	if got != "1.234,50" {
		t.Errorf("override leaked into later call: %q", got)
	}
}

func TestRawDropsAffixes(t *testing.T) {
	n, err := New(255)
	if err != nil {
		t.Fatal(err)
	}
	n = n.AddPrefix("$").AddSuffix(" USD")

	tests := []struct {
		style    Style
		expected string
	}{
		{StyleDefault, "255"},
		{StyleHex, "0xff"},
		{StylePercent, "25500,00%"},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			got, err := n.Raw(tt.style)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNumberStyleShortcuts(t *testing.T) {
	n, err := New(42)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		format   func(...Override) (string, error)
		expected string
	}{
		{"binary", n.Binary, "0b101010"},
		{"hex", n.Hex, "0x2a"},
		{"roman", n.Roman, "XLII"},
		{"percent", n.Percent, "4200,00%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.format()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestPrecise(t *testing.T) {
	n, err := New(2.345)
	if err != nil {
		t.Fatal(err)
	}

	p, err := n.Precise(1, false)
	if err != nil {
		t.Fatal(err)
	}
	if p.Value().String() != "2.3" {
		t.Errorf("expected 2.3, got %s", p.Value())
	}
	if n.Value().String() != "2.345" {
		t.Errorf("receiver value changed to %s", n.Value())
	}

	if _, err := n.Precise(-1, false); err == nil {
		t.Error("expected error for negative decimals")
	}
}

func TestStringFallsBackOnInvalidSettings(t *testing.T) {
	n, err := New(7)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.String(); got != "7" {
		t.Errorf("expected 7, got %q", got)
	}
	if got := n.WithSeparators(",", ",").String(); got != "7" {
		t.Errorf("expected plain fallback 7, got %q", got)
	}
}

func TestParseNumberKeepsSettings(t *testing.T) {
	s := AngloSettings().WithPrefix("$")
	n, err := ParseNumber("$1,500.25", StyleDefault, s, EnforceNone)
	if err != nil {
		t.Fatal(err)
	}
	got, err := n.Default()
	if err != nil {
		t.Fatal(err)
	}
	if got != "$1,500.25" {
		t.Errorf("expected $1,500.25, got %q", got)
	}
}

func TestLocaleSettings(t *testing.T) {
	tests := []struct {
		tag       language.Tag
		thousands string
		decimal   string
	}{
		{language.English, ",", "."},
		{language.German, ".", ","},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			s := LocaleSettings(tt.tag)
			if s.ThousandsSep != tt.thousands || s.DecimalSep != tt.decimal {
				t.Errorf("expected %q/%q, got %q/%q", tt.thousands, tt.decimal, s.ThousandsSep, s.DecimalSep)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("locale settings invalid: %v", err)
			}
		})
	}

	n, err := New(1234.5)
	if err != nil {
		t.Fatal(err)
	}
	got, err := n.Locale(language.English).Default()
	if err != nil {
		t.Fatal(err)
	}
	if got != "1,234.50" {
		t.Errorf("expected 1,234.50, got %q", got)
	}
}

func TestBatch(t *testing.T) {
	b, err := NewBatch([]float64{1.5, 2.25, 1000})
	if err != nil {
		t.Fatal(err)
	}

	got, err := b.Anglo().AddPrefix("$").Default(WithDecimalsOverride(1))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"$1.5", "$2.3", "$1,000.0"}
	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if b.Settings().Prefix != "" {
		t.Errorf("batch receiver changed: %+v", b.Settings())
	}

	p, err := b.Precise(0, false)
	if err != nil {
		t.Fatal(err)
	}
	roman, err := p.Roman()
	if err != nil {
		t.Fatal(err)
	}
	if roman[0] != "II" || roman[1] != "II" || roman[2] != "M" {
		t.Errorf("unexpected roman output %v", roman)
	}

	values := b.Values()
	values[0] = Value{}
	if b.Values()[0].String() != "1.5" {
		t.Error("Values must return a copy")
	}
}

func TestNewRejectsNonFinite(t *testing.T) {
	var zero float64
	if _, err := New(1 / zero); err == nil {
		t.Error("expected error for +Inf")
	}
	if _, err := NewBatch([]float64{1, zero / zero}); err == nil {
		t.Error("expected error for NaN element")
	}
}
