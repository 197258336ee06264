package toolkit

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quantkit/core/instant"
	"quantkit/core/numfmt"
	"quantkit/core/ui"
	"quantkit/internal/config"
	"quantkit/internal/errors"
)

func quietConfig() *config.Config {
	cfg := config.Default()
	cfg.Logging.Output = "discard"
	return cfg
}

func TestNewWithDefaults(t *testing.T) {
	tk, err := New(quietConfig())
	if err != nil {
		t.Fatal(err)
	}

	got, err := tk.FormatNumber(1234567.891, numfmt.StyleDefault)
	if err != nil {
		t.Fatal(err)
	}
	if got != "1.234.567,89" {
		t.Errorf("expected 1.234.567,89, got %s", got)
	}

	n, err := tk.ParseNumber("1.234,5", numfmt.StyleDefault)
	if err != nil {
		t.Fatal(err)
	}
	if n.Float64() != 1234.5 {
		t.Errorf("expected 1234.5, got %v", n.Float64())
	}

	km, err := tk.Convert(5, "mile", "km", "")
	if err != nil {
		t.Fatal(err)
	}
	if km != 8.04672 {
		t.Errorf("expected 8.04672, got %v", km)
	}

	if tk.Timezone() != "UTC" {
		t.Errorf("default timezone = %q", tk.Timezone())
	}
}

func TestNumberSettings(t *testing.T) {
	tests := []struct {
		name   string
		adjust func(*config.NumbersConfig)
		value  float64
		style  numfmt.Style
		want   string
	}{
		{"locale", func(n *config.NumbersConfig) { n.Locale = "en-US" }, 1234567.891, numfmt.StyleDefault, "1,234,567.89"},
		{"affixes", func(n *config.NumbersConfig) {
			n.ThousandsSeparator, n.DecimalSeparator = ",", "."
			n.Prefix = "$"
		}, 1234.5, numfmt.StyleDefault, "$1,234.50"},
		{"decimals", func(n *config.NumbersConfig) { n.Decimals = 3 }, 0.5, numfmt.StylePercent, "50,000%"},
		{"suffix", func(n *config.NumbersConfig) { n.Suffix = " kg" }, 12, numfmt.StyleDefault, "12 kg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := quietConfig()
			tt.adjust(&cfg.Numbers)
			tk, err := New(cfg)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			got, err := tk.FormatNumber(tt.value, tt.style)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		adjust  func(*config.Config)
		errType errors.Type
	}{
		{"bad locale", func(c *config.Config) { c.Numbers.Locale = "!!" }, errors.TypeConfig},
		{"same separators", func(c *config.Config) { c.Numbers.DecimalSeparator = "." }, errors.TypeConfig},
		{"digit separator", func(c *config.Config) { c.Numbers.ThousandsSeparator = "1" }, errors.TypeValidation},
		{"too many decimals", func(c *config.Config) { c.Numbers.Decimals = numfmt.MaxDecimals + 1 }, errors.TypeValidation},
		{"unknown timezone", func(c *config.Config) { c.Time.DefaultTimezone = "Nowhere/Town" }, errors.TypeTimezone},
		{"missing unit table", func(c *config.Config) {
			c.Units.CustomTables = []string{filepath.Join(os.TempDir(), "quantkit-absent.hcl")}
		}, errors.TypeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := quietConfig()
			tt.adjust(cfg)
			if _, err := New(cfg); !errors.IsType(err, tt.errType) {
				t.Errorf("expected %s, got %v", tt.errType, err)
			}
		})
	}
}

func TestCustomUnitTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.hcl")
	src := `category "data" {
  base = "B"
  unit "B"   { scale = 1 }
  unit "KiB" { scale = 1024 }
}
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := quietConfig()
	cfg.Units.CustomTables = []string{path}
	tk, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	got, err := tk.Convert(3, "KiB", "B", "")
	if err != nil {
		t.Fatal(err)
	}
	if got != 3072 {
		t.Errorf("expected 3072, got %v", got)
	}
	if _, ok := tk.Converter().Table().Category("data"); !ok {
		t.Error("custom category missing from the converter table")
	}
}

func TestTimeHelpers(t *testing.T) {
	cfg := quietConfig()
	cfg.Time.DefaultTimezone = "Europe/Berlin"
	cfg.Time.ParseFormats = []string{"%d.%m.%Y %H:%M"}
	tk, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// configured formats replace the defaults and are read as UTC
	i, err := tk.ParseTime("15.01.2024 10:30")
	if err != nil {
		t.Fatal(err)
	}
	if i.Unix() != 1705314600 {
		t.Errorf("ParseTime = %s", i)
	}
	if _, err := tk.ParseTime("2024-01-15"); !errors.IsType(err, errors.TypeParse) {
		t.Errorf("expected parse error, got %v", err)
	}

	local, err := tk.ParseTimeFormat("2024-01-15 11:30", "%Y-%m-%d %H:%M")
	if err != nil {
		t.Fatal(err)
	}
	if !local.Equal(i) {
		t.Errorf("ParseTimeFormat should read Berlin wall time, got %s", local)
	}

	got, err := tk.FormatTime(i, "%H:%M %Z")
	if err != nil {
		t.Fatal(err)
	}
	if got != "11:30 CET" {
		t.Errorf("FormatTime = %q", got)
	}

	iso, err := tk.ISO(i)
	if err != nil {
		t.Fatal(err)
	}
	if iso != "2024-01-15T11:30:00+01:00" {
		t.Errorf("ISO = %q", iso)
	}

	today, err := tk.Today()
	if err != nil {
		t.Fatal(err)
	}
	if today.After(tk.Now()) {
		t.Error("today starts after now")
	}
	start, err := today.StartOfDay("Europe/Berlin")
	if err != nil || !start.Equal(today) {
		t.Errorf("Today is not a day boundary: %s, %v", start, err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quantkit.yaml")
	src := `numbers:
  locale: de
time:
  default_timezone: Asia/Tokyo
logging:
  output: discard
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { config.Set(config.Default()) })

	tk, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if tk.Timezone() != "Asia/Tokyo" {
		t.Errorf("timezone = %q", tk.Timezone())
	}
	if config.Get().Time.DefaultTimezone != "Asia/Tokyo" {
		t.Error("Load did not install the global configuration")
	}

	again, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if again.Settings() != tk.Settings() {
		t.Errorf("Default() settings %+v differ from loaded %+v", again.Settings(), tk.Settings())
	}
}

func TestReportsFollowColorSetting(t *testing.T) {
	for _, color := range []bool{false, true} {
		cfg := quietConfig()
		cfg.Reports.Color = color
		tk, err := New(cfg)
		if err != nil {
			t.Fatal(err)
		}

		var units, zones bytes.Buffer
		if err := tk.ShowUnits(&units, false); err != nil {
			t.Fatal(err)
		}
		if err := tk.PrintZones(&zones, instant.ListOptions{Filter: "tokyo"}, true); err != nil {
			t.Fatal(err)
		}
		for name, out := range map[string]string{"units": units.String(), "zones": zones.String()} {
			if got := strings.Contains(out, ui.Reset); got != color {
				t.Errorf("color=%v: %s report has escape codes = %v", color, name, got)
			}
		}
	}
}
