// Package toolkit assembles the number formatter, unit converter and
// timestamp helpers from a single configuration.
// Callers that need only one of them can use the packages directly.
package toolkit

import (
	"io"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"quantkit/core/instant"
	"quantkit/core/numfmt"
	"quantkit/core/units"
	"quantkit/internal/config"
	"quantkit/internal/errors"
	"quantkit/internal/logging"
)

// Toolkit bundles configured defaults. It is immutable after New and safe
// for concurrent use.
type Toolkit struct {
	settings  numfmt.Settings
	converter *units.Converter
	timezone  string
	formats   []string
	color     bool
	log       *zap.Logger
}

// New builds a toolkit from cfg. A nil cfg means config.Default().
// The global logger is reconfigured from cfg.Logging.
func New(cfg *config.Config) (*Toolkit, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return nil, errors.Config("failed to initialize logging", err)
	}
	log := logging.Named("toolkit")

	settings, err := numberSettings(cfg.Numbers, log)
	if err != nil {
		return nil, err
	}

	table := units.Builtin()
	for _, path := range cfg.Units.CustomTables {
		categories, err := units.LoadTable(path)
		if err != nil {
			return nil, err
		}
		if table, err = table.Extend(categories...); err != nil {
			return nil, err
		}
	}

	if _, err := instant.LoadZone(cfg.Time.DefaultTimezone); err != nil {
		return nil, err
	}

	formats := cfg.Time.ParseFormats
	if len(formats) == 0 {
		formats = instant.DefaultFormats()
	}

	t := &Toolkit{
		settings:  settings,
		converter: units.NewConverter(table),
		timezone:  cfg.Time.DefaultTimezone,
		formats:   append([]string(nil), formats...),
		color:     cfg.Reports.Color,
		log:       log,
	}

	log.Info("toolkit ready",
		zap.String("thousands_sep", settings.ThousandsSep),
		zap.String("decimal_sep", settings.DecimalSep),
		zap.Int("unit_categories", len(table.Categories())),
		zap.String("timezone", t.timezone),
		zap.Int("parse_formats", len(t.formats)))
	return t, nil
}

// Default builds a toolkit from the global configuration
func Default() (*Toolkit, error) {
	return New(config.Get())
}

// Load reads a configuration file, installs it as the global
// configuration and builds a toolkit from it.
func Load(path string) (*Toolkit, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	config.Set(cfg)
	return New(cfg)
}

func numberSettings(n config.NumbersConfig, log *zap.Logger) (numfmt.Settings, error) {
	s := numfmt.Settings{
		ThousandsSep: n.ThousandsSeparator,
		DecimalSep:   n.DecimalSeparator,
		Prefix:       n.Prefix,
		Suffix:       n.Suffix,
		Decimals:     n.Decimals,
	}

	if n.Locale != "" {
		tag, err := language.Parse(n.Locale)
		if err != nil {
			return numfmt.Settings{}, errors.Config("invalid locale", err).WithContext("locale", n.Locale)
		}
		if d := config.Default().Numbers; n.ThousandsSeparator != d.ThousandsSeparator || n.DecimalSeparator != d.DecimalSeparator {
			log.Warn("locale overrides configured separators", zap.String("locale", n.Locale))
		}
		s = s.Locale(tag)
	}

	if err := s.Validate(); err != nil {
		return numfmt.Settings{}, err
	}
	return s, nil
}

// Settings returns the configured number display settings
func (t *Toolkit) Settings() numfmt.Settings { return t.settings }

// Converter returns the converter over the built-in and custom unit tables
func (t *Toolkit) Converter() *units.Converter { return t.converter }

// Timezone returns the default timezone identifier
func (t *Toolkit) Timezone() string { return t.timezone }

// Number wraps v with the configured settings
func (t *Toolkit) Number(v float64) (numfmt.Number, error) {
	return numfmt.NewWithSettings(v, t.settings)
}

// FormatNumber renders v in style with the configured settings
func (t *Toolkit) FormatNumber(v float64, style numfmt.Style, overrides ...numfmt.Override) (string, error) {
	n, err := t.Number(v)
	if err != nil {
		return "", err
	}
	return n.Format(style, overrides...)
}

// ParseNumber reads s written in style with the configured settings
func (t *Toolkit) ParseNumber(s string, style numfmt.Style) (numfmt.Number, error) {
	return numfmt.ParseNumber(s, style, t.settings, numfmt.EnforceNone)
}

// Convert converts v between units; an empty category is inferred
func (t *Toolkit) Convert(v float64, from, to, category string) (float64, error) {
	return t.converter.Convert(v, from, to, category)
}

// ParseTime reads s with the configured parse formats
func (t *Toolkit) ParseTime(s string) (instant.Instant, error) {
	i, err := instant.ParseWith(s, t.formats)
	if err != nil {
		t.log.Debug("timestamp rejected", zap.String("input", s))
		return instant.Instant{}, err
	}
	return i, nil
}

// ParseTimeFormat reads s with one strftime format in the default timezone
func (t *Toolkit) ParseTimeFormat(s, format string) (instant.Instant, error) {
	return instant.ParseFormat(s, format, t.timezone)
}

// Now returns the current instant
func (t *Toolkit) Now() instant.Instant {
	return instant.Now()
}

// Today returns local midnight in the default timezone
func (t *Toolkit) Today() (instant.Instant, error) {
	return instant.Today(t.timezone)
}

// FormatTime renders i with a strftime format in the default timezone
func (t *Toolkit) FormatTime(i instant.Instant, format string) (string, error) {
	return i.Format(format, t.timezone)
}

// ISO renders i as ISO 8601 in the default timezone
func (t *Toolkit) ISO(i instant.Instant) (string, error) {
	return i.ISO(t.timezone)
}

// ShowUnits writes the unit catalog report
func (t *Toolkit) ShowUnits(w io.Writer, detailed bool) error {
	return t.converter.WriteCatalog(w, units.ReportOptions{Detailed: detailed, Color: t.color})
}

// PrintZones writes a zone listing; opts.Color is taken from the configuration
func (t *Toolkit) PrintZones(w io.Writer, opts instant.ListOptions, detailed bool) error {
	opts.Color = t.color
	return instant.PrintZones(w, opts, detailed)
}
