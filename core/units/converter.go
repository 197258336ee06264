package units

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"quantkit/internal/errors"
	"quantkit/internal/logging"
)

// Converter performs conversions over a table
type Converter struct {
	table *Table
}

// New creates a converter over the built-in table
func New() *Converter {
	return NewConverter(Builtin())
}

// NewConverter creates a converter over table; nil means the built-in table
func NewConverter(table *Table) *Converter {
	if table == nil {
		table = Builtin()
	}
	return &Converter{table: table}
}

// Table returns the table in use
func (c *Converter) Table() *Table {
	return c.table
}

// Convert converts v between two units. An empty category searches every
// category that knows both symbols and fails when none or several match.
func (c *Converter) Convert(v float64, from, to, category string) (float64, error) {
	src, dst, err := c.resolve(from, to, category)
	if err != nil {
		return 0, err
	}
	return convert(v, src, dst)
}

// ConvertBatch converts every value in order. The first failure aborts.
func (c *Converter) ConvertBatch(vs []float64, from, to, category string) ([]float64, error) {
	src, dst, err := c.resolve(from, to, category)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		r, err := convert(v, src, dst)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (c *Converter) resolve(from, to, category string) (Unit, Unit, error) {
	if category != "" {
		cat, ok := c.table.Category(category)
		if !ok {
			return Unit{}, Unit{}, errors.Conversion("unknown category %q", category).
				WithContext("category", category)
		}
		src, ok := cat.Unit(from)
		if !ok {
			return Unit{}, Unit{}, errors.Conversion("source unit not supported in %s: %s", cat.Name, from).
				WithContext("category", cat.Name).
				WithContext("unit", from)
		}
		dst, ok := cat.Unit(to)
		if !ok {
			return Unit{}, Unit{}, errors.Conversion("target unit not supported in %s: %s", cat.Name, to).
				WithContext("category", cat.Name).
				WithContext("unit", to)
		}
		return src, dst, nil
	}

	matches := c.table.containing(from, to)
	switch len(matches) {
	case 0:
		return Unit{}, Unit{}, errors.Conversion("no category converts %s to %s", from, to).
			WithContext("from", from).
			WithContext("to", to)
	case 1:
		logging.Debug("resolved unit category",
			zap.String("from", from),
			zap.String("to", to),
			zap.String("category", matches[0].Name))
		src, _ := matches[0].Unit(from)
		dst, _ := matches[0].Unit(to)
		return src, dst, nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return Unit{}, Unit{}, errors.Conversion("%s to %s is ambiguous between %s", from, to, strings.Join(names, ", ")).
			WithContext("categories", names)
	}
}

// convert maps v through the base unit using exact rationals. The float is
// read through its shortest decimal form so 0.1 means one tenth.
func convert(v float64, src, dst Unit) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Validation("cannot convert non-finite value %v", v)
	}

	base := src.toBase(decimal.NewFromFloat(v).Rat())
	f, _ := dst.fromBase(base).Float64()
	if math.IsInf(f, 0) {
		return 0, errors.Conversion("%v %s overflows in %s", v, src.Symbol, dst.Symbol)
	}
	return f, nil
}

// ConvertExact converts a decimal without leaving rational arithmetic
func (c *Converter) ConvertExact(v decimal.Decimal, from, to, category string, places int32) (decimal.Decimal, error) {
	src, dst, err := c.resolve(from, to, category)
	if err != nil {
		return decimal.Zero, err
	}
	r := dst.fromBase(src.toBase(v.Rat()))
	return decimal.NewFromBigRat(r, places), nil
}

// ConvertLength converts between length units
func (c *Converter) ConvertLength(v float64, from, to string) (float64, error) {
	return c.Convert(v, from, to, Length)
}

// ConvertLengthBatch converts lengths in order
func (c *Converter) ConvertLengthBatch(vs []float64, from, to string) ([]float64, error) {
	return c.ConvertBatch(vs, from, to, Length)
}

// ConvertLongitude is an alias of ConvertLength
func (c *Converter) ConvertLongitude(v float64, from, to string) (float64, error) {
	return c.ConvertLength(v, from, to)
}

// ConvertLongitudeBatch is an alias of ConvertLengthBatch
func (c *Converter) ConvertLongitudeBatch(vs []float64, from, to string) ([]float64, error) {
	return c.ConvertLengthBatch(vs, from, to)
}

// ConvertMass converts between mass units
func (c *Converter) ConvertMass(v float64, from, to string) (float64, error) {
	return c.Convert(v, from, to, Mass)
}

// ConvertMassBatch converts masses in order
func (c *Converter) ConvertMassBatch(vs []float64, from, to string) ([]float64, error) {
	return c.ConvertBatch(vs, from, to, Mass)
}

// ConvertArea converts between area units
func (c *Converter) ConvertArea(v float64, from, to string) (float64, error) {
	return c.Convert(v, from, to, Area)
}

// ConvertAreaBatch converts areas in order
func (c *Converter) ConvertAreaBatch(vs []float64, from, to string) ([]float64, error) {
	return c.ConvertBatch(vs, from, to, Area)
}

// ConvertVolume converts between volume units
func (c *Converter) ConvertVolume(v float64, from, to string) (float64, error) {
	return c.Convert(v, from, to, Volume)
}

// ConvertVolumeBatch converts volumes in order
func (c *Converter) ConvertVolumeBatch(vs []float64, from, to string) ([]float64, error) {
	return c.ConvertBatch(vs, from, to, Volume)
}

// ConvertSpeed converts between speed units
func (c *Converter) ConvertSpeed(v float64, from, to string) (float64, error) {
	return c.Convert(v, from, to, Speed)
}

// ConvertSpeedBatch converts speeds in order
func (c *Converter) ConvertSpeedBatch(vs []float64, from, to string) ([]float64, error) {
	return c.ConvertBatch(vs, from, to, Speed)
}

// ConvertEnergy converts between energy units
func (c *Converter) ConvertEnergy(v float64, from, to string) (float64, error) {
	return c.Convert(v, from, to, Energy)
}

// ConvertEnergyBatch converts energies in order
func (c *Converter) ConvertEnergyBatch(vs []float64, from, to string) ([]float64, error) {
	return c.ConvertBatch(vs, from, to, Energy)
}

// ConvertPressure converts between pressure units
func (c *Converter) ConvertPressure(v float64, from, to string) (float64, error) {
	return c.Convert(v, from, to, Pressure)
}

// ConvertPressureBatch converts pressures in order
func (c *Converter) ConvertPressureBatch(vs []float64, from, to string) ([]float64, error) {
	return c.ConvertBatch(vs, from, to, Pressure)
}

// ConvertPower converts between power units
func (c *Converter) ConvertPower(v float64, from, to string) (float64, error) {
	return c.Convert(v, from, to, Power)
}

// ConvertPowerBatch converts powers in order
func (c *Converter) ConvertPowerBatch(vs []float64, from, to string) ([]float64, error) {
	return c.ConvertBatch(vs, from, to, Power)
}

// ConvertTemperature converts between temperature scales (C, F, K, R)
func (c *Converter) ConvertTemperature(v float64, from, to string) (float64, error) {
	return c.Convert(v, from, to, Temperature)
}

// ConvertTemperatureBatch converts temperatures in order
func (c *Converter) ConvertTemperatureBatch(vs []float64, from, to string) ([]float64, error) {
	return c.ConvertBatch(vs, from, to, Temperature)
}
