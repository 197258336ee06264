package units

import (
	"fmt"
	"math/big"
	"sync"
)

// Category names of the built-in table
const (
	Length      = "length"
	Mass        = "mass"
	Area        = "area"
	Volume      = "volume"
	Speed       = "speed"
	Energy      = "energy"
	Pressure    = "pressure"
	Power       = "power"
	Temperature = "temperature"
)

// def is a unit literal; scale and offset accept anything big.Rat.SetString
// does, including "5/18" and "1e-12".
type def struct {
	symbol string
	scale  string
	offset string
	desc   string
}

type categoryDef struct {
	name  string
	base  string
	units []def
}

var builtinDefs = []categoryDef{
	{Length, "m", []def{
		{"pm", "1e-12", "", "picometer - extremely small length, atomic scale measurements"},
		{"nm", "1e-9", "", "nanometer - wavelength of light, molecular dimensions"},
		{"um", "1e-6", "", "micrometer - microscopic measurements, cell biology"},
		{"mm", "0.001", "", "millimeter - small precise measurements, engineering"},
		{"cm", "0.01", "", "centimeter - everyday measurements, human scale"},
		{"dm", "0.1", "", "decimeter - rarely used, 10 centimeters"},
		{"m", "1", "", "meter - standard unit of length in SI system"},
		{"dam", "10", "", "decameter - rarely used, 10 meters"},
		{"hm", "100", "", "hectometer - rarely used, 100 meters"},
		{"km", "1000", "", "kilometer - long distances, geography"},
		{"inch", "0.0254", "", "inch - imperial unit, common in US measurements"},
		{"foot", "0.3048", "", "foot - imperial unit, human height, room dimensions"},
		{"yard", "0.9144", "", "yard - imperial unit, fabric, sports fields"},
		{"mile", "1609.344", "", "mile - long distances in imperial system"},
		{"nautical_mile", "1852", "", "nautical mile - maritime and aviation navigation"},
		{"angstrom", "1e-10", "", "angstrom - atomic and molecular dimensions"},
		{"mil", "0.0000254", "", "mil - thousandth of an inch, thin materials"},
		{"furlong", "201.168", "", "furlong - horse racing, old agricultural measurements"},
		{"fathom", "1.8288", "", "fathom - maritime depth measurements"},
		{"light_year", "9.461e15", "", "light year - astronomical distances"},
		{"parsec", "3.086e16", "", "parsec - astronomical unit for stellar distances"},
		{"astronomical_unit", "1.496e11", "", "astronomical unit - Earth-Sun distance"},
	}},
	{Mass, "g", []def{
		{"pg", "1e-12", "", "picogram - microscopic particles, molecular masses"},
		{"ng", "1e-9", "", "nanogram - drug dosages, trace amounts"},
		{"ug", "1e-6", "", "microgram - pharmaceutical doses, pollutants"},
		{"mg", "0.001", "", "milligram - medication doses, jewelry"},
		{"cg", "0.01", "", "centigram - rarely used metric unit"},
		{"dg", "0.1", "", "decigram - rarely used metric unit"},
		{"g", "1", "", "gram - standard mass unit, cooking, science"},
		{"dag", "10", "", "decagram - rarely used, 10 grams"},
		{"hg", "100", "", "hectogram - rarely used, 100 grams"},
		{"kg", "1000", "", "kilogram - human weight, everyday objects"},
		{"t", "1e6", "", "metric ton - heavy machinery, cargo"},
		{"ounce", "28.3495", "", "ounce - imperial mass, cooking in US"},
		{"pound", "453.592", "", "pound - human weight in imperial system"},
		{"stone", "6350.29", "", "stone - human weight in UK (14 pounds)"},
		{"ton_us", "907185", "", "US ton - heavy cargo, 2000 pounds"},
		{"ton_uk", "1016046.9", "", "UK ton - heavy cargo, 2240 pounds"},
		{"grain", "0.0647989", "", "grain - bullets, precious metals (1/7000 pound)"},
		{"dram", "1.77185", "", "dram - apothecary weight, small quantities"},
		{"troy_ounce", "31.1035", "", "troy ounce - precious metals (gold, silver)"},
		{"carat", "0.2", "", "carat - gemstone weight (200 milligrams)"},
		{"slug", "14593.9", "", "slug - physics unit related to acceleration"},
	}},
	{Area, "m2", []def{
		{"mm2", "1e-6", "", "square millimeter - tiny areas, precision measurements"},
		{"cm2", "1e-4", "", "square centimeter - small areas, everyday measurements"},
		{"dm2", "0.01", "", "square decimeter - moderate areas, rarely used"},
		{"m2", "1", "", "square meter - standard area unit, room sizes"},
		{"dam2", "100", "", "square decameter - large areas, rarely used"},
		{"hm2", "1e4", "", "square hectometer - very large areas, equivalent to hectare"},
		{"km2", "1e6", "", "square kilometer - geographical areas, cities"},
		{"sqin", "0.00064516", "", "square inch - small areas in imperial system"},
		{"sqft", "0.092903", "", "square foot - room areas, real estate in US"},
		{"sqyd", "0.836127", "", "square yard - fabric, carpeting, sports fields"},
		{"acre", "4046.86", "", "acre - agricultural land, real estate"},
		{"hectare", "10000", "", "hectare - agricultural land, 10,000 m²"},
		{"sqmile", "2.59e6", "", "square mile - large geographical areas"},
		{"barn", "1e-28", "", "barn - nuclear cross-sections (very tiny area)"},
		{"are", "100", "", "are - 100 square meters, rarely used"},
		{"rood", "1011.71", "", "rood - old agricultural unit, quarter acre"},
	}},
	{Volume, "l", []def{
		{"mm3", "1e-6", "", "cubic millimeter - tiny volumes"},
		{"cm3", "0.001", "", "cubic centimeter - small volumes, medical doses"},
		{"dm3", "1", "", "cubic decimeter - equivalent to liter"},
		{"m3", "1000", "", "cubic meter - standard volume unit, room volumes"},
		{"dam3", "1e6", "", "cubic decameter - reservoirs, a million liters"},
		{"hm3", "1e9", "", "cubic hectometer - lakes and dams"},
		{"km3", "1e12", "", "cubic kilometer - seas and glaciers"},
		{"l", "1", "", "liter - everyday liquid measurements"},
		{"ml", "0.001", "", "milliliter - small liquid amounts, medicine"},
		{"cl", "0.01", "", "centiliter - rarely used, 10 milliliters"},
		{"dl", "0.1", "", "deciliter - rarely used, 100 milliliters"},
		{"dal", "10", "", "decaliter - rarely used, 10 liters"},
		{"hl", "100", "", "hectoliter - wine and beer production"},
		{"kl", "1000", "", "kiloliter - equivalent to cubic meter"},
		{"gallon_us", "3.78541", "", "US gallon - fuel, large liquid containers"},
		{"gallon_uk", "4.54609", "", "UK gallon - larger than US gallon"},
		{"quart", "0.946353", "", "quart - cooking, quarter of a gallon"},
		{"pint", "0.473176", "", "pint - beverages, half a quart"},
		{"cup", "0.24", "", "cup - cooking measurements"},
		{"fluid_ounce", "0.0295735", "", "fluid ounce - small liquid measurements"},
		{"cubic_inch", "0.0163871", "", "cubic inch - small volumes in imperial"},
		{"tablespoon", "0.0147868", "", "tablespoon - cooking, 15 milliliters"},
		{"teaspoon", "0.00492892", "", "teaspoon - cooking, 5 milliliters"},
		{"barrel_oil", "158.987", "", "oil barrel - petroleum industry standard"},
		{"bushel", "35.2391", "", "bushel - agricultural dry goods"},
	}},
	{Speed, "m/s", []def{
		{"mm/s", "0.001", "", "millimeters per second - slow mechanical motion"},
		{"cm/s", "0.01", "", "centimeters per second - fluid flow, slow motion"},
		{"m/s", "1", "", "meters per second - scientific measurements"},
		{"km/h", "5/18", "", "kilometers per hour - vehicle speeds"},
		{"mph", "0.44704", "", "miles per hour - vehicle speeds in US/UK"},
		{"knot", "0.514444", "", "knot - maritime and aviation speeds"},
		{"fps", "0.3048", "", "feet per second - projectile speeds"},
		{"mach", "343", "", "mach number - supersonic speeds relative to sound"},
	}},
	{Energy, "J", []def{
		{"J", "1", "", "joule - standard energy unit"},
		{"kJ", "1000", "", "kilojoule - food energy, 1000 joules"},
		{"MJ", "1e6", "", "megajoule - fuel energy content"},
		{"GJ", "1e9", "", "gigajoule - industrial energy use"},
		{"TJ", "1e12", "", "terajoule - power station output"},
		{"cal", "4.184", "", "calorie - food energy, heat"},
		{"kcal", "4184", "", "kilocalorie - food Calories (capital C)"},
		{"Wh", "3600", "", "watt-hour - electrical energy consumption"},
		{"kWh", "3.6e6", "", "kilowatt-hour - household electricity bills"},
		{"BTU", "1055.06", "", "British thermal unit - heating/cooling"},
		{"erg", "1e-7", "", "erg - very small energy unit in CGS system"},
		{"foot_pound", "1.35582", "", "foot-pound - mechanical work in imperial"},
		{"electron_volt", "1.602e-19", "", "electron volt - atomic and particle physics"},
	}},
	{Pressure, "Pa", []def{
		{"Pa", "1", "", "pascal - standard pressure unit"},
		{"hPa", "100", "", "hectopascal - weather maps, same as mbar"},
		{"kPa", "1000", "", "kilopascal - moderate pressures"},
		{"MPa", "1e6", "", "megapascal - material strength"},
		{"GPa", "1e9", "", "gigapascal - elastic moduli"},
		{"bar", "1e5", "", "bar - atmospheric pressure, weather"},
		{"mbar", "100", "", "millibar - meteorology"},
		{"atm", "101325", "", "atmosphere - standard atmospheric pressure"},
		{"psi", "6894.76", "", "pounds per square inch - tire pressure, US"},
		{"mmHg", "133.322", "", "millimeters of mercury - blood pressure"},
		{"torr", "133.322", "", "torr - vacuum measurements, same as mmHg"},
		{"inHg", "3386.39", "", "inches of mercury - barometric pressure"},
	}},
	{Power, "W", []def{
		{"W", "1", "", "watt - standard power unit"},
		{"kW", "1000", "", "kilowatt - household appliances"},
		{"MW", "1e6", "", "megawatt - power plants, large facilities"},
		{"GW", "1e9", "", "gigawatt - national grids"},
		{"TW", "1e12", "", "terawatt - global energy production"},
		{"hp", "745.7", "", "horsepower - engine power, mechanical"},
		{"metric_hp", "735.499", "", "metric horsepower - slightly different from hp"},
		{"BTU_per_hour", "0.293071", "", "BTU per hour - heating/cooling capacity"},
	}},
	{Temperature, "K", []def{
		{"C", "1", "273.15", "Celsius - water freezes at 0°, boils at 100°"},
		{"F", "5/9", "459.67", "Fahrenheit - water freezes at 32°, boils at 212°"},
		{"K", "1", "", "Kelvin - absolute temperature scale, starts at absolute zero"},
		{"R", "5/9", "", "Rankine - absolute scale using Fahrenheit degrees"},
	}},
}

var (
	builtinOnce  sync.Once
	builtinTable *Table
)

// Builtin returns the shared built-in table
func Builtin() *Table {
	builtinOnce.Do(func() {
		builtinTable = mustBuild(builtinDefs)
	})
	return builtinTable
}

func mustBuild(defs []categoryDef) *Table {
	categories := make([]*Category, 0, len(defs))
	for _, cd := range defs {
		units := make([]Unit, 0, len(cd.units))
		for _, d := range cd.units {
			u, err := newUnit(d.symbol, d.desc, mustRat(d.scale), mustRat(d.offset))
			if err != nil {
				panic(err)
			}
			units = append(units, u)
		}
		c, err := NewCategory(cd.name, cd.base, units...)
		if err != nil {
			panic(err)
		}
		categories = append(categories, c)
	}

	t, err := NewTable(categories...)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRat(s string) *big.Rat {
	if s == "" {
		return new(big.Rat)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic(fmt.Sprintf("units: bad rational literal %q", s))
	}
	return r
}
