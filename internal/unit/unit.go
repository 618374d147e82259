// Package unit converts canonical weather values into user-selectable
// display units and renders them as locale-aware strings.
//
// Canonical storage units are Celsius, millimeters, meters, millibars, and
// hours. Each quantity kind exposes a closed table of display units keyed by
// a stable id; looking up an unknown id panics, since a bad id can only come
// from a caller bug, never from data.
package unit

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// TemperatureUnit is a selectable temperature display unit. Conversions
// start from Celsius. Degree-day quantities are temperature deltas and use
// an offset-free conversion.
type TemperatureUnit struct {
	id          string
	convert     func(celsius float64) float64
	convertDD   func(celsius float64) float64
	symbol      string
	shortSymbol string
	precision   int
}

var temperatureUnits = map[string]TemperatureUnit{
	"c": {
		id:          "c",
		convert:     func(c float64) float64 { return c },
		convertDD:   func(c float64) float64 { return c },
		symbol:      "°C",
		shortSymbol: "°",
		precision:   1,
	},
	"f": {
		id:          "f",
		convert:     func(c float64) float64 { return 32 + c*1.8 },
		convertDD:   func(c float64) float64 { return c * 1.8 },
		symbol:      "°F",
		shortSymbol: "°",
		precision:   1,
	},
	"k": {
		id:          "k",
		convert:     func(c float64) float64 { return c + 273.15 },
		convertDD:   func(c float64) float64 { return c },
		symbol:      "K",
		shortSymbol: "K",
		precision:   1,
	},
}

// Temperature returns the temperature unit for id. Panics on unknown ids.
func Temperature(id string) TemperatureUnit {
	u, ok := temperatureUnits[id]
	if !ok {
		panic(fmt.Sprintf("unit: unknown temperature unit %q", id))
	}
	return u
}

// ID returns the stable identifier of the unit.
func (u TemperatureUnit) ID() string { return u.id }

// Convert converts a Celsius value into this unit.
func (u TemperatureUnit) Convert(celsius float64) float64 { return u.convert(celsius) }

// ConvertDegreeDay converts a Celsius temperature delta into this unit.
// Deltas scale without the zero-point offset, so Fahrenheit multiplies by
// 1.8 and Kelvin passes through unchanged.
func (u TemperatureUnit) ConvertDegreeDay(celsius float64) float64 { return u.convertDD(celsius) }

// Format renders a Celsius value in this unit with the full unit symbol,
// e.g. "59°F".
func (u TemperatureUnit) Format(tag language.Tag, celsius float64) string {
	return formatNumber(tag, u.convert(celsius), u.precision) + u.symbol
}

// FormatShort renders a Celsius value with the abbreviated symbol,
// e.g. "59°".
func (u TemperatureUnit) FormatShort(tag language.Tag, celsius float64) string {
	return formatNumber(tag, u.convert(celsius), u.precision) + u.shortSymbol
}

// FormatDegreeDay renders a degree-day delta. There is no dedicated
// degree-day renderer; long and short output are identical.
// TODO: a dedicated degree-day formatter needs a product decision on the
// delta symbol before diverging from the plain one.
func (u TemperatureUnit) FormatDegreeDay(tag language.Tag, celsius float64) string {
	return formatNumber(tag, u.convertDD(celsius), u.precision) + u.symbol
}

// ScalarUnit is a linear display unit for distance, precipitation, pressure,
// or duration. Conversion is multiplication by a fixed factor from the
// kind's canonical unit.
type ScalarUnit struct {
	id        string
	factor    float64
	symbol    string
	precision int
}

var distanceUnits = map[string]ScalarUnit{
	"m":   {id: "m", factor: 1, symbol: "m", precision: 0},
	"km":  {id: "km", factor: 1.0 / 1000, symbol: "km", precision: 1},
	"mi":  {id: "mi", factor: 1.0 / 1609.344, symbol: "mi", precision: 1},
	"nmi": {id: "nmi", factor: 1.0 / 1852, symbol: "nmi", precision: 1},
	"ft":  {id: "ft", factor: 3.28084, symbol: "ft", precision: 0},
}

var precipitationUnits = map[string]ScalarUnit{
	"mm":    {id: "mm", factor: 1, symbol: "mm", precision: 1},
	"cm":    {id: "cm", factor: 0.1, symbol: "cm", precision: 2},
	"in":    {id: "in", factor: 1.0 / 25.4, symbol: "in", precision: 2},
	"lpsqm": {id: "lpsqm", factor: 1, symbol: "L/m²", precision: 1},
}

var pressureUnits = map[string]ScalarUnit{
	"mb":       {id: "mb", factor: 1, symbol: "mb", precision: 0},
	"kpa":      {id: "kpa", factor: 0.1, symbol: "kPa", precision: 1},
	"hpa":      {id: "hpa", factor: 1, symbol: "hPa", precision: 0},
	"atm":      {id: "atm", factor: 1.0 / 1013.25, symbol: "atm", precision: 3},
	"mmhg":     {id: "mmhg", factor: 0.75006157584566, symbol: "mmHg", precision: 0},
	"inhg":     {id: "inhg", factor: 1.0 / 33.8639, symbol: "inHg", precision: 2},
	"kgfpsqcm": {id: "kgfpsqcm", factor: 1.0 / 980.665, symbol: "kgf/cm²", precision: 3},
}

var durationUnits = map[string]ScalarUnit{
	"h": {id: "h", factor: 1, symbol: "h", precision: 1},
}

// Distance returns the distance unit for id. Panics on unknown ids.
func Distance(id string) ScalarUnit { return lookupScalar("distance", distanceUnits, id) }

// Precipitation returns the precipitation unit for id. Panics on unknown ids.
func Precipitation(id string) ScalarUnit {
	return lookupScalar("precipitation", precipitationUnits, id)
}

// Pressure returns the pressure unit for id. Panics on unknown ids.
func Pressure(id string) ScalarUnit { return lookupScalar("pressure", pressureUnits, id) }

// Duration returns the duration unit for id. Panics on unknown ids.
func Duration(id string) ScalarUnit { return lookupScalar("duration", durationUnits, id) }

func lookupScalar(kind string, table map[string]ScalarUnit, id string) ScalarUnit {
	u, ok := table[id]
	if !ok {
		panic(fmt.Sprintf("unit: unknown %s unit %q", kind, id))
	}
	return u
}

// ID returns the stable identifier of the unit.
func (u ScalarUnit) ID() string { return u.id }

// Convert converts a canonical value into this unit.
func (u ScalarUnit) Convert(v float64) float64 { return v * u.factor }

// Format renders a canonical value in this unit with its symbol,
// e.g. "1.6 km". Scalar kinds have no abbreviated variant; FormatShort
// returns the same string.
func (u ScalarUnit) Format(tag language.Tag, v float64) string {
	return formatNumber(tag, u.Convert(v), u.precision) + " " + u.symbol
}

// FormatShort renders the same string as Format.
func (u ScalarUnit) FormatShort(tag language.Tag, v float64) string {
	return u.Format(tag, v)
}

// FormatPercent renders a 0–100 scale value as a locale-aware percentage.
// The value is divided by 100 before formatting so that 50 renders as the
// locale's "50%".
func FormatPercent(tag language.Tag, value float64, fractionDigits int) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Percent(value/100.0, number.MaxFractionDigits(fractionDigits)))
}

func formatNumber(tag language.Tag, v float64, precision int) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(precision)))
}
