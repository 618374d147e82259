package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTemperatureConvert(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		celsius  float64
		expected float64
	}{
		{"celsius passthrough", "c", 15, 15},
		{"fahrenheit", "f", 15, 59},
		{"fahrenheit freezing", "f", 0, 32},
		{"kelvin", "k", 0, 273.15},
		{"kelvin negative", "k", -273.15, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Temperature(tt.id).Convert(tt.celsius), 1e-9)
		})
	}
}

func TestTemperatureConvertDegreeDay(t *testing.T) {
	// Degree-days are deltas: no zero-point offset.
	assert.InDelta(t, 18.0, Temperature("f").ConvertDegreeDay(10), 1e-9)
	assert.InDelta(t, 10.0, Temperature("k").ConvertDegreeDay(10), 1e-9)
	assert.InDelta(t, 10.0, Temperature("c").ConvertDegreeDay(10), 1e-9)

	// The plain conversion differs for the same input.
	assert.InDelta(t, 50.0, Temperature("f").Convert(10), 1e-9)
}

func TestTemperatureFormat(t *testing.T) {
	f := Temperature("f")
	assert.Equal(t, "59°F", f.Format(language.English, 15))
	assert.Equal(t, "59°", f.FormatShort(language.English, 15))
	assert.Equal(t, "27°F", f.FormatDegreeDay(language.English, 15))
}

func TestScalarConvert(t *testing.T) {
	tests := []struct {
		name     string
		unit     ScalarUnit
		value    float64
		expected float64
	}{
		{"meters passthrough", Distance("m"), 1609.344, 1609.344},
		{"kilometers", Distance("km"), 1500, 1.5},
		{"miles", Distance("mi"), 1609.344, 1},
		{"nautical miles", Distance("nmi"), 1852, 1},
		{"feet", Distance("ft"), 1, 3.28084},
		{"millimeters passthrough", Precipitation("mm"), 12.7, 12.7},
		{"inches", Precipitation("in"), 25.4, 1},
		{"centimeters", Precipitation("cm"), 25, 2.5},
		{"liters per square meter", Precipitation("lpsqm"), 3.2, 3.2},
		{"millibars passthrough", Pressure("mb"), 1013.25, 1013.25},
		{"hectopascals", Pressure("hpa"), 1013.25, 1013.25},
		{"kilopascals", Pressure("kpa"), 1013.25, 101.325},
		{"atmospheres", Pressure("atm"), 1013.25, 1},
		{"hours passthrough", Duration("h"), 7.5, 7.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.unit.Convert(tt.value), 1e-6)
		})
	}
}

func TestScalarRoundTrip(t *testing.T) {
	// Linear unit families are invertible: dividing the converted value by
	// the conversion of 1 reproduces the canonical value.
	units := []ScalarUnit{
		Distance("km"), Distance("mi"), Distance("nmi"), Distance("ft"),
		Precipitation("cm"), Precipitation("in"),
		Pressure("kpa"), Pressure("atm"), Pressure("mmhg"), Pressure("inhg"), Pressure("kgfpsqcm"),
	}
	const canonical = 123.456
	for _, u := range units {
		t.Run(u.ID(), func(t *testing.T) {
			back := u.Convert(canonical) / u.Convert(1)
			assert.InDelta(t, canonical, back, 1e-9)
		})
	}
}

func TestScalarFormat(t *testing.T) {
	assert.Equal(t, "1.5 km", Distance("km").Format(language.English, 1500))
	assert.Equal(t, "1 mi", Distance("mi").Format(language.English, 1609.344))
	// Scalar kinds have no abbreviated variant.
	assert.Equal(t,
		Distance("km").Format(language.English, 1500),
		Distance("km").FormatShort(language.English, 1500),
	)
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		digits   int
		expected string
	}{
		{"zero", 0, 0, "0%"},
		{"hundred", 100, 0, "100%"},
		{"mid scale", 68, 0, "68%"},
		{"fraction digits", 62.5, 1, "62.5%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPercent(language.English, tt.value, tt.digits))
		})
	}
}

func TestUnknownUnitPanics(t *testing.T) {
	assert.Panics(t, func() { Temperature("rankine") })
	assert.Panics(t, func() { Distance("furlong") })
	assert.Panics(t, func() { Precipitation("bucket") })
	assert.Panics(t, func() { Pressure("psi") })
	assert.Panics(t, func() { Duration("min") })
}
