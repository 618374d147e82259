package domain

import "math"

// Pollutant identifies one measured air-quality component. The string values
// are part of the export contract and must not change.
type Pollutant string

const (
	PollutantPM25 Pollutant = "pm25"
	PollutantPM10 Pollutant = "pm10"
	PollutantSO2  Pollutant = "so2"
	PollutantNO2  Pollutant = "no2"
	PollutantO3   Pollutant = "o3"
	PollutantCO   Pollutant = "co"
)

// Pollutants lists every supported pollutant in display order.
var Pollutants = []Pollutant{
	PollutantPM25,
	PollutantPM10,
	PollutantSO2,
	PollutantNO2,
	PollutantO3,
	PollutantCO,
}

var pollutantNames = map[Pollutant]string{
	PollutantPM25: "PM2.5",
	PollutantPM10: "PM10",
	PollutantSO2:  "Sulfur dioxide",
	PollutantNO2:  "Nitrogen dioxide",
	PollutantO3:   "Ozone",
	PollutantCO:   "Carbon monoxide",
}

// aqIndexSteps are the index values at each concentration breakpoint.
// The scale follows the European AQI levels: good, fair, moderate, poor,
// very poor, extremely poor.
var aqIndexSteps = []float64{0, 20, 50, 100, 150, 250}

// aqThresholds are per-pollutant concentration breakpoints aligned with
// aqIndexSteps. µg/m³ except CO (mg/m³).
var aqThresholds = map[Pollutant][]float64{
	PollutantPM25: {0, 10, 20, 25, 50, 75},
	PollutantPM10: {0, 20, 40, 50, 100, 150},
	PollutantSO2:  {0, 100, 200, 350, 500, 750},
	PollutantNO2:  {0, 40, 90, 120, 230, 340},
	PollutantO3:   {0, 50, 100, 130, 240, 380},
	PollutantCO:   {0, 5, 10, 35, 100, 200},
}

var aqLevelColors = []int64{
	0xFF50F0E6, // good
	0xFF50CCAA, // fair
	0xFFF0E641, // moderate
	0xFFFF5050, // poor
	0xFF960032, // very poor
	0xFF7D2181, // extremely poor
}

// PollutantName returns the English display name of a pollutant.
func PollutantName(p Pollutant) string {
	return pollutantNames[p]
}

// PollutantConcentration returns the reported concentration for a pollutant,
// or nil when the source did not report it.
func PollutantConcentration(aq AirQuality, p Pollutant) *float64 {
	switch p {
	case PollutantPM25:
		return aq.PM25
	case PollutantPM10:
		return aq.PM10
	case PollutantSO2:
		return aq.SO2
	case PollutantNO2:
		return aq.NO2
	case PollutantO3:
		return aq.O3
	case PollutantCO:
		return aq.CO
	default:
		return nil
	}
}

// AirQualityIsValid reports whether at least one pollutant was reported.
func AirQualityIsValid(aq AirQuality) bool {
	return len(ValidPollutants(aq)) > 0
}

// ValidPollutants returns the pollutants the source actually reported,
// in display order.
func ValidPollutants(aq AirQuality) []Pollutant {
	var valid []Pollutant
	for _, p := range Pollutants {
		if PollutantConcentration(aq, p) != nil {
			valid = append(valid, p)
		}
	}
	return valid
}

// PollutantIndex computes the air-quality index contribution of a single
// pollutant by linear interpolation over its breakpoint table. Returns nil
// when the pollutant was not reported.
func PollutantIndex(aq AirQuality, p Pollutant) *int {
	c := PollutantConcentration(aq, p)
	if c == nil {
		return nil
	}
	idx := int(math.Round(interpolateIndex(aqThresholds[p], *c)))
	return &idx
}

// AirQualityIndex is the overall index: the maximum of the per-pollutant
// indices. Returns nil when no pollutant was reported.
func AirQualityIndex(aq AirQuality) *int {
	var max *int
	for _, p := range ValidPollutants(aq) {
		idx := PollutantIndex(aq, p)
		if idx != nil && (max == nil || *idx > *max) {
			max = idx
		}
	}
	return max
}

// AirQualityColor returns the ARGB display color for an index value.
func AirQualityColor(index int) int64 {
	for i := 1; i < len(aqIndexSteps); i++ {
		if float64(index) <= aqIndexSteps[i] {
			return aqLevelColors[i-1]
		}
	}
	return aqLevelColors[len(aqLevelColors)-1]
}

// interpolateIndex maps a concentration onto the index scale. Between
// breakpoints the index is interpolated linearly; beyond the last breakpoint
// it is extrapolated with the slope of the final segment.
func interpolateIndex(thresholds []float64, concentration float64) float64 {
	if concentration <= 0 {
		return 0
	}
	last := len(thresholds) - 1
	for i := 1; i <= last; i++ {
		if concentration <= thresholds[i] {
			span := thresholds[i] - thresholds[i-1]
			frac := (concentration - thresholds[i-1]) / span
			return aqIndexSteps[i-1] + frac*(aqIndexSteps[i]-aqIndexSteps[i-1])
		}
	}
	slope := (aqIndexSteps[last] - aqIndexSteps[last-1]) / (thresholds[last] - thresholds[last-1])
	return aqIndexSteps[last] + (concentration-thresholds[last])*slope
}
