package export

import (
	"golang.org/x/text/language"

	"github.com/breezy-weather/provider-service/internal/unit"
)

// Options are the user display preferences applied while normalizing.
type Options struct {
	Temperature   unit.TemperatureUnit
	Precipitation unit.ScalarUnit
	Distance      unit.ScalarUnit
	Pressure      unit.ScalarUnit
	Locale        language.Tag
	PercentDigits int
}

// NewOptions resolves unit ids into converters. Unknown ids panic: unit
// preferences come from validated configuration, so a bad id here is a
// caller bug.
func NewOptions(temperatureID, precipitationID, distanceID, pressureID string, locale language.Tag, percentDigits int) Options {
	return Options{
		Temperature:   unit.Temperature(temperatureID),
		Precipitation: unit.Precipitation(precipitationID),
		Distance:      unit.Distance(distanceID),
		Pressure:      unit.Pressure(pressureID),
		Locale:        locale,
		PercentDigits: percentDigits,
	}
}
