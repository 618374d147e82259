package export

import (
	"time"

	"github.com/breezy-weather/provider-service/internal/breezy"
	"github.com/breezy-weather/provider-service/internal/unit"
)

// Canonical storage unit tags carried in every quantity's originalUnit.
// Changing any of these is a schema major version bump.
const (
	canonicalTemperature   = "c"
	canonicalPrecipitation = "mm"
	canonicalDistance      = "m"
	canonicalPressure      = "mb"
	canonicalDuration      = "h"
)

// temperatureQuantity projects an optional Celsius value. Nil propagates
// as nil; the converter is never consulted for absent input.
func temperatureQuantity(v *float64, o Options) *breezy.DoubleUnit {
	if v == nil {
		return nil
	}
	return &breezy.DoubleUnit{
		OriginalValue:               *v,
		OriginalUnit:                canonicalTemperature,
		PreferredUnitValue:          o.Temperature.Convert(*v),
		PreferredUnitUnit:           o.Temperature.ID(),
		PreferredUnitFormatted:      o.Temperature.Format(o.Locale, *v),
		PreferredUnitFormattedShort: o.Temperature.FormatShort(o.Locale, *v),
	}
}

// degreeDayQuantity projects a temperature delta. Degree-days convert
// without the zero-point offset and have no short rendering of their own;
// both formatted fields carry the same string.
func degreeDayQuantity(v *float64, o Options) *breezy.DoubleUnit {
	if v == nil {
		return nil
	}
	formatted := o.Temperature.FormatDegreeDay(o.Locale, *v)
	return &breezy.DoubleUnit{
		OriginalValue:               *v,
		OriginalUnit:                canonicalTemperature,
		PreferredUnitValue:          o.Temperature.ConvertDegreeDay(*v),
		PreferredUnitUnit:           o.Temperature.ID(),
		PreferredUnitFormatted:      formatted,
		PreferredUnitFormattedShort: formatted,
	}
}

func scalarQuantity(v *float64, canonicalUnit string, u unit.ScalarUnit, o Options) *breezy.DoubleUnit {
	if v == nil {
		return nil
	}
	return &breezy.DoubleUnit{
		OriginalValue:               *v,
		OriginalUnit:                canonicalUnit,
		PreferredUnitValue:          u.Convert(*v),
		PreferredUnitUnit:           u.ID(),
		PreferredUnitFormatted:      u.Format(o.Locale, *v),
		PreferredUnitFormattedShort: u.FormatShort(o.Locale, *v),
	}
}

func precipitationQuantity(v *float64, o Options) *breezy.DoubleUnit {
	return scalarQuantity(v, canonicalPrecipitation, o.Precipitation, o)
}

func distanceQuantity(v *float64, o Options) *breezy.DoubleUnit {
	return scalarQuantity(v, canonicalDistance, o.Distance, o)
}

func pressureQuantity(v *float64, o Options) *breezy.DoubleUnit {
	return scalarQuantity(v, canonicalPressure, o.Pressure, o)
}

// durationQuantity always stays in hours; there is no user preference for
// durations.
func durationQuantity(v *float64, o Options) *breezy.DoubleUnit {
	return scalarQuantity(v, canonicalDuration, unit.Duration("h"), o)
}

// percentValue projects a 0–100 scale value with its locale rendering.
func percentValue(v *float64, o Options) *breezy.Percent {
	if v == nil {
		return nil
	}
	return &breezy.Percent{
		Value:     *v,
		Formatted: unit.FormatPercent(o.Locale, *v, o.PercentDigits),
	}
}

// percentFromInt projects integer percentages such as cloud cover.
func percentFromInt(v *int, o Options) *breezy.Percent {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return percentValue(&f, o)
}

// epochMillis converts an optional timestamp to epoch milliseconds.
func epochMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
