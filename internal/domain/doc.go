// Package domain models the internal weather aggregate and its derived
// values.
//
// # Data Model
//
// A Location owns at most one Weather aggregate, assembled upstream from
// provider responses and stored by the persistence layer. Every optional
// field is a pointer: nil means "not reported by the source", which is a
// different statement than a reported zero. Nothing in this package
// synthesizes values for missing data.
//
// Canonical storage units, independent of display preferences:
//
//	temperature    °C
//	precipitation  mm
//	distance       m
//	pressure       mb
//	duration       h
//	percentages    0–100 scale
//
// # Air Quality
//
// Pollutant concentrations are µg/m³ (CO: mg/m³). The index follows the
// European AQI levels (good through extremely poor) with index steps
// 0/20/50/100/150/250 and per-pollutant concentration breakpoints; between
// breakpoints the index is interpolated linearly and past the last
// breakpoint it is extrapolated with the final segment's slope. The overall
// index is the maximum over reported pollutants. An aggregate with no
// reported pollutant is invalid and must be suppressed by consumers rather
// than rendered as all-nil.
//
// # Pollen
//
// Allergen concentrations are grains/m³, mapped to six risk levels
// (None, Very low, Low, Moderate, High, Very high) with shared bounds
// 1/26/51/101/201. Validity works like air quality: at least one reported
// allergen.
//
// # Minutely Bulletin
//
// The next-hour bulletin title and description are derived from the
// minutely series. Intervals with intensity below 0.1 mm/h count as dry.
// The phrasing distinguishes precipitation that is ongoing, ending,
// starting, or absent.
package domain
