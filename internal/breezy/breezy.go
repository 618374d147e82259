// Package breezy defines the versioned transport schema served to
// third-party consumers.
//
// Field names and nesting are a published contract: renaming or removing
// anything here is a breaking change and requires a schema major version
// bump, while purely additive fields bump the minor version. Dates are
// epoch milliseconds. Every physical quantity is a DoubleUnit pairing the
// canonical value and unit with the user-preferred rendering; the canonical
// unit strings ("c", "mm", "m", "mb", "h") never change within a major
// version.
package breezy

// DoubleUnit is the six-field quantity record. OriginalValue and
// OriginalUnit always carry the canonical storage value; the PreferredUnit
// fields carry the user-preference projection.
type DoubleUnit struct {
	OriginalValue               float64 `json:"originalValue"`
	OriginalUnit                string  `json:"originalUnit"`
	PreferredUnitValue          float64 `json:"preferredUnitValue"`
	PreferredUnitUnit           string  `json:"preferredUnitUnit"`
	PreferredUnitFormatted      string  `json:"preferredUnitFormatted"`
	PreferredUnitFormattedShort string  `json:"preferredUnitFormattedShort"`
}

// Percent is a 0–100 scale value with its locale-formatted rendering.
type Percent struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// Weather is the root of the exported tree for one location.
type Weather struct {
	RefreshTime *int64     `json:"refreshTime,omitempty"`
	Bulletin    *Bulletin  `json:"bulletin,omitempty"`
	Current     *Current   `json:"current,omitempty"`
	Daily       []Daily    `json:"daily,omitempty"`
	Hourly      []Hourly   `json:"hourly,omitempty"`
	Minutely    []Minutely `json:"minutely,omitempty"`
	Alerts      []Alert    `json:"alerts,omitempty"`
	Normals     *Normals   `json:"normals,omitempty"`
}

// Bulletin carries human-readable forecast summaries. The minutely title
// and description are generated text passed through verbatim.
type Bulletin struct {
	DailyForecast               *string `json:"dailyForecast,omitempty"`
	HourlyForecast              *string `json:"hourlyForecast,omitempty"`
	MinutelyForecastTitle       string  `json:"minutelyForecastTitle"`
	MinutelyForecastDescription string  `json:"minutelyForecastDescription"`
}

// Current mirrors the internal current observation.
type Current struct {
	WeatherText      *string      `json:"weatherText,omitempty"`
	WeatherCode      *string      `json:"weatherCode,omitempty"`
	Temperature      *Temperature `json:"temperature,omitempty"`
	Wind             *Wind        `json:"wind,omitempty"`
	UV               *UV          `json:"uV,omitempty"`
	AirQuality       *AirQuality  `json:"airQuality,omitempty"`
	RelativeHumidity *Percent     `json:"relativeHumidity,omitempty"`
	DewPoint         *DoubleUnit  `json:"dewPoint,omitempty"`
	Pressure         *DoubleUnit  `json:"pressure,omitempty"`
	CloudCover       *Percent     `json:"cloudCover,omitempty"`
	Visibility       *DoubleUnit  `json:"visibility,omitempty"`
	Ceiling          *DoubleUnit  `json:"ceiling,omitempty"`
}

// Temperature projects the feels-like bundle; each member independently
// optional.
type Temperature struct {
	Temperature               *DoubleUnit `json:"temperature,omitempty"`
	RealFeelTemperature       *DoubleUnit `json:"realFeelTemperature,omitempty"`
	RealFeelShaderTemperature *DoubleUnit `json:"realFeelShaderTemperature,omitempty"`
	ApparentTemperature       *DoubleUnit `json:"apparentTemperature,omitempty"`
	WindChillTemperature      *DoubleUnit `json:"windChillTemperature,omitempty"`
	WetBulbTemperature        *DoubleUnit `json:"wetBulbTemperature,omitempty"`
}

// Wind degree is a bearing and passes through unconverted.
type Wind struct {
	Degree *float64    `json:"degree,omitempty"`
	Speed  *DoubleUnit `json:"speed,omitempty"`
	Gusts  *DoubleUnit `json:"gusts,omitempty"`
}

// UV carries the UV index.
type UV struct {
	Index *float64 `json:"index,omitempty"`
}

// AirQuality is the exported air-quality section. Pollutants maps pollutant
// id to details for each pollutant the source reported.
type AirQuality struct {
	Index      *int                 `json:"index,omitempty"`
	IndexColor *int64               `json:"indexColor,omitempty"`
	Pollutants map[string]Pollutant `json:"pollutants,omitempty"`
}

// Pollutant is one reported air-quality component.
type Pollutant struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Concentration *float64 `json:"concentration,omitempty"`
	Index         *int     `json:"index,omitempty"`
	Color         int64    `json:"color"`
}

// Pollen is one reported allergen component.
type Pollen struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Concentration *float64 `json:"concentration,omitempty"`
	IndexName     string   `json:"indexName"`
	Color         int64    `json:"color"`
}

// Precipitation amounts by type.
type Precipitation struct {
	Total        *DoubleUnit `json:"total,omitempty"`
	Thunderstorm *DoubleUnit `json:"thunderstorm,omitempty"`
	Rain         *DoubleUnit `json:"rain,omitempty"`
	Snow         *DoubleUnit `json:"snow,omitempty"`
	Ice          *DoubleUnit `json:"ice,omitempty"`
}

// PrecipitationProbability by type.
type PrecipitationProbability struct {
	Total        *Percent `json:"total,omitempty"`
	Thunderstorm *Percent `json:"thunderstorm,omitempty"`
	Rain         *Percent `json:"rain,omitempty"`
	Snow         *Percent `json:"snow,omitempty"`
	Ice          *Percent `json:"ice,omitempty"`
}

// PrecipitationDuration by type.
type PrecipitationDuration struct {
	Total        *DoubleUnit `json:"total,omitempty"`
	Thunderstorm *DoubleUnit `json:"thunderstorm,omitempty"`
	Rain         *DoubleUnit `json:"rain,omitempty"`
	Snow         *DoubleUnit `json:"snow,omitempty"`
	Ice          *DoubleUnit `json:"ice,omitempty"`
}

// HalfDay is the day or night half of a Daily entry.
type HalfDay struct {
	WeatherText              *string                   `json:"weatherText,omitempty"`
	WeatherPhase             *string                   `json:"weatherPhase,omitempty"`
	WeatherCode              *string                   `json:"weatherCode,omitempty"`
	Temperature              *Temperature              `json:"temperature,omitempty"`
	Precipitation            *Precipitation            `json:"precipitation,omitempty"`
	PrecipitationProbability *PrecipitationProbability `json:"precipitationProbability,omitempty"`
	PrecipitationDuration    *PrecipitationDuration    `json:"precipitationDuration,omitempty"`
	Wind                     *Wind                     `json:"wind,omitempty"`
	CloudCover               *Percent                  `json:"cloudCover,omitempty"`
}

// DegreeDay carries heating and cooling degree-day quantities.
type DegreeDay struct {
	Heating *DoubleUnit `json:"heating,omitempty"`
	Cooling *DoubleUnit `json:"cooling,omitempty"`
}

// Astro is a rise/set pair in epoch milliseconds.
type Astro struct {
	RiseDate *int64 `json:"riseDate,omitempty"`
	SetDate  *int64 `json:"setDate,omitempty"`
}

// MoonPhase is the phase angle with its generated description.
type MoonPhase struct {
	Angle       *int    `json:"angle,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Daily is one exported forecast day.
type Daily struct {
	Date             int64             `json:"date"`
	Day              *HalfDay          `json:"day,omitempty"`
	Night            *HalfDay          `json:"night,omitempty"`
	DegreeDay        *DegreeDay        `json:"degreeDay,omitempty"`
	Sun              *Astro            `json:"sun,omitempty"`
	Moon             *Astro            `json:"moon,omitempty"`
	MoonPhase        *MoonPhase        `json:"moonPhase,omitempty"`
	AirQuality       *AirQuality       `json:"airQuality,omitempty"`
	Pollen           map[string]Pollen `json:"pollen,omitempty"`
	UV               *UV               `json:"uV,omitempty"`
	SunshineDuration *DoubleUnit       `json:"sunshineDuration,omitempty"`
}

// Hourly is one exported forecast hour.
type Hourly struct {
	Date                     int64                     `json:"date"`
	IsDaylight               bool                      `json:"isDaylight"`
	WeatherText              *string                   `json:"weatherText,omitempty"`
	WeatherCode              *string                   `json:"weatherCode,omitempty"`
	Temperature              *Temperature              `json:"temperature,omitempty"`
	Precipitation            *Precipitation            `json:"precipitation,omitempty"`
	PrecipitationProbability *PrecipitationProbability `json:"precipitationProbability,omitempty"`
	Wind                     *Wind                     `json:"wind,omitempty"`
	AirQuality               *AirQuality               `json:"airQuality,omitempty"`
	UV                       *UV                       `json:"uV,omitempty"`
	RelativeHumidity         *Percent                  `json:"relativeHumidity,omitempty"`
	DewPoint                 *DoubleUnit               `json:"dewPoint,omitempty"`
	Pressure                 *DoubleUnit               `json:"pressure,omitempty"`
	CloudCover               *Percent                  `json:"cloudCover,omitempty"`
	Visibility               *DoubleUnit               `json:"visibility,omitempty"`
}

// Minutely is one exported nowcast interval.
type Minutely struct {
	Date                   int64       `json:"date"`
	MinuteInterval         int         `json:"minuteInterval"`
	PrecipitationIntensity *DoubleUnit `json:"precipitationIntensity,omitempty"`
}

// Alert is one exported weather warning.
type Alert struct {
	AlertID     string  `json:"alertId"`
	StartDate   *int64  `json:"startDate,omitempty"`
	EndDate     *int64  `json:"endDate,omitempty"`
	Headline    *string `json:"headline,omitempty"`
	Description *string `json:"description,omitempty"`
	Instruction *string `json:"instruction,omitempty"`
	Source      *string `json:"source,omitempty"`
	Severity    string  `json:"severity"`
	Color       int64   `json:"color"`
}

// Normals is the exported monthly temperature baseline.
type Normals struct {
	Month                int         `json:"month"`
	DaytimeTemperature   *DoubleUnit `json:"daytimeTemperature,omitempty"`
	NighttimeTemperature *DoubleUnit `json:"nighttimeTemperature,omitempty"`
}
