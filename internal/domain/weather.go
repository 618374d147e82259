package domain

import "time"

// Weather is the internal aggregate attached to a location by the
// persistence layer. Every optional field is a pointer; nil means the
// source did not report the value, which is distinct from a reported zero.
type Weather struct {
	RefreshTime *time.Time `json:"refreshTime,omitempty"`
	Current     *Current   `json:"current,omitempty"`
	Daily       []Daily    `json:"daily,omitempty"`
	Hourly      []Hourly   `json:"hourly,omitempty"`
	Minutely    []Minutely `json:"minutely,omitempty"`
	Alerts      []Alert    `json:"alerts,omitempty"`
	Normals     *Normals   `json:"normals,omitempty"`
}

// Current is a point-in-time observation.
type Current struct {
	WeatherText      *string      `json:"weatherText,omitempty"`
	WeatherCode      *string      `json:"weatherCode,omitempty"`
	Temperature      *Temperature `json:"temperature,omitempty"`
	Wind             *Wind        `json:"wind,omitempty"`
	UV               *UV          `json:"uV,omitempty"`
	AirQuality       *AirQuality  `json:"airQuality,omitempty"`
	RelativeHumidity *float64     `json:"relativeHumidity,omitempty"`
	DewPoint         *float64     `json:"dewPoint,omitempty"`
	Pressure         *float64     `json:"pressure,omitempty"`
	CloudCover       *int         `json:"cloudCover,omitempty"`
	Visibility       *float64     `json:"visibility,omitempty"`
	Ceiling          *float64     `json:"ceiling,omitempty"`

	// Source-provided forecast summaries surfaced in the bulletin.
	DailyForecast  *string `json:"dailyForecast,omitempty"`
	HourlyForecast *string `json:"hourlyForecast,omitempty"`
}

// Temperature bundles the measured temperature with its derived feels-like
// variants. Each is independently optional.
type Temperature struct {
	Temperature               *float64 `json:"temperature,omitempty"`
	RealFeelTemperature       *float64 `json:"realFeelTemperature,omitempty"`
	RealFeelShaderTemperature *float64 `json:"realFeelShaderTemperature,omitempty"`
	ApparentTemperature       *float64 `json:"apparentTemperature,omitempty"`
	WindChillTemperature      *float64 `json:"windChillTemperature,omitempty"`
	WetBulbTemperature        *float64 `json:"wetBulbTemperature,omitempty"`
}

// Wind speed and gusts are stored in meters per second equivalents of the
// distance canonical unit; degree is a compass bearing in [0, 360).
type Wind struct {
	Degree *float64 `json:"degree,omitempty"`
	Speed  *float64 `json:"speed,omitempty"`
	Gusts  *float64 `json:"gusts,omitempty"`
}

// UV carries the UV index.
type UV struct {
	Index *float64 `json:"index,omitempty"`
}

// Precipitation amounts in millimeters, split by type.
type Precipitation struct {
	Total        *float64 `json:"total,omitempty"`
	Thunderstorm *float64 `json:"thunderstorm,omitempty"`
	Rain         *float64 `json:"rain,omitempty"`
	Snow         *float64 `json:"snow,omitempty"`
	Ice          *float64 `json:"ice,omitempty"`
}

// PrecipitationProbability in percent (0-100), split by type.
type PrecipitationProbability struct {
	Total        *float64 `json:"total,omitempty"`
	Thunderstorm *float64 `json:"thunderstorm,omitempty"`
	Rain         *float64 `json:"rain,omitempty"`
	Snow         *float64 `json:"snow,omitempty"`
	Ice          *float64 `json:"ice,omitempty"`
}

// PrecipitationDuration in hours, split by type.
type PrecipitationDuration struct {
	Total        *float64 `json:"total,omitempty"`
	Thunderstorm *float64 `json:"thunderstorm,omitempty"`
	Rain         *float64 `json:"rain,omitempty"`
	Snow         *float64 `json:"snow,omitempty"`
	Ice          *float64 `json:"ice,omitempty"`
}

// HalfDay is the day or night portion of a daily forecast entry.
type HalfDay struct {
	WeatherText              *string                   `json:"weatherText,omitempty"`
	WeatherPhase             *string                   `json:"weatherPhase,omitempty"`
	WeatherCode              *string                   `json:"weatherCode,omitempty"`
	Temperature              *Temperature              `json:"temperature,omitempty"`
	Precipitation            *Precipitation            `json:"precipitation,omitempty"`
	PrecipitationProbability *PrecipitationProbability `json:"precipitationProbability,omitempty"`
	PrecipitationDuration    *PrecipitationDuration    `json:"precipitationDuration,omitempty"`
	Wind                     *Wind                     `json:"wind,omitempty"`
	CloudCover               *int                      `json:"cloudCover,omitempty"`
}

// DegreeDay carries heating and cooling degree-days as temperature deltas
// in Celsius.
type DegreeDay struct {
	Heating *float64 `json:"heating,omitempty"`
	Cooling *float64 `json:"cooling,omitempty"`
}

// Astro is a rise/set event pair for the sun or the moon.
type Astro struct {
	RiseDate *time.Time `json:"riseDate,omitempty"`
	SetDate  *time.Time `json:"setDate,omitempty"`
}

// MoonPhase is the lunar phase angle in degrees, 0 = new moon, 180 = full.
type MoonPhase struct {
	Angle *int `json:"angle,omitempty"`
}

// Daily is one calendar day of forecast data.
type Daily struct {
	Date             time.Time   `json:"date"`
	Day              *HalfDay    `json:"day,omitempty"`
	Night            *HalfDay    `json:"night,omitempty"`
	DegreeDay        *DegreeDay  `json:"degreeDay,omitempty"`
	Sun              *Astro      `json:"sun,omitempty"`
	Moon             *Astro      `json:"moon,omitempty"`
	MoonPhase        *MoonPhase  `json:"moonPhase,omitempty"`
	AirQuality       *AirQuality `json:"airQuality,omitempty"`
	Pollen           *Pollen     `json:"pollen,omitempty"`
	UV               *UV         `json:"uV,omitempty"`
	SunshineDuration *float64    `json:"sunshineDuration,omitempty"`
}

// Hourly is one hour of forecast data.
type Hourly struct {
	Date                     time.Time                 `json:"date"`
	IsDaylight               bool                      `json:"isDaylight"`
	WeatherText              *string                   `json:"weatherText,omitempty"`
	WeatherCode              *string                   `json:"weatherCode,omitempty"`
	Temperature              *Temperature              `json:"temperature,omitempty"`
	Precipitation            *Precipitation            `json:"precipitation,omitempty"`
	PrecipitationProbability *PrecipitationProbability `json:"precipitationProbability,omitempty"`
	Wind                     *Wind                     `json:"wind,omitempty"`
	AirQuality               *AirQuality               `json:"airQuality,omitempty"`
	UV                       *UV                       `json:"uV,omitempty"`
	RelativeHumidity         *float64                  `json:"relativeHumidity,omitempty"`
	DewPoint                 *float64                  `json:"dewPoint,omitempty"`
	Pressure                 *float64                  `json:"pressure,omitempty"`
	CloudCover               *int                      `json:"cloudCover,omitempty"`
	Visibility               *float64                  `json:"visibility,omitempty"`
}

// Minutely is one interval of the short-term precipitation nowcast.
type Minutely struct {
	Date time.Time `json:"date"`
	// MinuteInterval is the length of this entry in minutes.
	MinuteInterval int `json:"minuteInterval"`
	// PrecipitationIntensity in millimeters per hour.
	PrecipitationIntensity *float64 `json:"precipitationIntensity,omitempty"`
}

// Alert is a weather warning issued by an official source. Severity is the
// stable identifier of the source severity level; Color is the display color
// already resolved by the source layer as an ARGB integer.
type Alert struct {
	AlertID     string     `json:"alertId"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Headline    *string    `json:"headline,omitempty"`
	Description *string    `json:"description,omitempty"`
	Instruction *string    `json:"instruction,omitempty"`
	Source      *string    `json:"source,omitempty"`
	Severity    string     `json:"severity"`
	Color       int64      `json:"color"`
}

// AirQuality holds per-pollutant concentrations. Units: µg/m³ for all
// pollutants except CO, which is mg/m³.
type AirQuality struct {
	PM25 *float64 `json:"pM25,omitempty"`
	PM10 *float64 `json:"pM10,omitempty"`
	SO2  *float64 `json:"sO2,omitempty"`
	NO2  *float64 `json:"nO2,omitempty"`
	O3   *float64 `json:"o3,omitempty"`
	CO   *float64 `json:"cO,omitempty"`
}

// Pollen holds per-allergen concentrations in grains per cubic meter.
type Pollen struct {
	Alder   *float64 `json:"alder,omitempty"`
	Birch   *float64 `json:"birch,omitempty"`
	Grass   *float64 `json:"grass,omitempty"`
	Mugwort *float64 `json:"mugwort,omitempty"`
	Olive   *float64 `json:"olive,omitempty"`
	Ragweed *float64 `json:"ragweed,omitempty"`
}

// Normals is the climatological temperature baseline for a month.
type Normals struct {
	Month                int      `json:"month"`
	DaytimeTemperature   *float64 `json:"daytimeTemperature,omitempty"`
	NighttimeTemperature *float64 `json:"nighttimeTemperature,omitempty"`
}
