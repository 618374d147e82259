// Package export normalizes the internal weather aggregate into the breezy
// transport schema.
//
// The normalizer is pure: it performs no I/O, allocates only the output
// tree, and is safe to call concurrently. Absent input fields propagate as
// absent output fields at every level; nothing is defaulted. Air-quality
// and pollen sections with no reported component are suppressed entirely
// rather than emitted with empty maps.
package export

import (
	"github.com/breezy-weather/provider-service/internal/breezy"
	"github.com/breezy-weather/provider-service/internal/domain"
)

// Normalize builds the exported tree for one weather aggregate under the
// given display preferences. Returns nil for a nil aggregate.
func Normalize(w *domain.Weather, o Options) *breezy.Weather {
	if w == nil {
		return nil
	}
	return &breezy.Weather{
		RefreshTime: epochMillis(w.RefreshTime),
		Bulletin:    buildBulletin(w),
		Current:     buildCurrent(w.Current, o),
		Daily:       buildDaily(w.Daily, o),
		Hourly:      buildHourly(w.Hourly, o),
		Minutely:    buildMinutely(w.Minutely, o),
		Alerts:      buildAlerts(w.Alerts),
		Normals:     buildNormals(w.Normals, o),
	}
}

// buildBulletin passes the source forecast summaries through and attaches
// the generated minutely texts verbatim.
func buildBulletin(w *domain.Weather) *breezy.Bulletin {
	b := &breezy.Bulletin{
		MinutelyForecastTitle:       domain.MinutelyTitle(w.Minutely),
		MinutelyForecastDescription: domain.MinutelyDescription(w.Minutely),
	}
	if w.Current != nil {
		b.DailyForecast = w.Current.DailyForecast
		b.HourlyForecast = w.Current.HourlyForecast
	}
	return b
}

func buildCurrent(cur *domain.Current, o Options) *breezy.Current {
	if cur == nil {
		return nil
	}
	return &breezy.Current{
		WeatherText:      cur.WeatherText,
		WeatherCode:      cur.WeatherCode,
		Temperature:      buildTemperature(cur.Temperature, o),
		Wind:             buildWind(cur.Wind, o),
		UV:               buildUV(cur.UV),
		AirQuality:       buildAirQuality(cur.AirQuality),
		RelativeHumidity: percentValue(cur.RelativeHumidity, o),
		DewPoint:         temperatureQuantity(cur.DewPoint, o),
		Pressure:         pressureQuantity(cur.Pressure, o),
		CloudCover:       percentFromInt(cur.CloudCover, o),
		Visibility:       distanceQuantity(cur.Visibility, o),
		Ceiling:          distanceQuantity(cur.Ceiling, o),
	}
}

func buildDaily(daily []domain.Daily, o Options) []breezy.Daily {
	if daily == nil {
		return nil
	}
	out := make([]breezy.Daily, 0, len(daily))
	for _, day := range daily {
		out = append(out, breezy.Daily{
			Date:             day.Date.UnixMilli(),
			Day:              buildHalfDay(day.Day, o),
			Night:            buildHalfDay(day.Night, o),
			DegreeDay:        buildDegreeDay(day.DegreeDay, o),
			Sun:              buildAstro(day.Sun),
			Moon:             buildAstro(day.Moon),
			MoonPhase:        buildMoonPhase(day.MoonPhase),
			AirQuality:       buildAirQuality(day.AirQuality),
			Pollen:           buildPollen(day.Pollen),
			UV:               buildUV(day.UV),
			SunshineDuration: durationQuantity(day.SunshineDuration, o),
		})
	}
	return out
}

func buildHourly(hourly []domain.Hourly, o Options) []breezy.Hourly {
	if hourly == nil {
		return nil
	}
	out := make([]breezy.Hourly, 0, len(hourly))
	for _, hour := range hourly {
		out = append(out, breezy.Hourly{
			Date:                     hour.Date.UnixMilli(),
			IsDaylight:               hour.IsDaylight,
			WeatherText:              hour.WeatherText,
			WeatherCode:              hour.WeatherCode,
			Temperature:              buildTemperature(hour.Temperature, o),
			Precipitation:            buildPrecipitation(hour.Precipitation, o),
			PrecipitationProbability: buildPrecipitationProbability(hour.PrecipitationProbability, o),
			Wind:                     buildWind(hour.Wind, o),
			AirQuality:               buildAirQuality(hour.AirQuality),
			UV:                       buildUV(hour.UV),
			RelativeHumidity:         percentValue(hour.RelativeHumidity, o),
			DewPoint:                 temperatureQuantity(hour.DewPoint, o),
			Pressure:                 pressureQuantity(hour.Pressure, o),
			CloudCover:               percentFromInt(hour.CloudCover, o),
			Visibility:               distanceQuantity(hour.Visibility, o),
		})
	}
	return out
}

func buildMinutely(minutely []domain.Minutely, o Options) []breezy.Minutely {
	if minutely == nil {
		return nil
	}
	out := make([]breezy.Minutely, 0, len(minutely))
	for _, minute := range minutely {
		out = append(out, breezy.Minutely{
			Date:                   minute.Date.UnixMilli(),
			MinuteInterval:         minute.MinuteInterval,
			PrecipitationIntensity: precipitationQuantity(minute.PrecipitationIntensity, o),
		})
	}
	return out
}

func buildHalfDay(hd *domain.HalfDay, o Options) *breezy.HalfDay {
	if hd == nil {
		return nil
	}
	return &breezy.HalfDay{
		WeatherText:              hd.WeatherText,
		WeatherPhase:             hd.WeatherPhase,
		WeatherCode:              hd.WeatherCode,
		Temperature:              buildTemperature(hd.Temperature, o),
		Precipitation:            buildPrecipitation(hd.Precipitation, o),
		PrecipitationProbability: buildPrecipitationProbability(hd.PrecipitationProbability, o),
		PrecipitationDuration:    buildPrecipitationDuration(hd.PrecipitationDuration, o),
		Wind:                     buildWind(hd.Wind, o),
		CloudCover:               percentFromInt(hd.CloudCover, o),
	}
}

func buildTemperature(t *domain.Temperature, o Options) *breezy.Temperature {
	if t == nil {
		return nil
	}
	return &breezy.Temperature{
		Temperature:               temperatureQuantity(t.Temperature, o),
		RealFeelTemperature:       temperatureQuantity(t.RealFeelTemperature, o),
		RealFeelShaderTemperature: temperatureQuantity(t.RealFeelShaderTemperature, o),
		ApparentTemperature:       temperatureQuantity(t.ApparentTemperature, o),
		WindChillTemperature:      temperatureQuantity(t.WindChillTemperature, o),
		WetBulbTemperature:        temperatureQuantity(t.WetBulbTemperature, o),
	}
}

func buildDegreeDay(dd *domain.DegreeDay, o Options) *breezy.DegreeDay {
	if dd == nil {
		return nil
	}
	return &breezy.DegreeDay{
		Heating: degreeDayQuantity(dd.Heating, o),
		Cooling: degreeDayQuantity(dd.Cooling, o),
	}
}

func buildPrecipitation(p *domain.Precipitation, o Options) *breezy.Precipitation {
	if p == nil {
		return nil
	}
	return &breezy.Precipitation{
		Total:        precipitationQuantity(p.Total, o),
		Thunderstorm: precipitationQuantity(p.Thunderstorm, o),
		Rain:         precipitationQuantity(p.Rain, o),
		Snow:         precipitationQuantity(p.Snow, o),
		Ice:          precipitationQuantity(p.Ice, o),
	}
}

func buildPrecipitationProbability(p *domain.PrecipitationProbability, o Options) *breezy.PrecipitationProbability {
	if p == nil {
		return nil
	}
	return &breezy.PrecipitationProbability{
		Total:        percentValue(p.Total, o),
		Thunderstorm: percentValue(p.Thunderstorm, o),
		Rain:         percentValue(p.Rain, o),
		Snow:         percentValue(p.Snow, o),
		Ice:          percentValue(p.Ice, o),
	}
}

func buildPrecipitationDuration(p *domain.PrecipitationDuration, o Options) *breezy.PrecipitationDuration {
	if p == nil {
		return nil
	}
	return &breezy.PrecipitationDuration{
		Total:        durationQuantity(p.Total, o),
		Thunderstorm: durationQuantity(p.Thunderstorm, o),
		Rain:         durationQuantity(p.Rain, o),
		Snow:         durationQuantity(p.Snow, o),
		Ice:          durationQuantity(p.Ice, o),
	}
}

// buildWind projects speed and gusts; the degree is a bearing and passes
// through without conversion.
func buildWind(w *domain.Wind, o Options) *breezy.Wind {
	if w == nil {
		return nil
	}
	return &breezy.Wind{
		Degree: w.Degree,
		Speed:  distanceQuantity(w.Speed, o),
		Gusts:  distanceQuantity(w.Gusts, o),
	}
}

func buildUV(uv *domain.UV) *breezy.UV {
	if uv == nil {
		return nil
	}
	return &breezy.UV{Index: uv.Index}
}

// buildAirQuality suppresses the whole section when no pollutant was
// reported; a valid section maps exactly the reported pollutants.
func buildAirQuality(aq *domain.AirQuality) *breezy.AirQuality {
	if aq == nil || !domain.AirQualityIsValid(*aq) {
		return nil
	}
	pollutants := make(map[string]breezy.Pollutant)
	for _, p := range domain.ValidPollutants(*aq) {
		idx := domain.PollutantIndex(*aq, p)
		entry := breezy.Pollutant{
			ID:            string(p),
			Name:          domain.PollutantName(p),
			Concentration: domain.PollutantConcentration(*aq, p),
			Index:         idx,
		}
		if idx != nil {
			entry.Color = domain.AirQualityColor(*idx)
		}
		pollutants[string(p)] = entry
	}
	out := &breezy.AirQuality{Pollutants: pollutants}
	if idx := domain.AirQualityIndex(*aq); idx != nil {
		color := domain.AirQualityColor(*idx)
		out.Index = idx
		out.IndexColor = &color
	}
	return out
}

// buildPollen applies the same validity gating as air quality.
func buildPollen(p *domain.Pollen) map[string]breezy.Pollen {
	if p == nil || !domain.PollenIsValid(*p) {
		return nil
	}
	out := make(map[string]breezy.Pollen)
	for _, a := range domain.ValidAllergens(*p) {
		c := domain.AllergenConcentration(*p, a)
		out[string(a)] = breezy.Pollen{
			ID:            string(a),
			Name:          domain.AllergenName(a),
			Concentration: c,
			IndexName:     domain.AllergenIndexName(*c),
			Color:         domain.AllergenColor(*c),
		}
	}
	return out
}

func buildAstro(a *domain.Astro) *breezy.Astro {
	if a == nil {
		return nil
	}
	return &breezy.Astro{
		RiseDate: epochMillis(a.RiseDate),
		SetDate:  epochMillis(a.SetDate),
	}
}

func buildMoonPhase(mp *domain.MoonPhase) *breezy.MoonPhase {
	if mp == nil {
		return nil
	}
	out := &breezy.MoonPhase{Angle: mp.Angle}
	if mp.Angle != nil {
		desc := domain.MoonPhaseDescription(*mp.Angle)
		out.Description = &desc
	}
	return out
}

// buildAlerts converts timestamps to epoch milliseconds; severity ids and
// pre-resolved colors pass through unchanged.
func buildAlerts(alerts []domain.Alert) []breezy.Alert {
	if alerts == nil {
		return nil
	}
	out := make([]breezy.Alert, 0, len(alerts))
	for _, alert := range alerts {
		out = append(out, breezy.Alert{
			AlertID:     alert.AlertID,
			StartDate:   epochMillis(alert.StartDate),
			EndDate:     epochMillis(alert.EndDate),
			Headline:    alert.Headline,
			Description: alert.Description,
			Instruction: alert.Instruction,
			Source:      alert.Source,
			Severity:    alert.Severity,
			Color:       alert.Color,
		})
	}
	return out
}

func buildNormals(n *domain.Normals, o Options) *breezy.Normals {
	if n == nil {
		return nil
	}
	return &breezy.Normals{
		Month:                n.Month,
		DaytimeTemperature:   temperatureQuantity(n.DaytimeTemperature, o),
		NighttimeTemperature: temperatureQuantity(n.NighttimeTemperature, o),
	}
}
