// Command seedlocations writes fixture locations with fully populated
// weather aggregates into the sqlite store, for local development and
// smoke-testing the provider endpoints.
//
// Usage:
//
//	go run ./cmd/seedlocations -db breezy.db
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/breezy-weather/provider-service/internal/domain"
	"github.com/breezy-weather/provider-service/internal/store"
)

func main() {
	dbPath := flag.String("db", "breezy.db", "path to the sqlite database")
	flag.Parse()

	if err := run(*dbPath); err != nil {
		log.Fatal(err)
	}
}

func run(dbPath string) error {
	repo, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	locations := fixtures()
	for _, loc := range locations {
		if err := repo.UpsertLocation(ctx, loc); err != nil {
			return err
		}
	}

	fmt.Printf("seeded %d locations into %s\n", len(locations), dbPath)
	return nil
}

func fixtures() []domain.Location {
	refresh := time.Date(2026, time.March, 14, 8, 30, 0, 0, time.UTC)
	forecastDay := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	sunrise := forecastDay.Add(6*time.Hour + 41*time.Minute)
	sunset := forecastDay.Add(18*time.Hour + 12*time.Minute)

	full := domain.Location{
		ID:          "paris-fr",
		Latitude:    48.8566,
		Longitude:   2.3522,
		Timezone:    "Europe/Paris",
		Country:     "France",
		CountryCode: ptr("FR"),
		Admin1:      ptr("Île-de-France"),
		Admin1Code:  ptr("IDF"),
		Admin2:      ptr("Paris"),
		City:        "Paris",
		Parameters:  map[string]string{"openmeteo_model": "meteofrance_seamless"},
		Weather: &domain.Weather{
			RefreshTime: &refresh,
			Current: &domain.Current{
				WeatherText: ptr("Partly cloudy"),
				WeatherCode: ptr("partly_cloudy"),
				Temperature: &domain.Temperature{
					Temperature:          ptrF(15.0),
					ApparentTemperature:  ptrF(13.5),
					WindChillTemperature: ptrF(12.8),
				},
				Wind: &domain.Wind{
					Degree: ptrF(230),
					Speed:  ptrF(5.4),
					Gusts:  ptrF(9.7),
				},
				UV:               &domain.UV{Index: ptrF(3)},
				AirQuality:       &domain.AirQuality{PM25: ptrF(12), PM10: ptrF(21), O3: ptrF(62), NO2: ptrF(28)},
				RelativeHumidity: ptrF(68),
				DewPoint:         ptrF(9.1),
				Pressure:         ptrF(1016),
				CloudCover:       ptrI(45),
				Visibility:       ptrF(18000),
				Ceiling:          ptrF(2300),
				DailyForecast:    ptr("Mild with scattered clouds"),
				HourlyForecast:   ptr("Partly cloudy through the evening"),
			},
			Daily: []domain.Daily{
				{
					Date: forecastDay,
					Day: &domain.HalfDay{
						WeatherText:  ptr("Partly cloudy"),
						WeatherPhase: ptr("day"),
						WeatherCode:  ptr("partly_cloudy"),
						Temperature:  &domain.Temperature{Temperature: ptrF(17.2)},
						Precipitation: &domain.Precipitation{
							Total: ptrF(0.4),
							Rain:  ptrF(0.4),
						},
						PrecipitationProbability: &domain.PrecipitationProbability{
							Total: ptrF(20),
							Rain:  ptrF(20),
						},
						PrecipitationDuration: &domain.PrecipitationDuration{Total: ptrF(0.5)},
						Wind:                  &domain.Wind{Degree: ptrF(240), Speed: ptrF(6.1)},
						CloudCover:            ptrI(50),
					},
					Night: &domain.HalfDay{
						WeatherText:  ptr("Clear"),
						WeatherPhase: ptr("night"),
						WeatherCode:  ptr("clear"),
						Temperature:  &domain.Temperature{Temperature: ptrF(7.8)},
					},
					DegreeDay: &domain.DegreeDay{Heating: ptrF(5.3), Cooling: ptrF(0)},
					Sun:       &domain.Astro{RiseDate: &sunrise, SetDate: &sunset},
					MoonPhase: &domain.MoonPhase{Angle: ptrI(135)},
					Pollen: &domain.Pollen{
						Alder: ptrF(34),
						Birch: ptrF(112),
						Grass: ptrF(3),
					},
					UV:               &domain.UV{Index: ptrF(4)},
					SunshineDuration: ptrF(7.5),
				},
			},
			Hourly: []domain.Hourly{
				{
					Date:        refresh.Add(time.Hour),
					IsDaylight:  true,
					WeatherText: ptr("Partly cloudy"),
					WeatherCode: ptr("partly_cloudy"),
					Temperature: &domain.Temperature{Temperature: ptrF(15.8)},
					Precipitation: &domain.Precipitation{
						Total: ptrF(0),
					},
					PrecipitationProbability: &domain.PrecipitationProbability{Total: ptrF(10)},
					Wind:                     &domain.Wind{Degree: ptrF(235), Speed: ptrF(5.8)},
					RelativeHumidity:         ptrF(64),
					Pressure:                 ptrF(1016),
					CloudCover:               ptrI(40),
					Visibility:               ptrF(20000),
				},
			},
			Minutely: []domain.Minutely{
				{Date: refresh, MinuteInterval: 15, PrecipitationIntensity: ptrF(0)},
				{Date: refresh.Add(15 * time.Minute), MinuteInterval: 15, PrecipitationIntensity: ptrF(0.8)},
				{Date: refresh.Add(30 * time.Minute), MinuteInterval: 15, PrecipitationIntensity: ptrF(1.2)},
				{Date: refresh.Add(45 * time.Minute), MinuteInterval: 15, PrecipitationIntensity: ptrF(0)},
			},
			Alerts: []domain.Alert{
				{
					AlertID:     "meteofrance-wind-20260314",
					StartDate:   &refresh,
					EndDate:     ptrT(refresh.Add(12 * time.Hour)),
					Headline:    ptr("Wind advisory"),
					Description: ptr("Gusts up to 90 km/h expected along the coast."),
					Instruction: ptr("Secure loose outdoor objects."),
					Source:      ptr("Météo-France"),
					Severity:    "moderate",
					Color:       0xFFFFA500,
				},
			},
			Normals: &domain.Normals{
				Month:                3,
				DaytimeTemperature:   ptrF(12.4),
				NighttimeTemperature: ptrF(4.7),
			},
		},
	}

	// A location with forecast data but no current observation; the data
	// query must exclude it.
	forecastOnly := domain.Location{
		ID:        "ushuaia-ar",
		Latitude:  -54.8019,
		Longitude: -68.303,
		Timezone:  "America/Argentina/Ushuaia",
		Country:   "Argentina",
		City:      "Ushuaia",
		Weather: &domain.Weather{
			Daily: []domain.Daily{
				{
					Date: forecastDay,
					Day:  &domain.HalfDay{Temperature: &domain.Temperature{Temperature: ptrF(8.1)}},
				},
			},
		},
	}

	// A bare location with no weather at all.
	bare := domain.Location{
		ID:        "tromso-no",
		Latitude:  69.6492,
		Longitude: 18.9553,
		Timezone:  "Europe/Oslo",
		Country:   "Norway",
		City:      "Tromsø",
	}

	return []domain.Location{full, forecastOnly, bare}
}

func ptr(s string) *string        { return &s }
func ptrF(f float64) *float64     { return &f }
func ptrI(i int) *int             { return &i }
func ptrT(t time.Time) *time.Time { return &t }
