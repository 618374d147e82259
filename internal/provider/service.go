// Package provider exposes the versioned read-only query surface over the
// normalized weather export.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/breezy-weather/provider-service/internal/domain"
	"github.com/breezy-weather/provider-service/internal/export"
	"github.com/breezy-weather/provider-service/internal/observability"
)

// LocationReader is the slice of the store the service reads from.
type LocationReader interface {
	GetAllLocations(ctx context.Context, withParameters bool) ([]domain.Location, error)
	Ping(ctx context.Context) error
}

// Version is the version query payload.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// LocationRow is one row of the weather data query: the location's identity
// and geo attributes plus its serialized normalized weather tree. Column
// names are a published contract.
type LocationRow struct {
	ID          string          `json:"id"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Timezone    string          `json:"timezone"`
	Country     string          `json:"country"`
	CountryCode *string         `json:"country_code,omitempty"`
	Admin1      *string         `json:"admin1,omitempty"`
	Admin1Code  *string         `json:"admin1_code,omitempty"`
	Admin2      *string         `json:"admin2,omitempty"`
	Admin2Code  *string         `json:"admin2_code,omitempty"`
	Admin3      *string         `json:"admin3,omitempty"`
	Admin3Code  *string         `json:"admin3_code,omitempty"`
	Admin4      *string         `json:"admin4,omitempty"`
	Admin4Code  *string         `json:"admin4_code,omitempty"`
	City        string          `json:"city"`
	District    *string         `json:"district,omitempty"`
	Weather     json.RawMessage `json:"weather"`
}

// Service answers the version and weather queries.
type Service struct {
	locations LocationReader
	opts      export.Options
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewService creates a Service over a location store with fixed display
// preferences.
func NewService(locations LocationReader, opts export.Options, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		locations: locations,
		opts:      opts,
		logger:    logger,
		metrics:   metrics,
	}
}

// Version returns the schema version pair, independent of any location data.
func (s *Service) Version() Version {
	s.metrics.VersionQueries.Inc()
	return Version{Major: export.SchemaMajor, Minor: export.SchemaMinor}
}

// Locations returns one row per stored location that has current
// conditions. Locations without current conditions are excluded entirely,
// even when they carry daily or hourly data.
func (s *Service) Locations(ctx context.Context) ([]LocationRow, error) {
	start := time.Now()
	s.metrics.WeatherQueries.Inc()

	locations, err := s.locations.GetAllLocations(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("load locations: %w", err)
	}

	rows := make([]LocationRow, 0, len(locations))
	for _, loc := range locations {
		if loc.Weather == nil || loc.Weather.Current == nil {
			s.metrics.LocationsSkipped.Inc()
			continue
		}

		tree := export.Normalize(loc.Weather, s.opts)
		doc, err := json.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("encode weather for location %s: %w", loc.ID, err)
		}
		if loc.Weather.RefreshTime != nil {
			s.metrics.ExportAge.Observe(clock.Now().Sub(*loc.Weather.RefreshTime).Seconds())
		}

		rows = append(rows, LocationRow{
			ID:          loc.ID,
			Latitude:    loc.Latitude,
			Longitude:   loc.Longitude,
			Timezone:    loc.Timezone,
			Country:     loc.Country,
			CountryCode: loc.CountryCode,
			Admin1:      loc.Admin1,
			Admin1Code:  loc.Admin1Code,
			Admin2:      loc.Admin2,
			Admin2Code:  loc.Admin2Code,
			Admin3:      loc.Admin3,
			Admin3Code:  loc.Admin3Code,
			Admin4:      loc.Admin4,
			Admin4Code:  loc.Admin4Code,
			City:        loc.City,
			District:    loc.District,
			Weather:     doc,
		})
		s.metrics.LocationsExported.Inc()
	}

	s.metrics.ExportDuration.Observe(time.Since(start).Seconds())
	s.logger.Debug("weather query served",
		"locations", len(locations),
		"exported", len(rows),
	)
	return rows, nil
}

// CheckReadiness reports whether the location store is reachable.
func (s *Service) CheckReadiness(ctx context.Context) error {
	return s.locations.Ping(ctx)
}
