// Package store persists locations and their weather aggregates in sqlite.
//
// The weather aggregate is stored as a JSON document per location, the same
// way provider payloads are cached upstream. The repository is read-mostly:
// the service only reads, the seeding tool writes.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/breezy-weather/provider-service/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS locations (
	id            TEXT PRIMARY KEY,
	latitude      REAL NOT NULL,
	longitude     REAL NOT NULL,
	timezone      TEXT NOT NULL,
	country       TEXT NOT NULL,
	country_code  TEXT,
	admin1        TEXT,
	admin1_code   TEXT,
	admin2        TEXT,
	admin2_code   TEXT,
	admin3        TEXT,
	admin3_code   TEXT,
	admin4        TEXT,
	admin4_code   TEXT,
	city          TEXT NOT NULL,
	district      TEXT,
	weather       TEXT
);

CREATE TABLE IF NOT EXISTS location_parameters (
	location_id TEXT NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
	key         TEXT NOT NULL,
	value       TEXT NOT NULL,
	PRIMARY KEY (location_id, key)
);
`

// Repository is a sqlite-backed location store.
type Repository struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at path and ensures
// the schema exists. Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Repository{db: db}, nil
}

// Close releases the underlying database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Ping verifies the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// GetAllLocations returns every stored location ordered by id, each with its
// decoded weather aggregate when one is stored. Per-source parameters are
// loaded only when withParameters is true.
func (r *Repository) GetAllLocations(ctx context.Context, withParameters bool) ([]domain.Location, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, latitude, longitude, timezone, country, country_code,
		       admin1, admin1_code, admin2, admin2_code,
		       admin3, admin3_code, admin4, admin4_code,
		       city, district, weather
		FROM locations
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		var (
			loc         domain.Location
			countryCode sql.NullString
			admin       [8]sql.NullString
			district    sql.NullString
			weatherDoc  sql.NullString
		)
		err := rows.Scan(
			&loc.ID, &loc.Latitude, &loc.Longitude, &loc.Timezone,
			&loc.Country, &countryCode,
			&admin[0], &admin[1], &admin[2], &admin[3],
			&admin[4], &admin[5], &admin[6], &admin[7],
			&loc.City, &district, &weatherDoc,
		)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		loc.CountryCode = optional(countryCode)
		loc.Admin1, loc.Admin1Code = optional(admin[0]), optional(admin[1])
		loc.Admin2, loc.Admin2Code = optional(admin[2]), optional(admin[3])
		loc.Admin3, loc.Admin3Code = optional(admin[4]), optional(admin[5])
		loc.Admin4, loc.Admin4Code = optional(admin[6]), optional(admin[7])
		loc.District = optional(district)

		if weatherDoc.Valid && weatherDoc.String != "" {
			var w domain.Weather
			if err := json.Unmarshal([]byte(weatherDoc.String), &w); err != nil {
				return nil, fmt.Errorf("decode weather for location %s: %w", loc.ID, err)
			}
			loc.Weather = &w
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}

	if withParameters {
		for i := range locations {
			params, err := r.loadParameters(ctx, locations[i].ID)
			if err != nil {
				return nil, err
			}
			locations[i].Parameters = params
		}
	}
	return locations, nil
}

// UpsertLocation inserts or replaces a location row, its weather document,
// and its parameters.
func (r *Repository) UpsertLocation(ctx context.Context, loc domain.Location) error {
	var weatherDoc any
	if loc.Weather != nil {
		doc, err := json.Marshal(loc.Weather)
		if err != nil {
			return fmt.Errorf("encode weather for location %s: %w", loc.ID, err)
		}
		weatherDoc = string(doc)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO locations (
			id, latitude, longitude, timezone, country, country_code,
			admin1, admin1_code, admin2, admin2_code,
			admin3, admin3_code, admin4, admin4_code,
			city, district, weather
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		loc.ID, loc.Latitude, loc.Longitude, loc.Timezone,
		loc.Country, loc.CountryCode,
		loc.Admin1, loc.Admin1Code, loc.Admin2, loc.Admin2Code,
		loc.Admin3, loc.Admin3Code, loc.Admin4, loc.Admin4Code,
		loc.City, loc.District, weatherDoc,
	)
	if err != nil {
		return fmt.Errorf("upsert location %s: %w", loc.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM location_parameters WHERE location_id = ?`, loc.ID); err != nil {
		return fmt.Errorf("clear parameters for location %s: %w", loc.ID, err)
	}
	for key, value := range loc.Parameters {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO location_parameters (location_id, key, value) VALUES (?, ?, ?)`,
			loc.ID, key, value)
		if err != nil {
			return fmt.Errorf("insert parameter %s for location %s: %w", key, loc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert: %w", err)
	}
	return nil
}

// CountLocations returns the number of stored locations.
func (r *Repository) CountLocations(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM locations`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count locations: %w", err)
	}
	return n, nil
}

// CountLocationsWithCurrent returns the number of locations whose weather
// document carries current conditions, i.e. the ones the data query exports.
func (r *Repository) CountLocationsWithCurrent(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM locations
		WHERE weather IS NOT NULL
		  AND json_extract(weather, '$.current') IS NOT NULL`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count locations with current conditions: %w", err)
	}
	return n, nil
}

func (r *Repository) loadParameters(ctx context.Context, locationID string) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value FROM location_parameters WHERE location_id = ?`, locationID)
	if err != nil {
		return nil, fmt.Errorf("query parameters for location %s: %w", locationID, err)
	}
	defer rows.Close()

	params := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan parameter for location %s: %w", locationID, err)
		}
		params[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parameters for location %s: %w", locationID, err)
	}
	if len(params) == 0 {
		return nil, nil
	}
	return params, nil
}

func optional(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
