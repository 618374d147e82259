package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breezy-weather/provider-service/internal/domain"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func f(v float64) *float64 { return &v }

func str(v string) *string { return &v }

func testLocation(id string, weather *domain.Weather) domain.Location {
	return domain.Location{
		ID:        id,
		Latitude:  48.8566,
		Longitude: 2.3522,
		Timezone:  "Europe/Paris",
		Country:   "France",
		City:      "Paris",
		Weather:   weather,
	}
}

func TestUpsertAndGetAllLocations(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	refresh := time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC)
	weather := &domain.Weather{
		RefreshTime: &refresh,
		Current: &domain.Current{
			Temperature: &domain.Temperature{Temperature: f(15)},
		},
	}

	loc := testLocation("paris-fr", weather)
	loc.CountryCode = str("FR")
	loc.Admin1 = str("Île-de-France")
	require.NoError(t, repo.UpsertLocation(ctx, loc))
	require.NoError(t, repo.UpsertLocation(ctx, testLocation("bare-loc", nil)))

	locations, err := repo.GetAllLocations(ctx, false)
	require.NoError(t, err)
	require.Len(t, locations, 2)

	// Ordered by id.
	assert.Equal(t, "bare-loc", locations[0].ID)
	assert.Nil(t, locations[0].Weather)
	assert.Nil(t, locations[0].CountryCode)

	got := locations[1]
	assert.Equal(t, "paris-fr", got.ID)
	require.NotNil(t, got.CountryCode)
	assert.Equal(t, "FR", *got.CountryCode)
	require.NotNil(t, got.Admin1)
	assert.Equal(t, "Île-de-France", *got.Admin1)
	require.NotNil(t, got.Weather)
	require.NotNil(t, got.Weather.RefreshTime)
	assert.True(t, refresh.Equal(*got.Weather.RefreshTime))
	require.NotNil(t, got.Weather.Current)
	require.NotNil(t, got.Weather.Current.Temperature)
	require.NotNil(t, got.Weather.Current.Temperature.Temperature)
	assert.Equal(t, 15.0, *got.Weather.Current.Temperature.Temperature)
}

func TestUpsertReplacesExistingRow(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertLocation(ctx, testLocation("paris-fr", nil)))

	updated := testLocation("paris-fr", &domain.Weather{Current: &domain.Current{}})
	updated.City = "Paris 2e"
	require.NoError(t, repo.UpsertLocation(ctx, updated))

	locations, err := repo.GetAllLocations(ctx, false)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Paris 2e", locations[0].City)
	assert.NotNil(t, locations[0].Weather)
}

func TestGetAllLocationsWithParameters(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	loc := testLocation("paris-fr", nil)
	loc.Parameters = map[string]string{"openmeteo_model": "meteofrance_seamless"}
	require.NoError(t, repo.UpsertLocation(ctx, loc))

	withoutParams, err := repo.GetAllLocations(ctx, false)
	require.NoError(t, err)
	require.Len(t, withoutParams, 1)
	assert.Nil(t, withoutParams[0].Parameters)

	withParams, err := repo.GetAllLocations(ctx, true)
	require.NoError(t, err)
	require.Len(t, withParams, 1)
	assert.Equal(t, map[string]string{"openmeteo_model": "meteofrance_seamless"}, withParams[0].Parameters)
}

func TestCounts(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	withCurrent := testLocation("a-with-current", &domain.Weather{
		Current: &domain.Current{Temperature: &domain.Temperature{Temperature: f(15)}},
	})
	forecastOnly := testLocation("b-forecast-only", &domain.Weather{
		Daily: []domain.Daily{{Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)}},
	})
	bare := testLocation("c-bare", nil)

	for _, loc := range []domain.Location{withCurrent, forecastOnly, bare} {
		require.NoError(t, repo.UpsertLocation(ctx, loc))
	}

	total, err := repo.CountLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	current, err := repo.CountLocationsWithCurrent(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, current)
}

func TestPing(t *testing.T) {
	repo := openTestRepo(t)
	assert.NoError(t, repo.Ping(context.Background()))
}
