package provider

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/breezy-weather/provider-service/internal/breezy"
	"github.com/breezy-weather/provider-service/internal/domain"
	"github.com/breezy-weather/provider-service/internal/export"
	"github.com/breezy-weather/provider-service/internal/observability"
)

type mockReader struct {
	locations []domain.Location
	err       error
	pingErr   error
}

func (m *mockReader) GetAllLocations(_ context.Context, _ bool) ([]domain.Location, error) {
	return m.locations, m.err
}

func (m *mockReader) Ping(_ context.Context) error { return m.pingErr }

func f(v float64) *float64 { return &v }

func newTestServer(reader *mockReader) *Server {
	opts := export.NewOptions("f", "mm", "m", "mb", language.English, 0)
	svc := NewService(reader, opts, slog.Default(), observability.NewMetricsForTesting())
	return NewServer(":0", svc, slog.Default())
}

func locationWithCurrent(id string) domain.Location {
	refresh := time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC)
	return domain.Location{
		ID:        id,
		Latitude:  48.8566,
		Longitude: 2.3522,
		Timezone:  "Europe/Paris",
		Country:   "France",
		City:      "Paris",
		Weather: &domain.Weather{
			RefreshTime: &refresh,
			Current: &domain.Current{
				Temperature: &domain.Temperature{Temperature: f(15)},
			},
		},
	}
}

func TestVersionEndpoint(t *testing.T) {
	srv := newTestServer(&mockReader{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/provider/version", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var v Version
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, Version{Major: export.SchemaMajor, Minor: export.SchemaMinor}, v)
}

func TestVersionEndpointIndependentOfData(t *testing.T) {
	srv := newTestServer(&mockReader{err: errors.New("store down")})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/provider/version", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLocationsEndpoint(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)))
	defer SetClock(nil)

	srv := newTestServer(&mockReader{locations: []domain.Location{locationWithCurrent("paris-fr")}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/provider/locations", nil)

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []LocationRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "paris-fr", rows[0].ID)
	assert.Equal(t, "Europe/Paris", rows[0].Timezone)
	assert.Equal(t, "Paris", rows[0].City)

	var weather breezy.Weather
	require.NoError(t, json.Unmarshal(rows[0].Weather, &weather))
	require.NotNil(t, weather.Current)
	require.NotNil(t, weather.Current.Temperature)
	q := weather.Current.Temperature.Temperature
	require.NotNil(t, q)
	assert.Equal(t, 15.0, q.OriginalValue)
	assert.Equal(t, "c", q.OriginalUnit)
	assert.Equal(t, 59.0, q.PreferredUnitValue)
	assert.Equal(t, "f", q.PreferredUnitUnit)
}

func TestLocationsExcludesThoseWithoutCurrent(t *testing.T) {
	forecastOnly := domain.Location{
		ID:       "forecast-only",
		Timezone: "UTC",
		Country:  "Nowhere",
		City:     "Nowhere",
		Weather: &domain.Weather{
			Daily: []domain.Daily{{Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)}},
		},
	}
	bare := domain.Location{ID: "bare", Timezone: "UTC", Country: "Nowhere", City: "Nowhere"}

	srv := newTestServer(&mockReader{locations: []domain.Location{
		locationWithCurrent("paris-fr"), forecastOnly, bare,
	}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/provider/locations", nil)

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []LocationRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "paris-fr", rows[0].ID)
}

func TestLocationsEndpointStoreError(t *testing.T) {
	srv := newTestServer(&mockReader{err: errors.New("store down")})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/provider/locations", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteVerbsRejected(t *testing.T) {
	srv := newTestServer(&mockReader{locations: []domain.Location{locationWithCurrent("paris-fr")}})

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		for _, path := range []string{"/provider/version", "/provider/locations"} {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(method, path, nil)

			srv.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "%s %s", method, path)
		}
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(&mockReader{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReflectsStorePing(t *testing.T) {
	ready := newTestServer(&mockReader{})
	rec := httptest.NewRecorder()
	ready.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	notReady := newTestServer(&mockReader{pingErr: errors.New("store unreachable")})
	rec = httptest.NewRecorder()
	notReady.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "store unreachable", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(&mockReader{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
