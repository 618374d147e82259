package provider

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/breezy-weather/provider-service/internal/observability"
)

type mockGaugeSource struct {
	total       int
	withCurrent int
	err         error
}

func (m *mockGaugeSource) CountLocations(_ context.Context) (int, error) {
	return m.total, m.err
}

func (m *mockGaugeSource) CountLocationsWithCurrent(_ context.Context) (int, error) {
	return m.withCurrent, m.err
}

func TestRefreshSetsGauges(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	r := NewRefresher(&mockGaugeSource{total: 3, withCurrent: 1}, metrics, time.Minute, slog.Default())

	r.Refresh()

	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.LocationsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.LocationsWithCurrent))
}

func TestRefreshLeavesGaugesOnError(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	metrics.LocationsTotal.Set(5)
	metrics.LocationsWithCurrent.Set(2)

	r := NewRefresher(&mockGaugeSource{err: errors.New("store down")}, metrics, time.Minute, slog.Default())
	r.Refresh()

	assert.Equal(t, 5.0, testutil.ToFloat64(metrics.LocationsTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.LocationsWithCurrent))
}
