package provider

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/breezy-weather/provider-service/internal/observability"
)

// GaugeSource provides the store counts behind the location gauges.
type GaugeSource interface {
	CountLocations(ctx context.Context) (int, error)
	CountLocationsWithCurrent(ctx context.Context) (int, error)
}

// Refresher periodically recomputes the location gauges so /metrics stays
// meaningful between queries.
type Refresher struct {
	scheduler *gocron.Scheduler
	source    GaugeSource
	metrics   *observability.Metrics
	interval  time.Duration
	logger    *slog.Logger
}

// NewRefresher creates a Refresher with the given interval.
func NewRefresher(source GaugeSource, metrics *observability.Metrics, interval time.Duration, logger *slog.Logger) *Refresher {
	return &Refresher{
		scheduler: gocron.NewScheduler(time.UTC),
		source:    source,
		metrics:   metrics,
		interval:  interval,
		logger:    logger,
	}
}

// Start runs one immediate refresh and schedules the periodic job.
func (r *Refresher) Start() error {
	r.Refresh()
	if _, err := r.scheduler.Every(r.interval).Do(r.Refresh); err != nil {
		return err
	}
	r.scheduler.StartAsync()
	return nil
}

// Stop cancels the periodic job.
func (r *Refresher) Stop() {
	r.scheduler.Stop()
}

// Refresh recomputes the gauges once.
func (r *Refresher) Refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total, err := r.source.CountLocations(ctx)
	if err != nil {
		r.logger.Warn("location gauge refresh failed", "error", err)
		return
	}
	withCurrent, err := r.source.CountLocationsWithCurrent(ctx)
	if err != nil {
		r.logger.Warn("location gauge refresh failed", "error", err)
		return
	}

	r.metrics.LocationsTotal.Set(float64(total))
	r.metrics.LocationsWithCurrent.Set(float64(withCurrent))
}
