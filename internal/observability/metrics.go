package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// export surface.
type Metrics struct {
	VersionQueries prometheus.Counter
	WeatherQueries prometheus.Counter

	LocationsExported prometheus.Counter
	LocationsSkipped  prometheus.Counter

	ExportDuration prometheus.Histogram
	// ExportAge is the age of the exported aggregate's refresh time at
	// query time, in seconds.
	ExportAge prometheus.Histogram

	LocationsTotal       prometheus.Gauge
	LocationsWithCurrent prometheus.Gauge
}

// NewMetrics creates and registers all export metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		VersionQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "breezy_provider",
			Name:      "version_queries_total",
			Help:      "Total schema version queries served.",
		}),
		WeatherQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "breezy_provider",
			Name:      "weather_queries_total",
			Help:      "Total weather data queries served.",
		}),
		LocationsExported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "breezy_provider",
			Name:      "locations_exported_total",
			Help:      "Location rows included in weather query responses.",
		}),
		LocationsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "breezy_provider",
			Name:      "locations_skipped_total",
			Help:      "Locations excluded for lacking current conditions.",
		}),
		ExportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "breezy_provider",
			Name:      "export_duration_seconds",
			Help:      "Duration of a complete weather query, load through serialization.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		ExportAge: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "breezy_provider",
			Name:      "export_age_seconds",
			Help:      "Age of the exported refresh time at query time.",
			Buckets:   []float64{60, 300, 900, 1800, 3600, 7200, 21600, 86400},
		}),
		LocationsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "breezy_provider",
			Name:      "locations_total",
			Help:      "Locations currently stored.",
		}),
		LocationsWithCurrent: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "breezy_provider",
			Name:      "locations_with_current",
			Help:      "Stored locations carrying current conditions.",
		}),
	}

	prometheus.MustRegister(
		m.VersionQueries,
		m.WeatherQueries,
		m.LocationsExported,
		m.LocationsSkipped,
		m.ExportDuration,
		m.ExportAge,
		m.LocationsTotal,
		m.LocationsWithCurrent,
	)

	return m
}

// NewMetricsForTesting creates Metrics with no registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		VersionQueries:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "breezy_provider", Name: "version_queries_total"}),
		WeatherQueries:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "breezy_provider", Name: "weather_queries_total"}),
		LocationsExported:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "breezy_provider", Name: "locations_exported_total"}),
		LocationsSkipped:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "breezy_provider", Name: "locations_skipped_total"}),
		ExportDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "breezy_provider", Name: "export_duration_seconds"}),
		ExportAge:            prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "breezy_provider", Name: "export_age_seconds"}),
		LocationsTotal:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "breezy_provider", Name: "locations_total"}),
		LocationsWithCurrent: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "breezy_provider", Name: "locations_with_current"}),
	}
}
