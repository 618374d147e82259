package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "breezy.db", cfg.DBPath)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "c", cfg.TemperatureUnit)
	assert.Equal(t, "mm", cfg.PrecipitationUnit)
	assert.Equal(t, "m", cfg.DistanceUnit)
	assert.Equal(t, "mb", cfg.PressureUnit)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 0, cfg.PercentDigits)
	assert.Equal(t, time.Minute, cfg.GaugeRefreshInterval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_PATH", "/data/weather.db")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("TEMPERATURE_UNIT", "f")
	t.Setenv("PRECIPITATION_UNIT", "in")
	t.Setenv("DISTANCE_UNIT", "mi")
	t.Setenv("PRESSURE_UNIT", "inhg")
	t.Setenv("LOCALE", "fr-FR")
	t.Setenv("PERCENT_DIGITS", "1")
	t.Setenv("GAUGE_REFRESH_INTERVAL", "5m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/weather.db", cfg.DBPath)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "f", cfg.TemperatureUnit)
	assert.Equal(t, "in", cfg.PrecipitationUnit)
	assert.Equal(t, "mi", cfg.DistanceUnit)
	assert.Equal(t, "inhg", cfg.PressureUnit)
	assert.Equal(t, "fr-FR", cfg.Locale)
	assert.Equal(t, 1, cfg.PercentDigits)
	assert.Equal(t, 5*time.Minute, cfg.GaugeRefreshInterval)
}

func TestLoadRejectsUnknownUnit(t *testing.T) {
	t.Setenv("TEMPERATURE_UNIT", "rankine")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsBadLocale(t *testing.T) {
	t.Setenv("LOCALE", "not a locale")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoadRejectsPercentDigitsOutOfRange(t *testing.T) {
	t.Setenv("PERCENT_DIGITS", "7")

	_, err := Load()
	require.Error(t, err)
}
