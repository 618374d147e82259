package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	DBPath          string `validate:"required"`
	HTTPAddr        string `validate:"required"`
	LogLevel        string `validate:"oneof=debug info warn error"`
	LogFormat       string `validate:"oneof=text json"`
	ShutdownTimeout time.Duration

	// Display preferences applied to every export.
	TemperatureUnit   string `validate:"oneof=c f k"`
	PrecipitationUnit string `validate:"oneof=mm cm in lpsqm"`
	DistanceUnit      string `validate:"oneof=m km mi nmi ft"`
	PressureUnit      string `validate:"oneof=mb kpa hpa atm mmhg inhg kgfpsqcm"`
	Locale            string `validate:"required,bcp47_language_tag"`
	PercentDigits     int    `validate:"gte=0,lte=3"`

	// How often store gauges are recomputed.
	GaugeRefreshInterval time.Duration
}

var validate = validator.New()

// Load reads configuration from the environment (and an optional .env
// file), applying defaults where unset, and validates the result.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	gaugeInterval, err := parseDuration("GAUGE_REFRESH_INTERVAL", "1m")
	if err != nil {
		return nil, err
	}
	percentDigits, err := parseInt("PERCENT_DIGITS", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:          envOrDefault("DB_PATH", "breezy.db"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		TemperatureUnit:   envOrDefault("TEMPERATURE_UNIT", "c"),
		PrecipitationUnit: envOrDefault("PRECIPITATION_UNIT", "mm"),
		DistanceUnit:      envOrDefault("DISTANCE_UNIT", "m"),
		PressureUnit:      envOrDefault("PRESSURE_UNIT", "mb"),
		Locale:            envOrDefault("LOCALE", "en"),
		PercentDigits:     percentDigits,

		GaugeRefreshInterval: gaugeInterval,
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}
