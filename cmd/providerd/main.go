package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/text/language"

	"github.com/breezy-weather/provider-service/internal/config"
	"github.com/breezy-weather/provider-service/internal/export"
	"github.com/breezy-weather/provider-service/internal/observability"
	"github.com/breezy-weather/provider-service/internal/provider"
	"github.com/breezy-weather/provider-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	repo, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open location store", "error", err, "path", cfg.DBPath)
		os.Exit(1)
	}

	opts := export.NewOptions(
		cfg.TemperatureUnit,
		cfg.PrecipitationUnit,
		cfg.DistanceUnit,
		cfg.PressureUnit,
		language.MustParse(cfg.Locale),
		cfg.PercentDigits,
	)
	svc := provider.NewService(repo, opts, logger, metrics)
	srv := provider.NewServer(cfg.HTTPAddr, svc, logger)
	refresher := provider.NewRefresher(repo, metrics, cfg.GaugeRefreshInterval, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := refresher.Start(); err != nil {
		logger.Error("failed to start gauge refresher", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	refresher.Stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := repo.Close(); err != nil {
		logger.Error("location store close error", "error", err)
	}

	logger.Info("shutdown complete")
}
