package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/olhovivo/internal/config"
	"github.com/UnknownOlympus/olhovivo/internal/geocoding"
	"github.com/UnknownOlympus/olhovivo/internal/httpapi"
	"github.com/UnknownOlympus/olhovivo/internal/logging"
	"github.com/UnknownOlympus/olhovivo/internal/metrics"
	"github.com/UnknownOlympus/olhovivo/internal/models"
	"github.com/UnknownOlympus/olhovivo/internal/publisher"
	"github.com/UnknownOlympus/olhovivo/internal/repository"
	"github.com/UnknownOlympus/olhovivo/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type positionPublisher interface {
	PublishPosition(ctx context.Context, pos models.VehiclePosition) error
	Close()
}

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	logger := logging.New(cfg.Env, os.Stdout)

	// Create a separate registry for metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(ctx,
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
	)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	repo := repository.NewRepository(dtb, logger)
	if err = repo.Migrate(ctx); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	geocoder, err := newGeocoder(cfg.Geocoder, logger, appMetrics)
	if err != nil {
		log.Fatalf("Failed to create geocoding provider: %v", err)
	}
	logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.Geocoder.Provider)

	pub, err := newPublisher(cfg.NATS, logger, appMetrics)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer pub.Close()

	transit := service.NewTransitService(
		logger,
		repo,
		geocoder,
		cfg.Geocoder.Provider, // Provider name for metrics
		pub,
		appMetrics,
		cfg.Geocoder.AddressSuffix,
	)
	api := httpapi.NewRestAPI(transit, logger, appMetrics, cfg.RateLimit)

	readTimeout, writeTimeout := 5*time.Second, 10*time.Second
	servers := []*http.Server{
		{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      api.Handler(),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  time.Minute,
		},
		{
			Addr:         fmt.Sprintf(":%d", cfg.MonitoringPort),
			Handler:      httpapi.NewMonitoringHandler(logger, reg, dtb),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
	}

	for _, server := range servers {
		go serve(ctx, logger, server, stop)
	}

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.",
		"port", cfg.Port, "monitoring_port", cfg.MonitoringPort)

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	logger.Info("Shutdown signal received. Stopping application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	for _, server := range servers {
		if err = server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", "addr", server.Addr, "error", err)
		}
	}

	logger.Info("Application stopped gracefully.")
}

// serve runs server until it is shut down. Any other failure stops the application.
func serve(ctx context.Context, log *slog.Logger, server *http.Server, stop context.CancelFunc) {
	log.InfoContext(ctx, "Starting server", "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "Server failed", "addr", server.Addr, "error", err)
		stop()
	}
}

// newGeocoder returns nil when address lookups are disabled.
func newGeocoder(cfg config.GeocoderConfig, log *slog.Logger, m *metrics.Metrics) (geocoding.Provider, error) {
	provider, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:         geocoding.ProviderType(cfg.Provider),
		APIKey:       cfg.APIKey,
		RateLimit:    cfg.RateLimit,
		CountryCodes: cfg.CountryCodes,
		Logger:       log,
	})
	if errors.Is(err, geocoding.ErrProviderDisabled) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheSize == 0 {
		return provider, nil
	}

	return geocoding.NewCachedProvider(provider, cfg.CacheSize, cfg.CacheTTL, m)
}

func newPublisher(cfg config.NATSConfig, log *slog.Logger, m *metrics.Metrics) (positionPublisher, error) {
	if cfg.URL == "" {
		log.Info("NATS URL not configured, vehicle positions will not be published")
		return publisher.Noop{}, nil
	}

	return publisher.Connect(cfg.URL, cfg.SubjectPrefix, log, m)
}
