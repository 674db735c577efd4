package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"bloodconnect/internal/http/handlers"
	"bloodconnect/internal/http/httpapi"
	"bloodconnect/internal/infra"
	"bloodconnect/internal/infra/geoip"
	"bloodconnect/internal/metrics"
	"bloodconnect/internal/middleware"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	if err := infra.RunMigrations(cfg.DatabaseURL); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	var countryLookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		countryLookup = resolver.CountryCode
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMin)
	defer limiter.Stop()

	app := handlers.NewApp(dbpool, cfg, logger, collector)
	router := httpapi.NewRouter(app, httpapi.Options{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		DefaultLocale:      cfg.DefaultLocale,
		CountryLookup:      countryLookup,
		RateLimiter:        limiter,
		MetricsGatherer:    registry,
		StatusRecorder:     collector,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
