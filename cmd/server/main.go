package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/wherecaniwatch/finder/internal/client"
	"github.com/wherecaniwatch/finder/internal/config"
	"github.com/wherecaniwatch/finder/internal/countries"
	grpcserver "github.com/wherecaniwatch/finder/internal/grpc"
	"github.com/wherecaniwatch/finder/internal/metrics"
	"github.com/wherecaniwatch/finder/internal/server"
	"github.com/wherecaniwatch/finder/internal/services"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := config.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	config.ConfigureLogger(cfg)
	logger = config.GetLogger()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			logger.Warn().Err(err).Msg("Sentry initialisation failed, continuing without error reporting")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	logger.Info().
		Bool("api_key_configured", cfg.APIKeyConfigured()).
		Str("proxy_connection_string", cfg.ProxyConnectionString).
		Str("client_timeout", cfg.ClientTimeout).
		Str("cache_type", cfg.Cache.Type).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Msg("Application started with configuration")

	if !cfg.APIKeyConfigured() {
		logger.Warn().Msg("No TMDB API key configured, serving sample titles only. Set TMDB_API_KEY for live data")
	}

	table := countries.Load(cfg.CountriesFile)

	providerClient := client.NewClient(cfg)
	defer func() {
		if err := providerClient.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close provider client")
		}
	}()

	finder := services.NewFinder(providerClient, table, cfg)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port),
		Handler:           server.NewRouter(finder),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal().Err(err).Msg("Failed to serve metrics")
			}
		}()
	}

	var grpcServer *grpcserver.Server
	if cfg.GRPC.Enabled {
		grpcAddress := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.GRPC.Port)
		listener, err := net.Listen("tcp", grpcAddress)
		if err != nil {
			logger.Fatal().Err(err).Str("address", grpcAddress).Msg("Failed to create gRPC listener")
		}
		grpcServer = grpcserver.NewGRPCServer()
		go func() {
			if err := grpcServer.Serve(listener); err != nil {
				logger.Error().Err(err).Msg("gRPC server stopped with error")
			}
		}()
	}

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("address", httpServer.Addr).Msg("Starting HTTP server")
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to serve HTTP")
		}
	case <-ctx.Done():
		logger.Info().Msg("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if grpcServer != nil {
		grpcServer.Shutdown()
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Failed to shutdown HTTP server")
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown metrics server")
		}
	}

	logger.Info().Msg("Server stopped gracefully")
}
