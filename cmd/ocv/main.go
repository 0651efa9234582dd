package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/opencontextvault/ocv/internal/application/health"
	"github.com/opencontextvault/ocv/internal/config"
	"github.com/opencontextvault/ocv/internal/logging"
	"github.com/opencontextvault/ocv/pkg/adapters/metrics/prometheus"
	"github.com/opencontextvault/ocv/pkg/api/http"
)

var (
	// Version is set by build flags
	Version   = "0.1.0"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting Open Context Vault API",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	// The credential is read once here and never again
	reporter := health.NewReporter(Version, cfg.Mem0.Configured())
	logger.Info("mem0 API", zap.String("state", reporter.Summary()))

	metricsCollector := prometheus.NewCollector()
	metricsCollector.RecordBuildInfo(Version, reporter.Mem0Configured())

	httpServer := http.NewServer(&http.Config{
		Addr:              cfg.BindAddress,
		ReadHeaderTimeout: cfg.Timeouts.ReadHeader,
		Reporter:          reporter,
		Metrics:           metricsCollector,
		Logger:            logger,
	})

	// Bind before serving so an unusable address fails the process
	if err := httpServer.Listen(); err != nil {
		logger.Fatal("failed to bind API listener", zap.Error(err))
	}

	var metricsServer *http.Server
	if cfg.Metrics.Enabled() {
		metricsServer = http.NewMetricsServer(&http.MetricsConfig{
			Addr:              cfg.Metrics.Address,
			ReadHeaderTimeout: cfg.Timeouts.ReadHeader,
			Handler:           metricsCollector.Handler(),
			Logger:            logger,
		})
		if err := metricsServer.Listen(); err != nil {
			logger.Fatal("failed to bind metrics listener", zap.Error(err))
		}
	}

	// Start servers
	go func() {
		if err := httpServer.Serve(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	if metricsServer != nil {
		go func() {
			if err := metricsServer.Serve(); err != nil {
				logger.Fatal("metrics server failed", zap.Error(err))
			}
		}()
	}

	logger.Info("Open Context Vault API started",
		zap.String("addr", httpServer.Addr()),
		zap.Bool("metrics_enabled", cfg.Metrics.Enabled()))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", zap.Error(err))
		}
	}

	logger.Info("Open Context Vault API shut down complete")
}
