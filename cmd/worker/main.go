// worker sweeps a drop directory of receipt OCR transcripts on a schedule,
// extracts a transaction from each and writes XLSX batch reports.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FACorreiaa/receipt-scan/pkg/config"
	"github.com/FACorreiaa/receipt-scan/pkg/cron"
)

const sweepTimeout = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "worker: %v\n", err)
		os.Exit(1)
	}

	level, _ := cfg.Logging.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	deps, err := InitDependencies(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize dependencies", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Observability.MetricsEnabled {
		go serveMetrics(deps, logger)
	}

	if cfg.Worker.RunOnStart {
		if err := deps.sweep(ctx); err != nil {
			logger.Error("initial sweep failed", slog.Any("error", err))
		}
	}

	scheduler := cron.NewScheduler(logger)
	if err := scheduler.AddJob(cfg.Worker.SweepSchedule, "sweep", sweepTimeout, deps.sweep); err != nil {
		logger.Error("invalid sweep schedule",
			slog.String("schedule", cfg.Worker.SweepSchedule), slog.Any("error", err))
		os.Exit(1)
	}
	scheduler.Start()

	logger.Info("worker started",
		slog.String("input_dir", cfg.Worker.InputDir),
		slog.String("schedule", cfg.Worker.SweepSchedule))

	<-ctx.Done()
	logger.Info("shutting down")

	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(30 * time.Second):
		logger.Warn("timed out waiting for running sweep")
	}
}

func serveMetrics(deps *Dependencies, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	addr := fmt.Sprintf(":%d", deps.Config.Observability.MetricsPort)
	logger.Info("metrics listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", slog.Any("error", err))
	}
}
