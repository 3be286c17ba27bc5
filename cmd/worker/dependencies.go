package main

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/FACorreiaa/receipt-scan/internal/domain/categorization"
	"github.com/FACorreiaa/receipt-scan/internal/domain/export"
	"github.com/FACorreiaa/receipt-scan/internal/domain/extraction"
	"github.com/FACorreiaa/receipt-scan/internal/domain/extraction/service"
	"github.com/FACorreiaa/receipt-scan/internal/domain/refdata"
	"github.com/FACorreiaa/receipt-scan/pkg/config"
	"github.com/FACorreiaa/receipt-scan/pkg/storage"
)

// Dependencies holds all worker dependencies
type Dependencies struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry

	Merchants []refdata.Merchant
	Engine    *extraction.Engine
	Service   *service.Service
	Exporter  *export.Exporter
	Store     storage.Store
}

// InitDependencies initializes all worker dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initDictionary(); err != nil {
		return nil, fmt.Errorf("failed to init dictionary: %w", err)
	}

	if err := deps.initStorage(); err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	deps.initEngine()
	deps.initServices()

	logger.Info("all dependencies initialized successfully",
		slog.Int("merchants", len(deps.Merchants)))

	return deps, nil
}

// initDictionary loads the merchant dictionary, preferring the configured
// external path over the embedded snapshot.
func (d *Dependencies) initDictionary() error {
	if path := d.Config.Dictionary.Path; path != "" {
		merchants, err := refdata.LoadFile(path)
		if err != nil {
			return err
		}
		d.Merchants = merchants
		d.Logger.Info("merchant dictionary loaded", slog.String("path", path))
		return nil
	}
	d.Merchants = refdata.Default()
	return nil
}

func (d *Dependencies) initStorage() error {
	store, err := storage.NewLocalStore(d.Config.Worker.InputDir)
	if err != nil {
		return err
	}
	d.Store = store
	return nil
}

func (d *Dependencies) initEngine() {
	d.Engine = extraction.New(
		extraction.NewMerchantExtractor(d.Merchants),
		categorization.NewEngine(d.Merchants),
	)
}

func (d *Dependencies) initServices() {
	d.Registry = prometheus.NewRegistry()
	d.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	d.Service = service.New(
		d.Engine,
		nil, // transcripts arrive pre-recognized; no OCR client in the worker
		categorization.NewFuzzyResolver(d.Merchants),
		d.Logger,
		service.NewMetrics(d.Registry),
	)
	d.Exporter = export.New(d.Logger)
}
