package cmd

import (
	"fmt"

	"mnp-alarm/core/config"
	"mnp-alarm/core/database"
	"mnp-alarm/core/logger"
	"mnp-alarm/core/metrics"
	"mnp-alarm/core/reconcile"
	"mnp-alarm/core/storage"
	"mnp-alarm/feature/alert"
	"mnp-alarm/feature/lookup"
	"mnp-alarm/feature/reference"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app bundles what every command builds from configuration.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

// newApp loads configuration and the logger.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &app{cfg: cfg, logger: logg}, nil
}

// storage creates the object storage client.
func (a *app) storage() (storage.Client, error) {
	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, nil
}

// source builds the configured reference source, opening storage or the
// database only when the source needs it.
func (a *app) source() (reference.Source, error) {
	var (
		client storage.Client
		db     *gorm.DB
		err    error
	)

	switch a.cfg.Reference.Source {
	case reference.SourceStorage:
		if client, err = a.storage(); err != nil {
			return nil, err
		}
	case reference.SourceDatabase:
		if db, err = database.Connect(a.cfg.Database); err != nil {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		a.logger.Info("Connected to reference database", zap.String("table", a.cfg.Reference.Table))
	}

	return reference.New(a.cfg.Reference, client, a.cfg.Storage.Bucket, db)
}

// lookupClient creates the HLR client.
func (a *app) lookupClient(recorder *metrics.Recorder) (*lookup.Client, error) {
	client, err := lookup.NewClient(a.cfg.Lookup,
		lookup.WithLogger(a.logger),
		lookup.WithMetrics(recorder),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup client: %w", err)
	}
	return client, nil
}

// engine wires the lookup client and the SMS sender into a reconciliation engine.
func (a *app) engine(recorder *metrics.Recorder) (*reconcile.Engine, error) {
	client, err := a.lookupClient(recorder)
	if err != nil {
		return nil, err
	}
	sender, err := alert.NewSMSSender(a.cfg.Alert)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert sender: %w", err)
	}
	return reconcile.NewEngine(client, sender, a.cfg.Lookup.Normalizer(), a.logger, recorder), nil
}
