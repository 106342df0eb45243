package check

import (
	"context"
	"fmt"

	"mnp-alarm/core/reconcile"
	"mnp-alarm/feature/reference"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service loads the reference set and runs the reconciliation engine.
type Service struct {
	source reference.Source
	engine *reconcile.Engine
	logger *zap.Logger
	sf     singleflight.Group
}

// NewService creates a new check service.
func NewService(source reference.Source, engine *reconcile.Engine, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		engine: engine,
		logger: logger,
	}
}

// Run performs one reconciliation pass. Concurrent calls with the same dryRun
// value share a single pass, so overlapping triggers never send two alerts
// for the same drift.
func (s *Service) Run(ctx context.Context, dryRun bool) (*reconcile.Report, error) {
	key := "run"
	if dryRun {
		key = "dry-run"
	}

	v, err, shared := s.sf.Do(key, func() (any, error) {
		set, err := s.source.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load reference set: %w", err)
		}
		s.logger.Info("Reference set loaded", zap.Int("groups", set.Len()))
		return s.engine.Run(ctx, set, reconcile.Options{DryRun: dryRun})
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Joined an in-flight reconciliation")
	}
	return v.(*reconcile.Report), nil
}

// Reference returns the group sizes of the current reference set.
func (s *Service) Reference(ctx context.Context) ([]reference.GroupSummary, error) {
	set, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference set: %w", err)
	}
	return reference.Summarize(set), nil
}
