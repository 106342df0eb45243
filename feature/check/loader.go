package check

import (
	"mnp-alarm/core/reconcile"
	"mnp-alarm/feature/reference"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Check feature.
func NewFeature(source reference.Source, engine *reconcile.Engine, logger *zap.Logger) *Feature {
	svc := NewService(source, engine, logger)
	return &Feature{service: svc, handler: NewHandler(svc, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "check"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
