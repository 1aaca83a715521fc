package countries

import (
	"country-currency-api/core/artifact"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the countries feature with its production collaborators.
func NewFeature(db *gorm.DB, cfg Config, store artifact.Store, logger *zap.Logger) *Feature {
	sources := NewSources(cfg)
	renderer := NewSummaryRenderer(db, store, NewRasterizer(), logger)
	svc := NewService(db, sources, renderer, store, NewRand(), logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Service exposes the feature's service, for CLI use.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "countries"
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
