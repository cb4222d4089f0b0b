package regulatory

import (
	"onboarding-dashboard/core/storage"
	"onboarding-dashboard/core/utils"
	"onboarding-dashboard/feature/regulatory/upstream"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature wires the engine to the configured upstream systems.
// client may be nil unless the document source is storage.
func NewFeature(cfg upstream.Config, client storage.Client, bucket string, logger *zap.Logger) *Feature {
	return NewFeatureWithService(NewServiceFromConfig(cfg, client, bucket, logger))
}

// NewFeatureWithService wraps an existing service.
func NewFeatureWithService(svc *Service) *Feature {
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// NewServiceFromConfig builds the engine, its upstreams and the store.
func NewServiceFromConfig(cfg upstream.Config, client storage.Client, bucket string, logger *zap.Logger) *Service {
	rnd := utils.NewRandom(cfg.Seed)
	sim := upstream.NewSimulator(rnd, cfg.SimulateLatency)

	var docs upstream.DocumentSource = sim
	if cfg.DocumentSource == upstream.SourceStorage && client != nil {
		docs = upstream.NewStorageDocuments(client, bucket)
	}

	engine := NewEngine(EngineConfig{
		Documents:      docs,
		Validator:      sim,
		Quality:        sim,
		Random:         rnd,
		Logger:         logger,
		MinRegulations: cfg.MinRegulations,
		MaxRegulations: cfg.MaxRegulations,
	})
	return NewService(engine, NewStore(), logger)
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "regulatory"
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
