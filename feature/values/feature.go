package values

import (
	"object-manager/feature/objects"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   *Store
	handler *Handler
}

// NewFeature creates a new values feature on top of the object service.
func NewFeature(svc *objects.Service, tempDir string, logger *zap.Logger) *Feature {
	store := NewStore(svc, tempDir, logger)
	h := NewHandler(store)
	return &Feature{store: store, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "values"
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
