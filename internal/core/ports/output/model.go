package ports

import (
	"context"

	"bank-marketing-service/internal/core/domain"
)

// ArtifactResolver turns a configured locator into a usable local bundle.
// Resolve blocks for network fetch and extraction; it honors ctx for the
// overall timeout budget.
type ArtifactResolver interface {
	Resolve(ctx context.Context, locator, targetDir string, force bool) (*domain.ArtifactBundle, error)
}

// ModelHandle is an immutable loaded pipeline. Score is re-entrant and
// safe for unsynchronized concurrent use.
type ModelHandle interface {
	Score(f domain.EngineeredFeatures) float64
}

// ModelLoader deserializes a resolved bundle into a handle. Repeated loads
// of the same bundle path return the same handle.
type ModelLoader interface {
	Load(ctx context.Context, bundle *domain.ArtifactBundle) (ModelHandle, error)
}

// PredictionLogRepository persists served predictions for audit.
type PredictionLogRepository interface {
	Create(ctx context.Context, record *domain.PredictionRecord) error
}
