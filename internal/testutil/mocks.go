package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bank-marketing-service/internal/core/domain"
	"bank-marketing-service/internal/core/ports/output"
)

// MockArtifactResolver mocks ports.ArtifactResolver
type MockArtifactResolver struct {
	mock.Mock
}

func (m *MockArtifactResolver) Resolve(ctx context.Context, locator, targetDir string, force bool) (*domain.ArtifactBundle, error) {
	args := m.Called(ctx, locator, targetDir, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArtifactBundle), args.Error(1)
}

// MockModelLoader mocks ports.ModelLoader
type MockModelLoader struct {
	mock.Mock
}

func (m *MockModelLoader) Load(ctx context.Context, bundle *domain.ArtifactBundle) (ports.ModelHandle, error) {
	args := m.Called(ctx, bundle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.ModelHandle), args.Error(1)
}

// StubModelHandle scores every request with a fixed probability.
type StubModelHandle struct {
	Probability float64
}

func (s *StubModelHandle) Score(_ domain.EngineeredFeatures) float64 {
	return s.Probability
}

// MockPredictionLogRepo mocks ports.PredictionLogRepository
type MockPredictionLogRepo struct {
	mock.Mock
}

func (m *MockPredictionLogRepo) Create(ctx context.Context, record *domain.PredictionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
