package experiments

import (
	"context"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
)

// MockAPI is a mock implementation of ports.ExperimentAPI for testing.
type MockAPI struct {
	ListExperimentsFunc  func(ctx context.Context) ([]domain.Experiment, error)
	CreateExperimentFunc func(ctx context.Context, name string) (*domain.CreatedExperiment, error)
}

func (m *MockAPI) ListExperiments(ctx context.Context) ([]domain.Experiment, error) {
	if m.ListExperimentsFunc != nil {
		return m.ListExperimentsFunc(ctx)
	}
	return []domain.Experiment{}, nil
}

func (m *MockAPI) CreateExperiment(ctx context.Context, name string) (*domain.CreatedExperiment, error) {
	if m.CreateExperimentFunc != nil {
		return m.CreateExperimentFunc(ctx, name)
	}
	return &domain.CreatedExperiment{Name: name}, nil
}
