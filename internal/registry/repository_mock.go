package registry

import (
	"context"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
)

// MockRepository is a mock implementation of ports.ExperimentRepository for testing.
type MockRepository struct {
	CreateFunc func(ctx context.Context, r *domain.Registration) error
	ListFunc   func(ctx context.Context) ([]*domain.Registration, error)
}

func (m *MockRepository) Create(ctx context.Context, r *domain.Registration) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *MockRepository) List(ctx context.Context) ([]*domain.Registration, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*domain.Registration{}, nil
}
