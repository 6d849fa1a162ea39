package ports

import (
	"context"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
)

// ExperimentRepository persists experiment registrations.
type ExperimentRepository interface {
	Create(ctx context.Context, r *domain.Registration) error
	// List returns every registration in insertion order.
	List(ctx context.Context) ([]*domain.Registration, error)
}
