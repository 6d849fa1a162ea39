package ports

import (
	"context"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
)

// ExperimentAPI is the admin backend as seen by the console.
type ExperimentAPI interface {
	// ListExperiments fetches every experiment, in server order.
	ListExperiments(ctx context.Context) ([]domain.Experiment, error)
	// CreateExperiment registers a new experiment and returns its token.
	CreateExperiment(ctx context.Context, name string) (*domain.CreatedExperiment, error)
}
