package experiments

import (
	"context"
	"maps"
	"sync"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
	"github.com/emiliopalmerini/srsadmin/internal/ports"
)

// Store holds the latest experiment list fetched from the admin API.
//
// Refreshes are not sequenced: when two overlap, whichever completes last
// determines the snapshot. The mutex only guards the slice header.
type Store struct {
	api ports.ExperimentAPI

	mu    sync.RWMutex
	items []domain.Experiment
}

// NewStore returns an empty store backed by api.
func NewStore(api ports.ExperimentAPI) *Store {
	return &Store{
		api:   api,
		items: []domain.Experiment{},
	}
}

// Refresh fetches the list and replaces the snapshot wholesale.
// On error the snapshot is left untouched.
func (s *Store) Refresh(ctx context.Context) error {
	items, err := s.api.ListExperiments(ctx)
	if err != nil {
		return err
	}

	next := make([]domain.Experiment, len(items))
	copy(next, items)

	s.mu.Lock()
	s.items = next
	s.mu.Unlock()
	return nil
}

// List returns a copy of the snapshot of the most recently completed refresh.
// Rows are cloned one level deep.
func (s *Store) List() []domain.Experiment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Experiment, len(s.items))
	for i, item := range s.items {
		out[i] = maps.Clone(item)
	}
	return out
}
