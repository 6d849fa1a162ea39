package experiments

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
)

func TestStore_RefreshPreservesServerOrderAndDuplicates(t *testing.T) {
	payload := []domain.Experiment{{"name": "b"}, {"name": "a"}, {"name": "b"}}
	s := NewStore(&MockAPI{
		ListExperimentsFunc: func(ctx context.Context) ([]domain.Experiment, error) {
			return payload, nil
		},
	})

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := s.List(); !reflect.DeepEqual(got, payload) {
		t.Errorf("List() = %v, want %v", got, payload)
	}
}

func TestStore_RefreshErrorLeavesSnapshot(t *testing.T) {
	wantErr := errors.New("boom")
	fail := false
	s := NewStore(&MockAPI{
		ListExperimentsFunc: func(ctx context.Context) ([]domain.Experiment, error) {
			if fail {
				return nil, wantErr
			}
			return []domain.Experiment{{"name": "a"}}, nil
		},
	})

	_ = s.Refresh(context.Background())
	fail = true
	if err := s.Refresh(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("Refresh error = %v, want %v", err, wantErr)
	}
	if got := s.List(); len(got) != 1 {
		t.Errorf("snapshot changed after failed refresh: %v", got)
	}
}

func TestStore_ListIsACopy(t *testing.T) {
	s := NewStore(&MockAPI{
		ListExperimentsFunc: func(ctx context.Context) ([]domain.Experiment, error) {
			return []domain.Experiment{{"name": "a"}}, nil
		},
	})
	_ = s.Refresh(context.Background())

	got := s.List()
	got[0] = domain.Experiment{"name": "mutated"}

	if s.List()[0].Name() != "a" {
		t.Error("caller mutation leaked into the store")
	}
}

func TestStore_ListClonesRows(t *testing.T) {
	s := NewStore(&MockAPI{
		ListExperimentsFunc: func(ctx context.Context) ([]domain.Experiment, error) {
			return []domain.Experiment{{"name": "a"}}, nil
		},
	})
	_ = s.Refresh(context.Background())

	got := s.List()
	got[0]["name"] = "mutated"

	if name := s.List()[0].Name(); name != "a" {
		t.Errorf("row mutation leaked into the store: name = %q", name)
	}
}

// The first refresh is issued first but completes last; its payload wins.
func TestStore_LastCompletionWins(t *testing.T) {
	releaseFirst := make(chan struct{})
	firstStarted := make(chan struct{})
	var calls int32

	s := NewStore(&MockAPI{
		ListExperimentsFunc: func(ctx context.Context) ([]domain.Experiment, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				close(firstStarted)
				<-releaseFirst
				return []domain.Experiment{{"name": "stale"}}, nil
			}
			return []domain.Experiment{{"name": "fresh"}}, nil
		},
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.Refresh(context.Background())
	}()

	<-firstStarted
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("second Refresh: %v", err)
	}
	if got := s.List(); got[0].Name() != "fresh" {
		t.Fatalf("expected fresh after second completion, got %v", got)
	}

	close(releaseFirst)
	wg.Wait()

	if got := s.List(); len(got) != 1 || got[0].Name() != "stale" {
		t.Errorf("expected later-completing payload to win, got %v", got)
	}
}

// List reflects the last completed refresh while another is still in flight.
func TestStore_ListDuringRefresh(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var calls int32

	s := NewStore(&MockAPI{
		ListExperimentsFunc: func(ctx context.Context) ([]domain.Experiment, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return []domain.Experiment{{"name": "old"}}, nil
			}
			close(started)
			<-release
			return []domain.Experiment{{"name": "new"}}, nil
		},
	})
	_ = s.Refresh(context.Background())

	done := make(chan struct{})
	go func() {
		_ = s.Refresh(context.Background())
		close(done)
	}()

	<-started
	if got := s.List(); got[0].Name() != "old" {
		t.Errorf("List() during refresh = %v, want old", got)
	}
	close(release)
	<-done
	if got := s.List(); got[0].Name() != "new" {
		t.Errorf("List() after refresh = %v, want new", got)
	}
}
