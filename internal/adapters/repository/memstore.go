package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/touchline/touchline/internal/domain/model"
	"github.com/touchline/touchline/pkg/metrics"
)

// MemStore implements Store with a mutex-guarded map. Reads hand out
// copies, so snapshots stay valid while writers make progress.
type MemStore struct {
	mu       sync.RWMutex
	fixtures map[string]model.Fixture
}

// NewMemStore creates an in-memory store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		fixtures: make(map[string]model.Fixture),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	metrics.UpdateFixtureCount(len(s.fixtures))
	return s
}

// Put inserts or replaces a fixture, assigning an id when missing.
func (s *MemStore) Put(_ context.Context, f model.Fixture) (model.Fixture, error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}

	s.mu.Lock()
	s.fixtures[f.ID] = f
	count := len(s.fixtures)
	s.mu.Unlock()

	metrics.UpdateFixtureCount(count)
	return f, nil
}

// Get returns the fixture with the given id.
func (s *MemStore) Get(_ context.Context, id string) (model.Fixture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.fixtures[id]
	if !ok {
		return model.Fixture{}, ErrNotFound
	}
	return f, nil
}

// Delete removes the fixture with the given id.
func (s *MemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.fixtures[id]; !ok {
		return ErrNotFound
	}
	delete(s.fixtures, id)
	metrics.UpdateFixtureCount(len(s.fixtures))
	return nil
}

// List returns all fixtures ordered by kickoff time, then id for a stable
// order among unscheduled records.
func (s *MemStore) List(_ context.Context) []model.Fixture {
	s.mu.RLock()
	out := make([]model.Fixture, 0, len(s.fixtures))
	for _, f := range s.fixtures {
		out = append(out, f)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Count returns the number of fixtures tracked in the store.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.fixtures)
}
