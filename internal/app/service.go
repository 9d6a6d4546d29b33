// Package app provides the core business service that implements
// the dependencies required by the HTTP API.
package app

import (
	"context"
	"sync"
	"time"

	refreshqueue "github.com/touchline/touchline/internal/adapters/mq/queue"
	workerpool "github.com/touchline/touchline/internal/adapters/mq/worker"
	"github.com/touchline/touchline/internal/adapters/repository"
	"github.com/touchline/touchline/internal/domain/activity"
	"github.com/touchline/touchline/internal/domain/conflict"
	"github.com/touchline/touchline/internal/domain/model"
	"github.com/touchline/touchline/internal/domain/roster"
	"github.com/touchline/touchline/internal/domain/status"
	"github.com/touchline/touchline/internal/domain/types"
	"github.com/touchline/touchline/pkg/logger"
	"github.com/touchline/touchline/pkg/metrics"
)

const hoursPerDay = 24

// Service implements the API dependencies for the scheduling system.
// The engine packages it wires are pure; the service owns the mutable
// parts: the fixture snapshot store and the cached activity board.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     repository.Store
	validator *conflict.Validator
	resolver  *status.Resolver
	scorer    *activity.Scorer
	queue     refreshqueue.Queue
	pool      *workerpool.Pool

	// Configuration
	conflictWindow time.Duration
	upcomingWindow time.Duration
	lookback       time.Duration
	halfLife       time.Duration
	boardSize      int
	queueSize      int
	workerCount    int
	now            func() time.Time

	// Cached activity board, published by refresh workers.
	boardMu    sync.RWMutex
	board      []activity.Entry
	boardAt    time.Time
	boardReady bool

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		conflictWindow: 3 * time.Hour,
		upcomingWindow: 3 * hoursPerDay * time.Hour,
		lookback:       30 * hoursPerDay * time.Hour,
		halfLife:       30 * hoursPerDay * time.Hour,
		boardSize:      24,
		queueSize:      1024,
		workerCount:    2,
		now:            time.Now,
		logger:         nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting scheduling service...")

	if s.store == nil {
		s.store = repository.NewMemStore()
	}
	s.validator = conflict.NewValidator(
		conflict.WithWindow(s.conflictWindow),
	)
	s.resolver = status.NewResolver(
		status.WithUpcomingWindow(s.upcomingWindow),
	)
	s.scorer = activity.NewScorer(
		activity.WithLookback(s.lookback),
		activity.WithHalfLife(s.halfLife),
		activity.WithBoardSize(s.boardSize),
	)
	s.queue = refreshqueue.NewInMemoryQueue(
		refreshqueue.WithCapacity(s.queueSize),
		refreshqueue.WithBufferSize(s.queueSize),
	)

	s.pool = workerpool.NewPool(s.workerCount, s.queue, s.store, s.scorer, s,
		workerpool.WithClock(s.now),
	)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "scheduling service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("boardSize", s.boardSize),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping scheduling service...")

	if q, ok := s.queue.(*refreshqueue.InMemoryQueue); ok {
		_ = q.Close()
	}
	if s.pool != nil {
		s.pool.Stop()
	}

	s.started = false
	s.logger.Info(ctx, "scheduling service stopped")
}

// CreateFixture validates the candidate against the current snapshot and
// stores it when no conflict applies.
func (s *Service) CreateFixture(ctx context.Context, f model.Fixture) (model.Fixture, error) {
	if err := s.validate(ctx, f, ""); err != nil {
		return model.Fixture{}, err
	}

	stored, err := s.store.Put(ctx, f)
	if err != nil {
		return model.Fixture{}, err
	}
	s.signalRefresh(ctx, stored.ID, "put")
	return stored, nil
}

// UpdateFixture revalidates and replaces an existing fixture. The fixture
// being edited is excluded from conflict checks so it does not collide
// with itself.
func (s *Service) UpdateFixture(ctx context.Context, id string, f model.Fixture) (model.Fixture, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return model.Fixture{}, err
	}

	f.ID = id
	if err := s.validate(ctx, f, id); err != nil {
		return model.Fixture{}, err
	}

	stored, err := s.store.Put(ctx, f)
	if err != nil {
		return model.Fixture{}, err
	}
	s.signalRefresh(ctx, id, "put")
	return stored, nil
}

// DeleteFixture removes a fixture from the snapshot.
func (s *Service) DeleteFixture(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.signalRefresh(ctx, id, "delete")
	return nil
}

// GetFixture returns a single fixture.
func (s *Service) GetFixture(ctx context.Context, id string) (model.Fixture, error) {
	return s.store.Get(ctx, id)
}

// ListFixtures returns the current fixture snapshot ordered by kickoff.
func (s *Service) ListFixtures(ctx context.Context) []model.Fixture {
	return s.store.List(ctx)
}

// ValidateFixture dry-runs the conflict checks without storing anything.
func (s *Service) ValidateFixture(ctx context.Context, f model.Fixture, excludeID string) types.ValidationResult {
	if err := s.validate(ctx, f, excludeID); err != nil {
		if ce, ok := conflict.AsError(err); ok {
			return types.ValidationResult{OK: false, Conflict: conflictView(ce)}
		}
		return types.ValidationResult{OK: false, Conflict: &types.ConflictView{Kind: "UNKNOWN"}}
	}
	return types.ValidationResult{OK: true}
}

// FixtureStatus derives the display state of a fixture. A zero instant
// means "at server time".
func (s *Service) FixtureStatus(ctx context.Context, id string, at time.Time) (types.StatusView, error) {
	f, err := s.store.Get(ctx, id)
	if err != nil {
		return types.StatusView{}, err
	}
	if at.IsZero() {
		at = s.now()
	}
	return types.StatusView{
		FixtureID: id,
		Status:    string(s.resolver.Resolve(f, at)),
		At:        at,
	}, nil
}

// ActivityBoard returns the cached activity ranking. The first call before
// any worker has published computes synchronously.
func (s *Service) ActivityBoard(ctx context.Context) []activity.Entry {
	s.boardMu.RLock()
	if s.boardReady {
		board := make([]activity.Entry, len(s.board))
		copy(board, s.board)
		s.boardMu.RUnlock()
		return board
	}
	s.boardMu.RUnlock()

	return s.RecomputeActivityBoard(ctx)
}

// RecomputeActivityBoard rebuilds the board from the current snapshot and
// publishes it.
func (s *Service) RecomputeActivityBoard(ctx context.Context) []activity.Entry {
	start := time.Now()
	entries := s.scorer.Score(s.store.List(ctx), s.now())
	s.Publish(entries)

	metrics.RecordBoardRecompute()
	metrics.RecordBoardRecomputeDuration(float64(time.Since(start).Milliseconds()))
	metrics.UpdateBoardSize(len(entries))
	return entries
}

// Publish stores a recomputed board. Implements the worker Board contract.
func (s *Service) Publish(entries []activity.Entry) {
	s.boardMu.Lock()
	s.board = entries
	s.boardAt = s.now()
	s.boardReady = true
	s.boardMu.Unlock()
}

// Roster buckets official assignments per calendar day over the inclusive
// date range.
func (s *Service) Roster(ctx context.Context, from, to time.Time) map[string]roster.Day {
	return roster.Aggregate(s.store.List(ctx), from, to)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"boardSize":   s.boardSize,
	}

	if s.started {
		fixtureCount := s.store.Count(ctx)
		stats["fixtures"] = fixtureCount
		stats["queueLength"] = s.queue.Len(ctx)

		s.boardMu.RLock()
		stats["boardEntries"] = len(s.board)
		if s.boardReady {
			stats["boardComputedAt"] = s.boardAt
		}
		s.boardMu.RUnlock()

		metrics.UpdateFixtureCount(fixtureCount)
		metrics.UpdateWorkerCount(s.workerCount)
	}

	return stats
}

// validate runs the conflict engine against the current snapshot and
// records validation metrics.
func (s *Service) validate(ctx context.Context, f model.Fixture, excludeID string) error {
	metrics.RecordValidation()
	err := s.validator.Validate(f, s.store.List(ctx), excludeID)
	if err != nil {
		if ce, ok := conflict.AsError(err); ok {
			metrics.RecordConflict(string(ce.Kind))
		}
		return err
	}
	return nil
}

// signalRefresh enqueues a board refresh; a full queue is tolerable since
// any later mutation triggers another refresh.
func (s *Service) signalRefresh(ctx context.Context, fixtureID, op string) {
	ok := s.queue.Enqueue(ctx, refreshqueue.Signal{
		FixtureID: fixtureID,
		Op:        op,
		At:        s.now(),
	})
	if !ok {
		s.logger.Warn(ctx, "refresh queue full; board refresh skipped",
			logger.String("fixtureID", fixtureID),
			logger.String("op", op),
		)
	}
}

func conflictView(ce *conflict.Error) *types.ConflictView {
	v := &types.ConflictView{
		Kind:        string(ce.Kind),
		FixtureID:   ce.FixtureID,
		OfficialKey: ce.OfficialKey,
	}
	if !ce.KickoffAt.IsZero() {
		t := ce.KickoffAt
		v.KickoffAt = &t
	}
	return v
}
