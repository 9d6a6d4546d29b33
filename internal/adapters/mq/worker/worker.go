// Package worker defines the refresh workers that recompute the cached
// activity board when fixtures change.
//
// The engine's scorer is a pure function; caching its output is the
// caller's job. Workers are that caller: they drain refresh signals,
// coalesce bursts into a single recompute, and publish the result.
package worker

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/touchline/touchline/internal/adapters/mq/queue"
	"github.com/touchline/touchline/internal/domain/activity"
	"github.com/touchline/touchline/internal/domain/model"
	"github.com/touchline/touchline/pkg/logger"
	"github.com/touchline/touchline/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerCount    = 2
	workerShutdownTimeout = 5 * time.Second
	poolShutdownTimeout   = 30 * time.Second
)

// Signal aliases the queue payload consumed by workers.
type Signal = queue.Signal

// Source supplies the fixture snapshot to recompute from.
type Source interface {
	List(ctx context.Context) []model.Fixture
}

// Scorer computes an activity board from a snapshot.
type Scorer interface {
	Score(fixtures []model.Fixture, now time.Time) []activity.Entry
}

// Board receives recomputed activity boards.
type Board interface {
	Publish(entries []activity.Entry)
}

// Queue defines how workers receive refresh signals.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Signal
}

// Worker drains refresh signals and recomputes the board.
type Worker interface {
	// Run starts the worker loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown gracefully stops the worker.
	Shutdown(ctx context.Context) error
}

// RefreshWorker implements Worker.
type RefreshWorker struct {
	queue  Queue
	source Source
	scorer Scorer
	board  Board
	name   string
	now    func() time.Time

	// Shutdown control
	shutdown chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// NewRefreshWorker creates a new worker with configuration options.
func NewRefreshWorker(q Queue, source Source, scorer Scorer, board Board, opts ...Option) *RefreshWorker {
	w := &RefreshWorker{
		queue:    q,
		source:   source,
		scorer:   scorer,
		board:    board,
		name:     "worker",
		now:      time.Now,
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}

	// Apply all options
	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}

	return w
}

// Run starts the worker loop.
func (w *RefreshWorker) Run(ctx context.Context) {
	defer close(w.done)

	signals := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case s, ok := <-signals:
			if !ok {
				return
			}
			w.drainPending(ctx, s)
			w.recompute(ctx)
		}
	}
}

// drainPending coalesces any queued signals behind the one just received,
// so a burst of fixture edits costs one recompute.
func (w *RefreshWorker) drainPending(ctx context.Context, first Signal) {
	drained := 0
	if drainer, ok := w.queue.(interface {
		TryDequeue(ctx context.Context) (Signal, bool)
	}); ok {
		for {
			if _, more := drainer.TryDequeue(ctx); !more {
				break
			}
			drained++
		}
	}
	if drained > 0 {
		w.logger.Debug(ctx, "coalesced refresh signals",
			logger.String("fixtureID", first.FixtureID),
			logger.Int("drained", drained),
		)
	}
}

// recompute rebuilds and publishes the activity board.
func (w *RefreshWorker) recompute(ctx context.Context) {
	start := time.Now()
	defer func() {
		latency := time.Since(start).Milliseconds()
		metrics.RecordWorkerProcessingLatency(float64(latency))
	}()

	fixtures := w.source.List(ctx)
	entries := w.scorer.Score(fixtures, w.now())
	w.board.Publish(entries)

	metrics.RecordBoardRecompute()
	metrics.RecordBoardRecomputeDuration(float64(time.Since(start).Milliseconds()))
	metrics.UpdateBoardSize(len(entries))
}

// Shutdown gracefully stops the worker. Safe to call more than once.
func (w *RefreshWorker) Shutdown(ctx context.Context) error {
	w.stopOnce.Do(func() { close(w.shutdown) })

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// Pool manages multiple refresh workers.
type Pool struct {
	workers []*RefreshWorker

	// Shutdown control
	shutdown chan struct{}

	// Logging
	logger logger.Logger
}

// NewPool creates a new worker pool.
func NewPool(workerCount int, q Queue, source Source, scorer Scorer, board Board, opts ...Option) *Pool {
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}

	pool := &Pool{
		workers:  make([]*RefreshWorker, workerCount),
		shutdown: make(chan struct{}),
		logger:   logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		workerOpts := append([]Option{WithName("worker-" + strconv.Itoa(i))}, opts...)
		pool.workers[i] = NewRefreshWorker(q, source, scorer, board, workerOpts...)
	}

	metrics.UpdateWorkerCount(workerCount)

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop gracefully stops all workers.
func (p *Pool) Stop() {
	close(p.shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), workerShutdownTimeout)
	defer cancel()
	for _, w := range p.workers {
		_ = w.Shutdown(ctx)
	}
}

// Shutdown gracefully shuts down the entire worker pool.
func (p *Pool) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, w := range p.workers {
		if err := w.Shutdown(shutdownCtx); err != nil {
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}
	return nil
}
