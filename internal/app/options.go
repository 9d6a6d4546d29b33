package app

import (
	"time"

	"github.com/touchline/touchline/internal/adapters/repository"
	"github.com/touchline/touchline/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets the fixture snapshot store. Tests and embedders can
// substitute a pre-seeded store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithConflictWindow sets the double-booking window.
func WithConflictWindow(window time.Duration) Option {
	return func(s *Service) {
		if window > 0 {
			s.conflictWindow = window
		}
	}
}

// WithUpcomingWindow sets the upcoming status window.
func WithUpcomingWindow(window time.Duration) Option {
	return func(s *Service) {
		if window > 0 {
			s.upcomingWindow = window
		}
	}
}

// WithLookback sets the activity scoring lookback window.
func WithLookback(lookback time.Duration) Option {
	return func(s *Service) {
		if lookback > 0 {
			s.lookback = lookback
		}
	}
}

// WithHalfLife sets the activity decay half-life.
func WithHalfLife(halfLife time.Duration) Option {
	return func(s *Service) {
		if halfLife > 0 {
			s.halfLife = halfLife
		}
	}
}

// WithBoardSize caps the activity board length.
func WithBoardSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.boardSize = size
		}
	}
}

// WithQueueSize sets the refresh queue capacity.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithWorkerCount sets the number of refresh workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithClock sets the time source. Tests use it to pin "now".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}
