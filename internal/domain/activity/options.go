package activity

import "time"

// Default scoring configuration constants.
const (
	defaultLookback  = 30 * 24 * time.Hour
	defaultHalfLife  = 30 * 24 * time.Hour
	defaultBoardSize = 24
)

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithLookback sets how far back assignment records are considered.
// Non-positive values are ignored.
func WithLookback(lookback time.Duration) Option {
	return func(s *Scorer) {
		if lookback > 0 {
			s.lookback = lookback
		}
	}
}

// WithHalfLife sets the decay half-life. Non-positive values are ignored.
func WithHalfLife(halfLife time.Duration) Option {
	return func(s *Scorer) {
		if halfLife > 0 {
			s.halfLife = halfLife
		}
	}
}

// WithBoardSize caps the number of returned entries.
// Non-positive values are ignored.
func WithBoardSize(size int) Option {
	return func(s *Scorer) {
		if size > 0 {
			s.boardSize = size
		}
	}
}
