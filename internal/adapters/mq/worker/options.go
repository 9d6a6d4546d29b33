package worker

import "time"

// Option applies a configuration option to the RefreshWorker.
type Option func(*RefreshWorker)

// WithName sets the worker name used for logging.
func WithName(name string) Option {
	return func(w *RefreshWorker) {
		if name != "" {
			w.name = name
		}
	}
}

// WithClock sets the time source used when recomputing the board.
// Tests use it to pin "now".
func WithClock(now func() time.Time) Option {
	return func(w *RefreshWorker) {
		if now != nil {
			w.now = now
		}
	}
}
