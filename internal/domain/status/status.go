// Package status derives the displayed lifecycle state of a fixture.
//
// Manual states are authoritative: an operator-set LIVE, ENDED or explicit
// NOT_STARTED override is returned unchanged regardless of time. Without an
// override the only time-derived state is UPCOMING, for kickoffs inside the
// upcoming window; everything else resolves to NOT_STARTED. There is no
// time-based transition into LIVE or ENDED.
package status

import (
	"time"

	"github.com/touchline/touchline/internal/domain/model"
)

// Default window inside which an unoverridden fixture shows as upcoming.
const defaultUpcomingWindow = 3 * 24 * time.Hour

// Resolver derives fixture states. Resolve is a pure function of its
// arguments; the resolver holds only the configured window.
type Resolver struct {
	window time.Duration
}

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithUpcomingWindow sets how far ahead of now a fixture counts as
// upcoming. Non-positive values are ignored.
func WithUpcomingWindow(window time.Duration) Option {
	return func(r *Resolver) {
		if window > 0 {
			r.window = window
		}
	}
}

// NewResolver creates a resolver with configuration options.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		window: defaultUpcomingWindow,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the display state for the fixture at the given instant.
func (r *Resolver) Resolve(f model.Fixture, now time.Time) model.Status {
	// Manual precedence: overrides always win.
	switch f.Override {
	case model.StatusLive, model.StatusEnded, model.StatusNotStarted:
		return f.Override
	case model.StatusUpcoming:
		// Upcoming is never manual; fall through to the derived rule.
	}

	if !f.Scheduled() {
		return model.StatusNotStarted
	}

	// Upcoming window is inclusive on both ends: [now, now+window].
	if !f.KickoffAt.Before(now) && !f.KickoffAt.After(now.Add(r.window)) {
		return model.StatusUpcoming
	}
	return model.StatusNotStarted
}
