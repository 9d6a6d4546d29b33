// Package activity computes a recency-weighted activity ranking of match
// officials from a window of assignment records.
//
// Raw counts overweight officials who worked long ago, so each assignment
// contributes an exponentially decayed weight instead: a record's
// contribution halves every half-life. Records are merged by canonical
// identity key because assignment rows may carry only a free-text name.
package activity

import (
	"math"
	"sort"
	"time"

	"github.com/touchline/touchline/internal/domain/identity"
	"github.com/touchline/touchline/internal/domain/model"
)

// Tier is one of three activity buckets assigned by percentile rank.
type Tier string

// Activity tiers.
const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Percentile cut points for tier assignment.
const (
	lowCutPercentile    = 0.33
	mediumCutPercentile = 0.66
)

// Entry is one ranked official on the activity board.
type Entry struct {
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url,omitempty"`
	Weight   float64 `json:"weight"`
	Count    int     `json:"count"`
	Tier     Tier    `json:"tier"`
}

// Scorer computes activity boards. Score is a pure function of its
// arguments; the scorer holds only tuning parameters.
type Scorer struct {
	lookback  time.Duration
	halfLife  time.Duration
	boardSize int
}

// NewScorer creates a scorer with configuration options.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		lookback:  defaultLookback,
		halfLife:  defaultHalfLife,
		boardSize: defaultBoardSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score returns the top officials by decayed assignment weight at the given
// instant, most active first. Fixtures outside the lookback window, in the
// future, or without a kickoff time are skipped silently; this is a
// best-effort summary, never a gatekeeper.
func (s *Scorer) Score(fixtures []model.Fixture, now time.Time) []Entry {
	cutoff := now.Add(-s.lookback)
	byKey := make(map[string]*Entry)

	for _, f := range fixtures {
		if !f.Scheduled() || f.KickoffAt.Before(cutoff) || f.KickoffAt.After(now) {
			continue
		}
		weight := decayWeight(now.Sub(f.KickoffAt), s.halfLife)
		for _, a := range f.Assignments() {
			key := identity.KeyFor(a.Official)
			e, ok := byKey[key]
			if !ok {
				e = &Entry{Key: key}
				byKey[key] = e
			}
			e.Weight += weight
			e.Count++
			e.Name = identity.PreferredName(e.Name, a.Official.Name)
			if e.ImageURL == "" {
				e.ImageURL = a.Official.ImageURL
			}
		}
	}

	entries := make([]Entry, 0, len(byKey))
	for _, e := range byKey {
		entries = append(entries, *e)
	}

	assignTiers(entries)

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Weight != entries[j].Weight {
			return entries[i].Weight > entries[j].Weight
		}
		return entries[i].Key < entries[j].Key
	})

	if len(entries) > s.boardSize {
		entries = entries[:s.boardSize]
	}
	return entries
}

// decayWeight halves a record's contribution every half-life.
func decayWeight(age, halfLife time.Duration) float64 {
	if halfLife <= 0 {
		return 1
	}
	return math.Pow(0.5, float64(age)/float64(halfLife))
}

// assignTiers buckets entries by the 33rd and 66th percentile of their
// accumulated weights. Equal weights always land in the same tier.
func assignTiers(entries []Entry) {
	if len(entries) == 0 {
		return
	}

	weights := make([]float64, len(entries))
	for i, e := range entries {
		weights[i] = e.Weight
	}
	sort.Float64s(weights)

	p33 := percentile(weights, lowCutPercentile)
	p66 := percentile(weights, mediumCutPercentile)

	for i := range entries {
		switch {
		case entries[i].Weight <= p33:
			entries[i].Tier = TierLow
		case entries[i].Weight <= p66:
			entries[i].Tier = TierMedium
		default:
			entries[i].Tier = TierHigh
		}
	}
}

// percentile interpolates linearly between order statistics of an
// ascending-sorted slice: index = p*(n-1), blended between the floor and
// ceil ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	idx := p * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
