// Package conflict decides whether a proposed fixture clashes with the
// existing schedule or with referee commitments.
//
// Checks run in a fixed order and the first match wins: role uniqueness on
// the candidate, exact duplicate fixture, same teams at a different venue,
// shared team at the same venue and time, then official double-booking
// within a symmetric time window. Only one conflict is ever reported per
// call, even when several apply.
package conflict

import (
	"time"

	"github.com/touchline/touchline/internal/domain/identity"
	"github.com/touchline/touchline/internal/domain/model"
)

// Validator checks candidate fixtures against an existing schedule.
// The zero-cost construction makes it safe to share across goroutines;
// Validate reads only its arguments.
type Validator struct {
	window time.Duration
}

// NewValidator creates a validator with configuration options.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		window: defaultConflictWindow,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate returns nil when the candidate may be saved, or a *Error
// describing the first applicable conflict. excludeID names the fixture
// being edited so it does not conflict with itself; pass "" on create.
func (v *Validator) Validate(candidate model.Fixture, existing []model.Fixture, excludeID string) error {
	if err := checkRoleUniqueness(candidate); err != nil {
		return err
	}

	others := make([]model.Fixture, 0, len(existing))
	for _, f := range existing {
		if excludeID != "" && f.ID == excludeID {
			continue
		}
		others = append(others, f)
	}

	// Each duplicate category is a full pass so that an exact duplicate
	// anywhere in the set is reported ahead of a weaker match elsewhere.
	for _, f := range others {
		if sameTeams(candidate, f) && sameKickoff(candidate, f) && candidate.Venue == f.Venue {
			return &Error{Kind: KindDuplicateMatchSameVenueTime, FixtureID: f.ID}
		}
	}
	for _, f := range others {
		if sameTeams(candidate, f) && sameKickoff(candidate, f) && candidate.Venue != f.Venue {
			return &Error{Kind: KindDuplicateMatchDifferentVenue, FixtureID: f.ID}
		}
	}
	for _, f := range others {
		if candidate.Venue == f.Venue && sameKickoff(candidate, f) && !sameTeams(candidate, f) && sharesTeam(candidate, f) {
			return &Error{Kind: KindDuplicateMatchSameTeam, FixtureID: f.ID}
		}
	}

	return v.checkDoubleBooking(candidate, others)
}

// checkRoleUniqueness fails when one official identity occupies two of the
// three role slots on the candidate.
func checkRoleUniqueness(candidate model.Fixture) error {
	seen := make(map[string]struct{}, len(model.Roles))
	for _, a := range candidate.Assignments() {
		key := identity.KeyFor(a.Official)
		if _, dup := seen[key]; dup {
			return &Error{Kind: KindDuplicateRoleAssignment, OfficialKey: key}
		}
		seen[key] = struct{}{}
	}
	return nil
}

// checkDoubleBooking fails when an official on the candidate is also
// assigned to another fixture within the conflict window. The window is a
// symmetric absolute time difference, deliberately not bounded to the same
// calendar day, so late evening and early morning fixtures still collide.
func (v *Validator) checkDoubleBooking(candidate model.Fixture, others []model.Fixture) error {
	if !candidate.Scheduled() {
		return nil
	}

	candidateKeys := officialKeys(candidate)
	if len(candidateKeys) == 0 {
		return nil
	}

	for _, f := range others {
		if !f.Scheduled() {
			continue
		}
		gap := candidate.KickoffAt.Sub(f.KickoffAt)
		if gap < 0 {
			gap = -gap
		}
		if gap > v.window {
			continue
		}
		for _, a := range f.Assignments() {
			key := identity.KeyFor(a.Official)
			if _, shared := candidateKeys[key]; shared {
				return &Error{
					Kind:        KindOfficialConflict,
					FixtureID:   f.ID,
					OfficialKey: key,
					KickoffAt:   f.KickoffAt,
				}
			}
		}
	}
	return nil
}

func officialKeys(f model.Fixture) map[string]struct{} {
	keys := make(map[string]struct{}, len(model.Roles))
	for _, a := range f.Assignments() {
		keys[identity.KeyFor(a.Official)] = struct{}{}
	}
	return keys
}

func sameTeams(a, b model.Fixture) bool {
	return a.HomeTeam == b.HomeTeam && a.AwayTeam == b.AwayTeam
}

func sharesTeam(a, b model.Fixture) bool {
	return a.HomeTeam == b.HomeTeam || a.HomeTeam == b.AwayTeam ||
		a.AwayTeam == b.HomeTeam || a.AwayTeam == b.AwayTeam
}

func sameKickoff(a, b model.Fixture) bool {
	return a.KickoffAt.Equal(b.KickoffAt)
}
