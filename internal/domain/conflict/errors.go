package conflict

import (
	"errors"
	"fmt"
	"time"
)

// Kind enumerates the closed set of conflict categories.
type Kind string

// Conflict kinds, in check order.
const (
	KindDuplicateRoleAssignment      Kind = "DUPLICATE_ROLE_ASSIGNMENT"
	KindDuplicateMatchSameVenueTime  Kind = "DUPLICATE_MATCH_SAME_VENUE_TIME"
	KindDuplicateMatchDifferentVenue Kind = "DUPLICATE_MATCH_DIFFERENT_VENUE"
	KindDuplicateMatchSameTeam       Kind = "DUPLICATE_MATCH_SAME_TEAM"
	KindOfficialConflict             Kind = "OFFICIAL_CONFLICT"
)

// Error is the typed conflict returned by Validate. It carries enough data
// for callers to build a user-facing message; this package never formats one.
type Error struct {
	Kind Kind

	// FixtureID references the existing fixture the candidate collides
	// with. Empty for role-uniqueness failures on the candidate itself.
	FixtureID string

	// OfficialKey is the canonical identity key of the colliding official.
	// Set for role-uniqueness and double-booking conflicts.
	OfficialKey string

	// KickoffAt is the conflicting fixture's kickoff time.
	// Set for double-booking conflicts.
	KickoffAt time.Time
}

func (e *Error) Error() string {
	if e.OfficialKey != "" {
		return fmt.Sprintf("%s: official %q", e.Kind, e.OfficialKey)
	}
	if e.FixtureID != "" {
		return fmt.Sprintf("%s: fixture %s", e.Kind, e.FixtureID)
	}
	return string(e.Kind)
}

// Is reports whether err is a conflict error of the given kind.
func Is(err error, kind Kind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == kind
}

// AsError extracts the typed conflict from err, if any.
func AsError(err error) (*Error, bool) {
	var ce *Error
	ok := errors.As(err, &ce)
	return ce, ok
}
