// Package types contains common read shapes shared across the application
package types

import "time"

// ValidationResult is the outcome of a fixture validation.
type ValidationResult struct {
	OK       bool          `json:"ok"`
	Conflict *ConflictView `json:"conflict,omitempty"`
}

// ConflictView is the wire shape of a scheduling conflict.
type ConflictView struct {
	Kind        string     `json:"kind"`
	FixtureID   string     `json:"fixture_id,omitempty"`
	OfficialKey string     `json:"official_key,omitempty"`
	KickoffAt   *time.Time `json:"kickoff_at,omitempty"`
}

// StatusView is the derived lifecycle state of a fixture at an instant.
type StatusView struct {
	FixtureID string    `json:"fixture_id"`
	Status    string    `json:"status"`
	At        time.Time `json:"at"`
}
