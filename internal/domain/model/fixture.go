// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"
)

// Role identifies one of the three official slots on a fixture.
type Role string

// Role slots in check order.
const (
	RoleMain       Role = "main"
	RoleAssistant1 Role = "assistant_1"
	RoleAssistant2 Role = "assistant_2"
)

// Roles lists the slots in slot order.
var Roles = []Role{RoleMain, RoleAssistant1, RoleAssistant2} //nolint:gochecknoglobals // fixed slot order shared across packages

// Status is the displayed lifecycle state of a fixture.
type Status string

// Lifecycle states. Live, Ended and an explicit NotStarted are manual
// operator overrides; Upcoming is always derived from time.
const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusLive       Status = "LIVE"
	StatusEnded      Status = "ENDED"
	StatusUpcoming   Status = "UPCOMING"
)

// OfficialRef is an official occupying a role slot. Assignment records may
// carry only a free-text name without a stable identifier.
type OfficialRef struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Empty reports whether the slot holds no official.
func (o OfficialRef) Empty() bool {
	return o.ID == "" && strings.TrimSpace(o.Name) == ""
}

// Official is a registered match official.
type Official struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// Fixture represents a scheduled match with up to three official slots.
type Fixture struct {
	ID        string    `json:"id"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	Venue     string    `json:"venue"`
	League    string    `json:"league,omitempty"`
	KickoffAt time.Time `json:"kickoff_at"`

	// Override is an operator-set manual status; empty means time-derived.
	Override Status `json:"override,omitempty"`

	Main       OfficialRef `json:"main,omitempty"`
	Assistant1 OfficialRef `json:"assistant_1,omitempty"`
	Assistant2 OfficialRef `json:"assistant_2,omitempty"`
}

// Assignment pairs a role slot with the official holding it.
type Assignment struct {
	Role     Role
	Official OfficialRef
}

// Assignments returns the populated role slots in slot order.
func (f Fixture) Assignments() []Assignment {
	out := make([]Assignment, 0, len(Roles))
	for _, a := range []Assignment{
		{Role: RoleMain, Official: f.Main},
		{Role: RoleAssistant1, Official: f.Assistant1},
		{Role: RoleAssistant2, Official: f.Assistant2},
	} {
		if !a.Official.Empty() {
			out = append(out, a)
		}
	}
	return out
}

// Scheduled reports whether the fixture carries a usable kickoff time.
// Records synced from the document store occasionally arrive without one.
func (f Fixture) Scheduled() bool {
	return !f.KickoffAt.IsZero()
}
