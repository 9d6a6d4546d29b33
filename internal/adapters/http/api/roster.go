// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/touchline/touchline/internal/domain/roster"
)

// Default cap on the roster query range, roughly one quarter.
const defaultMaxRosterRangeDays = 92

// RosterDependencies defines the interface for roster aggregation.
type RosterDependencies interface {
	Roster(ctx context.Context, from, to time.Time) map[string]roster.Day
}

// RosterHandler handles roster requests.
type RosterHandler struct {
	deps         RosterDependencies
	maxRangeDays int
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps RosterDependencies, maxRangeDays int) *RosterHandler {
	if maxRangeDays < 1 {
		maxRangeDays = defaultMaxRosterRangeDays
	}
	return &RosterHandler{
		deps:         deps,
		maxRangeDays: maxRangeDays,
	}
}

// HandleGetRoster handles GET /roster?from=YYYY-MM-DD&to=YYYY-MM-DD
// requests. Both bounds are inclusive calendar days.
func (h *RosterHandler) HandleGetRoster(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_roster"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	from, err := time.Parse(roster.DateKeyLayout, r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	to, err := time.Parse(roster.DateKeyLayout, r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if to.Before(from) {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if int(to.Sub(from).Hours()/24)+1 > h.maxRangeDays {
		writeError(w, http.StatusBadRequest, "range_exceeded", ErrRangeTooWide)
		return
	}

	writeJSON(w, http.StatusOK, h.deps.Roster(r.Context(), from, to))
}
