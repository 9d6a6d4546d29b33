// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/touchline/touchline/internal/domain/activity"
)

// ActivityDependencies defines the interface for activity board reads.
type ActivityDependencies interface {
	ActivityBoard(ctx context.Context) []activity.Entry
	RecomputeActivityBoard(ctx context.Context) []activity.Entry
}

// ActivityHandler handles activity board requests.
type ActivityHandler struct {
	deps ActivityDependencies
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(deps ActivityDependencies) *ActivityHandler {
	return &ActivityHandler{deps: deps}
}

// HandleGetActivity handles GET /activity?top=N requests. The board is
// served from the worker-maintained cache; ?recompute=1 forces a
// synchronous rebuild first.
func (h *ActivityHandler) HandleGetActivity(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_activity"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	var entries []activity.Entry
	if r.URL.Query().Get("recompute") == "1" {
		entries = h.deps.RecomputeActivityBoard(r.Context())
	} else {
		entries = h.deps.ActivityBoard(r.Context())
	}

	if topStr := r.URL.Query().Get("top"); topStr != "" {
		top, err := strconv.Atoi(topStr)
		if err != nil || top < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if top < len(entries) {
			entries = entries[:top]
		}
	}

	writeJSON(w, http.StatusOK, entries)
}
