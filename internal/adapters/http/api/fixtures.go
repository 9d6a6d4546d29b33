// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/touchline/touchline/internal/domain/conflict"
	"github.com/touchline/touchline/internal/domain/model"
	"github.com/touchline/touchline/internal/domain/types"
)

// FixtureDependencies defines the interface for fixture operations.
type FixtureDependencies interface {
	CreateFixture(ctx context.Context, f model.Fixture) (model.Fixture, error)
	UpdateFixture(ctx context.Context, id string, f model.Fixture) (model.Fixture, error)
	DeleteFixture(ctx context.Context, id string) error
	GetFixture(ctx context.Context, id string) (model.Fixture, error)
	ListFixtures(ctx context.Context) []model.Fixture
	FixtureStatus(ctx context.Context, id string, at time.Time) (types.StatusView, error)
}

// FixturesHandler handles fixture CRUD and status requests.
type FixturesHandler struct {
	deps FixtureDependencies
}

// NewFixturesHandler creates a new fixtures handler.
func NewFixturesHandler(deps FixtureDependencies) *FixturesHandler {
	return &FixturesHandler{deps: deps}
}

// HandleFixtures handles the /fixtures collection:
// GET lists the snapshot, POST validates and creates.
func (h *FixturesHandler) HandleFixtures(w http.ResponseWriter, r *http.Request) {
	const op = "api.fixtures"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.ListFixtures(r.Context()))
	case http.MethodPost:
		var req fixtureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		stored, err := h.deps.CreateFixture(r.Context(), req.toModel())
		if err != nil {
			writeFixtureError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, stored)
	default:
		http.NotFound(w, r)
	}
}

// HandleFixtureByID handles /fixtures/{id} and /fixtures/{id}/status.
func (h *FixturesHandler) HandleFixtureByID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/fixtures/")
	parts := strings.Split(path, "/")
	switch {
	case len(parts) == 1 && parts[0] != "":
		h.handleItem(w, r, parts[0])
	case len(parts) == 2 && parts[0] != "" && parts[1] == "status":
		h.handleStatus(w, r, parts[0])
	default:
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
	}
}

func (h *FixturesHandler) handleItem(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		f, err := h.deps.GetFixture(r.Context(), id)
		if err != nil {
			writeFixtureError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, f)
	case http.MethodPut:
		var req fixtureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		stored, err := h.deps.UpdateFixture(r.Context(), id, req.toModel())
		if err != nil {
			writeFixtureError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stored)
	case http.MethodDelete:
		if err := h.deps.DeleteFixture(r.Context(), id); err != nil {
			writeFixtureError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}

// handleStatus serves the derived lifecycle state. An optional ?at=RFC3339
// query pins the evaluation instant; the default is server time.
func (h *FixturesHandler) handleStatus(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	var at time.Time
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		at = parsed
	}
	view, err := h.deps.FixtureStatus(r.Context(), id, at)
	if err != nil {
		writeFixtureError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// writeFixtureError translates service errors: typed conflicts become 409
// with a structured payload, unknown fixtures 404, the rest 500.
func writeFixtureError(w http.ResponseWriter, err error) {
	if ce, ok := conflict.AsError(err); ok {
		v := &types.ConflictView{
			Kind:        string(ce.Kind),
			FixtureID:   ce.FixtureID,
			OfficialKey: ce.OfficialKey,
		}
		if !ce.KickoffAt.IsZero() {
			t := ce.KickoffAt
			v.KickoffAt = &t
		}
		writeJSON(w, http.StatusConflict, conflictResponse{
			Code:     "conflict",
			Message:  ce.Error(),
			Conflict: v,
		})
		return
	}
	if isNotFound(err) {
		writeError(w, http.StatusNotFound, "not_found", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", err)
}
