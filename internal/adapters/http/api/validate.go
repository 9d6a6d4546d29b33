// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/touchline/touchline/internal/domain/model"
	"github.com/touchline/touchline/internal/domain/types"
)

// ValidateDependencies defines the interface for dry-run validation.
type ValidateDependencies interface {
	ValidateFixture(ctx context.Context, f model.Fixture, excludeID string) types.ValidationResult
}

// ValidateHandler handles dry-run validation requests.
type ValidateHandler struct {
	deps ValidateDependencies
}

// NewValidateHandler creates a new validate handler.
func NewValidateHandler(deps ValidateDependencies) *ValidateHandler {
	return &ValidateHandler{deps: deps}
}

// HandleValidate handles POST /fixtures/validate requests. Nothing is
// stored; the response reports the first applicable conflict, if any.
func (h *ValidateHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req fixtureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	result := h.deps.ValidateFixture(r.Context(), req.toModel(), req.ExcludeID)
	writeJSON(w, http.StatusOK, result)
}
