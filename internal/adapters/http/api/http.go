// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/touchline/touchline/internal/adapters/repository"
	"github.com/touchline/touchline/internal/domain/activity"
	"github.com/touchline/touchline/internal/domain/model"
	"github.com/touchline/touchline/internal/domain/roster"
	"github.com/touchline/touchline/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	CreateFixture(ctx context.Context, f model.Fixture) (model.Fixture, error)
	UpdateFixture(ctx context.Context, id string, f model.Fixture) (model.Fixture, error)
	DeleteFixture(ctx context.Context, id string) error
	GetFixture(ctx context.Context, id string) (model.Fixture, error)
	ListFixtures(ctx context.Context) []model.Fixture
	ValidateFixture(ctx context.Context, f model.Fixture, excludeID string) types.ValidationResult
	FixtureStatus(ctx context.Context, id string, at time.Time) (types.StatusView, error)
	ActivityBoard(ctx context.Context) []activity.Entry
	RecomputeActivityBoard(ctx context.Context) []activity.Entry
	Roster(ctx context.Context, from, to time.Time) map[string]roster.Day
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	fixturesHandler *FixturesHandler
	validateHandler *ValidateHandler
	activityHandler *ActivityHandler
	rosterHandler   *RosterHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxRosterRangeDays int) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		fixturesHandler: NewFixturesHandler(deps),
		validateHandler: NewValidateHandler(deps),
		activityHandler: NewActivityHandler(deps),
		rosterHandler:   NewRosterHandler(deps, maxRosterRangeDays),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/fixtures/validate", MetricsMiddleware(s.validateHandler.HandleValidate, "validate"))
	mux.HandleFunc("/fixtures", MetricsMiddleware(s.fixturesHandler.HandleFixtures, "fixtures"))
	mux.HandleFunc("/fixtures/", MetricsMiddleware(s.fixturesHandler.HandleFixtureByID, "fixture"))
	mux.HandleFunc("/activity", MetricsMiddleware(s.activityHandler.HandleGetActivity, "activity"))
	mux.HandleFunc("/roster", MetricsMiddleware(s.rosterHandler.HandleGetRoster, "roster"))
}

// officialPayload mirrors one role slot in fixture requests.
type officialPayload struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// fixtureRequest mirrors the JSON schema for fixture writes.
type fixtureRequest struct {
	HomeTeam   string           `json:"home_team"`
	AwayTeam   string           `json:"away_team"`
	Venue      string           `json:"venue"`
	League     string           `json:"league,omitempty"`
	KickoffAt  string           `json:"kickoff_at"`
	Override   string           `json:"override,omitempty"`
	Main       *officialPayload `json:"main,omitempty"`
	Assistant1 *officialPayload `json:"assistant_1,omitempty"`
	Assistant2 *officialPayload `json:"assistant_2,omitempty"`

	// ExcludeID is honored only by the dry-run validate endpoint.
	ExcludeID string `json:"exclude_id,omitempty"`
}

func (f fixtureRequest) validate() error {
	switch {
	case strings.TrimSpace(f.HomeTeam) == "":
		return errors.New("missing home_team")
	case strings.TrimSpace(f.AwayTeam) == "":
		return errors.New("missing away_team")
	case strings.TrimSpace(f.Venue) == "":
		return errors.New("missing venue")
	case strings.TrimSpace(f.KickoffAt) == "":
		return errors.New("missing kickoff_at")
	}
	if _, err := time.Parse(time.RFC3339, f.KickoffAt); err != nil {
		return errors.New("invalid kickoff_at; must be RFC3339")
	}
	switch model.Status(f.Override) {
	case "", model.StatusLive, model.StatusEnded, model.StatusNotStarted:
	default:
		return errors.New("invalid override; must be LIVE, ENDED or NOT_STARTED")
	}
	return nil
}

func (f fixtureRequest) toModel() model.Fixture {
	kickoff, _ := time.Parse(time.RFC3339, f.KickoffAt)
	m := model.Fixture{
		HomeTeam:  f.HomeTeam,
		AwayTeam:  f.AwayTeam,
		Venue:     f.Venue,
		League:    f.League,
		KickoffAt: kickoff,
		Override:  model.Status(f.Override),
	}
	if f.Main != nil {
		m.Main = model.OfficialRef(*f.Main)
	}
	if f.Assistant1 != nil {
		m.Assistant1 = model.OfficialRef(*f.Assistant1)
	}
	if f.Assistant2 != nil {
		m.Assistant2 = model.OfficialRef(*f.Assistant2)
	}
	return m
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// conflictResponse carries the structured conflict payload on 409s.
type conflictResponse struct {
	Code     string              `json:"code"`
	Message  string              `json:"message"`
	Conflict *types.ConflictView `json:"conflict"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound allows the API to translate upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
