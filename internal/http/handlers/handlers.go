package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nba-props-service/internal/app/games"
	"github.com/preston-bernstein/nba-props-service/internal/app/players"
	"github.com/preston-bernstein/nba-props-service/internal/app/teams"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
	domainteams "github.com/preston-bernstein/nba-props-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-props-service/internal/loader"
	"github.com/preston-bernstein/nba-props-service/internal/logging"
	"github.com/preston-bernstein/nba-props-service/internal/metrics"
	"github.com/preston-bernstein/nba-props-service/internal/ranking"
)

const msgNotReady = "data not loaded yet"

// Handler wires HTTP routes to the app services.
type Handler struct {
	players  *players.Service
	teams    *teams.Service
	games    *games.Service
	logger   *slog.Logger
	metrics  *metrics.Recorder
	statusFn func() loader.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case /ready always succeeds.
func NewHandler(playerSvc *players.Service, teamSvc *teams.Service, gameSvc *games.Service, logger *slog.Logger, recorder *metrics.Recorder, statusFn func() loader.Status) *Handler {
	return &Handler{
		players:  playerSvc,
		teams:    teamSvc,
		games:    gameSvc,
		logger:   logger,
		metrics:  recorder,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

type readyResponse struct {
	Status string         `json:"status"`
	Loader *loader.Status `json:"loader,omitempty"`
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, readyResponse{Status: "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, readyResponse{Status: "ready", Loader: &status}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Players lists players filtered by search and team and ordered by sort.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	logger := loggerFromContext(r, h.logger)

	spec := ranking.DefaultSort
	if raw := q.Get("sort"); raw != "" {
		parsed, err := ranking.ParseSortSpec(raw)
		if err != nil {
			logging.Warn(logger, "rejected sort", err, slog.String(logging.FieldSort, raw))
			writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
			return
		}
		spec = parsed
	}
	filter := ranking.Filter{
		Search: q.Get("search"),
		Team:   q.Get("team"),
	}

	result, err := h.players.Query(filter, spec)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if h.metrics != nil {
		h.metrics.RecordQuery(spec.Mode.String())
	}
	writeJSON(w, nethttp.StatusOK, result, logger)
}

// Player returns the detail view of one player.
func (h *Handler) Player(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := chi.URLParam(r, "id")
	var err error
	// chi routes on RawPath when set, leaving params escaped.
	if r.URL.RawPath != "" {
		id, err = url.PathUnescape(id)
	}
	if err != nil || strings.TrimSpace(id) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	detail, err := h.players.Detail(props.PlayerID(id))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, detail, h.logger)
}

type teamsResponse struct {
	Count int                `json:"count"`
	Teams []domainteams.Team `json:"teams"`
}

// Teams lists the distinct teams of the loaded players with their colors.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	list, err := h.teams.Teams()
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, teamsResponse{Count: len(list), Teams: list}, h.logger)
}

// Schedule returns the loaded schedule.
func (h *Handler) Schedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	resp, err := h.games.Schedule()
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// NextGames returns each team's mapped next game.
func (h *Handler) NextGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	next, err := h.games.NextByTeam()
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, next, h.logger)
}

type sortsResponse struct {
	Default string               `json:"default"`
	Sorts   []ranking.SortOption `json:"sorts"`
}

// Sorts lists every accepted sort key.
func (h *Handler) Sorts(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, sortsResponse{
		Default: ranking.DefaultSort.String(),
		Sorts:   ranking.Options(),
	}, h.logger)
}

// NotFound renders unknown routes as JSON.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed renders wrong-method requests as JSON.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) writeServiceError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	switch {
	case errors.Is(err, players.ErrNotReady), errors.Is(err, teams.ErrNotReady), errors.Is(err, games.ErrNotReady):
		writeError(w, r, nethttp.StatusServiceUnavailable, msgNotReady, logger)
	case errors.Is(err, players.ErrNotFound):
		writeError(w, r, nethttp.StatusNotFound, "player not found", logger)
	case errors.Is(err, ranking.ErrInvalidSort), errors.Is(err, ranking.ErrUnknownMetric):
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
	default:
		logging.Error(logger, "request failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", logger)
	}
}
