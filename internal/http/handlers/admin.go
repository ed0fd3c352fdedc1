package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/board"
	"github.com/preston-bernstein/nba-props-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-props-service/internal/logging"
)

// Reloader rebuilds the board on demand.
type Reloader interface {
	Reload(ctx context.Context) (*board.Board, error)
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	reloader Reloader
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler; it returns nil when no token is
// configured so the routes are never mounted unprotected.
func NewAdminHandler(reloader Reloader, token string, logger *slog.Logger) *AdminHandler {
	if token == "" {
		return nil
	}
	return &AdminHandler{
		reloader: reloader,
		token:    token,
		logger:   logger,
	}
}

type reloadResponse struct {
	Status   string    `json:"status"`
	BoardID  string    `json:"boardId"`
	Players  int       `json:"players"`
	Games    int       `json:"games"`
	MappedAt time.Time `json:"mappedAt"`
}

// Reload fetches fresh data and swaps in a new board.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized", nil,
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.reloader == nil {
		writeError(w, r, http.StatusServiceUnavailable, "reload not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	b, err := h.reloader.Reload(r.Context())
	if err != nil {
		logging.Warn(logger, "admin reload failed", err)
		writeError(w, r, http.StatusBadGateway, "failed to reload data", logger)
		return
	}
	if b == nil {
		writeError(w, r, http.StatusServiceUnavailable, msgNotReady, logger)
		return
	}

	writeJSON(w, http.StatusOK, reloadResponse{
		Status:   "ok",
		BoardID:  b.ID,
		Players:  len(b.Players),
		Games:    len(b.Games),
		MappedAt: b.MappedAt,
	}, logger)
	logging.Info(logger, "admin reload complete",
		slog.String(logging.FieldBoardID, b.ID),
		slog.Int(logging.FieldCount, len(b.Players)),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got, ok := requestutil.BearerToken(r)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
