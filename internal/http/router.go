package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/nba-props-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-props-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-props-service/internal/metrics"
)

// RouterConfig collects what NewRouter mounts.
type RouterConfig struct {
	Handler *handlers.Handler
	// Admin is mounted under /admin when non-nil.
	Admin       *handlers.AdminHandler
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	h := cfg.Handler
	r := chi.NewRouter()

	r.Use(middleware.Logging(cfg.Logger, cfg.Metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins(cfg.CORSOrigins),
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
		MaxAge:         300,
	}))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/players", h.Players)
		r.Get("/players/{id}", h.Player)
		r.Get("/teams", h.Teams)
		r.Get("/schedule", h.Schedule)
		r.Get("/schedule/next", h.NextGames)
		r.Get("/sorts", h.Sorts)
	})

	if cfg.Admin != nil {
		r.Post("/admin/reload", cfg.Admin.Reload)
	}
	return r
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
