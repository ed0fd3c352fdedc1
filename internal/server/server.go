package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-props-service/internal/app/games"
	"github.com/preston-bernstein/nba-props-service/internal/app/players"
	"github.com/preston-bernstein/nba-props-service/internal/app/teams"
	"github.com/preston-bernstein/nba-props-service/internal/config"
	httpserver "github.com/preston-bernstein/nba-props-service/internal/http"
	"github.com/preston-bernstein/nba-props-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-props-service/internal/loader"
	"github.com/preston-bernstein/nba-props-service/internal/logging"
	"github.com/preston-bernstein/nba-props-service/internal/metrics"
	"github.com/preston-bernstein/nba-props-service/internal/providers"
	"github.com/preston-bernstein/nba-props-service/internal/ranking"
	"github.com/preston-bernstein/nba-props-service/internal/store"
	"github.com/preston-bernstein/nba-props-service/internal/timeutil"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	playersService *players.Service
	teamsService   *teams.Service
	gamesService   *games.Service
	httpServer     httpServer
	metricsServer  httpServer
	loader         Loader
	metricsStop    func(context.Context) error
	snapshotsClose func() error
}

// New constructs a server with the configured provider and loader wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	memoryStore, playerSvc, teamSvc, gameSvc := buildServices(cfg)
	snaps := buildSnapshots(cfg, logger)
	ldr := loader.New(provider, memoryStore, snaps.store, logger, recorder, loader.Config{
		Interval:        cfg.RefreshInterval,
		Source:          providerName(cfg.Provider, provider),
		SnapshotBackend: snaps.backend,
	})
	httpSrv := buildHTTPServer(cfg, playerSvc, teamSvc, gameSvc, logger, recorder, ldr)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          memoryStore,
		playersService: playerSvc,
		teamsService:   teamSvc,
		gamesService:   gameSvc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		loader:         ldr,
		metricsStop:    metricsShutdown,
		snapshotsClose: snaps.close,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, ldr Loader) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		loader:     ldr,
	}
}

func buildServices(cfg config.Config) (*store.MemoryStore, *players.Service, *teams.Service, *games.Service) {
	memoryStore := store.NewMemoryStore()
	loc := timeutil.ResolveLocation(cfg.Display.Timezone)
	formatter := ranking.NewFormatter(cfg.Display.Locale)
	return memoryStore,
		players.NewService(memoryStore, loc, formatter),
		teams.NewService(memoryStore),
		games.NewService(memoryStore)
}

// reloaderFor exposes the loader to the admin endpoint when it supports on-demand reloads.
func reloaderFor(ldr Loader) handlers.Reloader {
	if r, ok := ldr.(handlers.Reloader); ok {
		return r
	}
	return nil
}

func buildHTTPServer(cfg config.Config, playerSvc *players.Service, teamSvc *teams.Service, gameSvc *games.Service, logger *slog.Logger, recorder *metrics.Recorder, ldr Loader) httpServer {
	var statusFn func() loader.Status
	if ldr != nil {
		statusFn = ldr.Status
	}

	handler := handlers.NewHandler(playerSvc, teamSvc, gameSvc, logger, recorder, statusFn)
	admin := handlers.NewAdminHandler(reloaderFor(ldr), cfg.AdminToken, logger)
	router := httpserver.NewRouter(httpserver.RouterConfig{
		Handler:     handler,
		Admin:       admin,
		Logger:      logger,
		Metrics:     recorder,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the loader and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.loader.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.loader.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop loader", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.snapshotsClose != nil {
		if err := s.snapshotsClose(); err != nil && s.logger != nil {
			s.logger.Warn("snapshot store close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Store exposes the board store (useful for tests).
func (s *Server) Store() *store.MemoryStore {
	return s.store
}
