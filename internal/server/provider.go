package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-props-service/internal/config"
	"github.com/preston-bernstein/nba-props-service/internal/providers"
	"github.com/preston-bernstein/nba-props-service/internal/providers/feed"
	"github.com/preston-bernstein/nba-props-service/internal/providers/file"
	"github.com/preston-bernstein/nba-props-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case config.ProviderFixture, "":
		return fixture.New()
	case config.ProviderFeed:
		return feed.NewClient(feed.Config{
			StatsURL:    cfg.Feed.StatsURL,
			ScheduleURL: cfg.Feed.ScheduleURL,
			Timeout:     cfg.Feed.Timeout,
		})
	case config.ProviderFile:
		return file.New(cfg.File.StatsPath, cfg.File.SchedulePath)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
