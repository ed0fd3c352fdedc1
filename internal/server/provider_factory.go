package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-props-service/internal/config"
	"github.com/preston-bernstein/nba-props-service/internal/metrics"
	"github.com/preston-bernstein/nba-props-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (throttle + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	return f.wrap(cfg, base)
}

func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	limited := providers.NewRateLimitedProvider(base, cfg.Feed.MinInterval, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, providerName(cfg.Provider, base), cfg.Retry.MaxAttempts, cfg.Retry.Backoff)
}
