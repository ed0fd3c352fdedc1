package server

import (
	"github.com/preston-bernstein/nba-props-service/internal/config"
	"github.com/preston-bernstein/nba-props-service/internal/providers"
	"github.com/preston-bernstein/nba-props-service/internal/providers/feed"
	"github.com/preston-bernstein/nba-props-service/internal/providers/file"
	"github.com/preston-bernstein/nba-props-service/internal/providers/fixture"
)

// providerName labels metrics, logs and boards. The configured name wins when
// it is one we know; otherwise it is derived from the concrete provider.
func providerName(raw string, provider providers.DataProvider) string {
	switch raw {
	case config.ProviderFixture, config.ProviderFeed, config.ProviderFile:
		return raw
	}
	switch provider.(type) {
	case *fixture.Provider:
		return config.ProviderFixture
	case *feed.Client:
		return config.ProviderFeed
	case *file.Provider:
		return config.ProviderFile
	case nil:
		return "provider"
	default:
		return "custom"
	}
}
