package config

import (
	"strings"
	"time"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port     string `env:"PORT"     envDefault:"4000"`
	Provider string `env:"PROVIDER" envDefault:"fixture"`
	// RefreshInterval reloads the board periodically; 0 loads once at startup.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"0s"`
	AdminToken      string        `env:"ADMIN_TOKEN"`
	Version         string        `env:"SERVICE_VERSION" envDefault:"dev"`

	Log       LogConfig
	Display   DisplayConfig
	HTTP      HTTPConfig
	Feed      FeedConfig
	File      FileConfig
	Retry     RetryConfig
	Metrics   MetricsConfig
	Snapshots SnapshotConfig
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// DisplayConfig controls how dates and signed numbers are rendered.
type DisplayConfig struct {
	Locale   string `env:"DISPLAY_LOCALE"   envDefault:"pt-PT"`
	Timezone string `env:"DISPLAY_TIMEZONE" envDefault:"Europe/Lisbon"`
}

// HTTPConfig holds browser-facing settings.
type HTTPConfig struct {
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads configuration from environment variables. Malformed values are
// reported as errors; well-formed but out-of-range values fall back to defaults.
func Load() (Config, error) {
	var cfg Config
	if err := parseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if strings.TrimSpace(c.Port) == "" {
		c.Port = defaultPort
	}
	c.Provider = normalizeKey(c.Provider)
	if c.RefreshInterval < 0 {
		c.RefreshInterval = 0
	}
	if strings.TrimSpace(c.Display.Locale) == "" {
		c.Display.Locale = defaultLocale
	}
	origins := c.HTTP.CORSOrigins[:0]
	for _, o := range c.HTTP.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.HTTP.CORSOrigins = origins

	c.Feed.normalize()
	c.Retry.normalize()
	c.Metrics.normalize()
	c.Snapshots.normalize()
}

// KnownProvider reports whether Provider names a supported data source.
func (c Config) KnownProvider() bool {
	return oneOf(c.Provider, ProviderFixture, ProviderFeed, ProviderFile)
}
