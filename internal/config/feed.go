package config

import "time"

// FeedConfig controls the HTTP props feed.
type FeedConfig struct {
	StatsURL    string        `env:"FEED_STATS_URL"    envDefault:"https://raw.githubusercontent.com/zurkstk/projetonba/refs/heads/main/stats.json"`
	ScheduleURL string        `env:"FEED_SCHEDULE_URL" envDefault:"https://raw.githubusercontent.com/zurkstk/projetonba/refs/heads/main/schedule.json"`
	Timeout     time.Duration `env:"FEED_TIMEOUT"      envDefault:"10s"`
	// MinInterval spaces upstream fetches; 0 disables throttling.
	MinInterval time.Duration `env:"FEED_MIN_INTERVAL" envDefault:"0s"`
}

// FileConfig points the file provider at local payloads.
type FileConfig struct {
	StatsPath    string `env:"FILE_STATS_PATH"    envDefault:"data/stats.json"`
	SchedulePath string `env:"FILE_SCHEDULE_PATH" envDefault:"data/schedule.json"`
}

// RetryConfig controls provider retries.
type RetryConfig struct {
	MaxAttempts int           `env:"RETRY_MAX_ATTEMPTS" envDefault:"3"`
	Backoff     time.Duration `env:"RETRY_BACKOFF"      envDefault:"200ms"`
}

func (c *FeedConfig) normalize() {
	if c.Timeout <= 0 {
		c.Timeout = defaultFeedTimeout
	}
	if c.MinInterval < 0 {
		c.MinInterval = 0
	}
}

func (c *RetryConfig) normalize() {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultRetryAttempts
	}
	if c.Backoff <= 0 {
		c.Backoff = defaultRetryBackoff
	}
}
