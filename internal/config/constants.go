package config

import "time"

const (
	ProviderFixture = "fixture"
	ProviderFeed    = "feed"
	ProviderFile    = "file"

	SnapshotBackendFS    = "fs"
	SnapshotBackendRedis = "redis"
	SnapshotBackendNone  = "none"

	// Fallbacks applied when a parsed value is out of range.
	defaultPort          = "4000"
	defaultFeedTimeout   = 10 * time.Second
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 200 * time.Millisecond
	defaultMetricsPort   = "9090"
	defaultSnapshotDays  = 7
	defaultSnapshotTTL   = 7 * 24 * time.Hour
	defaultLocale        = "pt-PT"
)
