package config

import "time"

// SnapshotConfig selects where loaded boards are persisted for cold starts.
type SnapshotConfig struct {
	Backend       string        `env:"SNAPSHOT_BACKEND"        envDefault:"fs"`
	Folder        string        `env:"SNAPSHOT_FOLDER"         envDefault:"data/snapshots"`
	RetentionDays int           `env:"SNAPSHOT_RETENTION_DAYS" envDefault:"7"`
	RedisURL      string        `env:"REDIS_URL"               envDefault:"redis://localhost:6379/0"`
	TTL           time.Duration `env:"SNAPSHOT_TTL"            envDefault:"168h"`
}

func (c *SnapshotConfig) normalize() {
	c.Backend = normalizeKey(c.Backend)
	if !oneOf(c.Backend, SnapshotBackendFS, SnapshotBackendRedis, SnapshotBackendNone) {
		c.Backend = SnapshotBackendFS
	}
	if c.RetentionDays <= 0 {
		c.RetentionDays = defaultSnapshotDays
	}
	if c.TTL <= 0 {
		c.TTL = defaultSnapshotTTL
	}
}
