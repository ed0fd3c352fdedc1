package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-props-service/internal/config"
	"github.com/preston-bernstein/nba-props-service/internal/logging"
	"github.com/preston-bernstein/nba-props-service/internal/snapshots"
)

type snapshotComponents struct {
	store   snapshots.Store
	backend string
	close   func() error
}

// buildSnapshots picks the snapshot backend. A redis URL that does not parse
// disables snapshots rather than failing startup.
func buildSnapshots(cfg config.Config, logger *slog.Logger) snapshotComponents {
	switch cfg.Snapshots.Backend {
	case config.SnapshotBackendNone:
		return snapshotComponents{backend: config.SnapshotBackendNone}
	case config.SnapshotBackendRedis:
		rs, err := snapshots.NewRedisStoreFromURL(cfg.Snapshots.RedisURL, cfg.Snapshots.TTL)
		if err != nil {
			logging.Warn(logger, "redis snapshots unavailable, continuing without snapshots", err)
			return snapshotComponents{backend: config.SnapshotBackendNone}
		}
		return snapshotComponents{store: rs, backend: config.SnapshotBackendRedis, close: rs.Close}
	default:
		return snapshotComponents{
			store:   snapshots.NewFSStore(cfg.Snapshots.Folder, cfg.Snapshots.RetentionDays),
			backend: config.SnapshotBackendFS,
		}
	}
}
