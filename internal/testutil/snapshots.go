package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/snapshots"
)

// NewTempFSStore returns a filesystem snapshot store rooted in a temp dir.
func NewTempFSStore(t *testing.T, retention int) *snapshots.FSStore {
	t.Helper()
	return snapshots.NewFSStore(t.TempDir(), retention)
}

// SaveSampleSnapshot persists SampleBoard(now) and returns the saved snapshot.
func SaveSampleSnapshot(t *testing.T, s snapshots.Store, now time.Time) snapshots.Snapshot {
	t.Helper()
	snap := snapshots.FromBoard(SampleBoard(now))
	if err := s.Save(context.Background(), snap); err != nil {
		t.Fatalf("failed to save snapshot: %v", err)
	}
	return snap
}
