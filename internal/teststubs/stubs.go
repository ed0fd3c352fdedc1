package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
	"github.com/preston-bernstein/nba-props-service/internal/snapshots"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	mu          sync.Mutex
	Players     []props.Player
	Schedule    []games.Game
	PlayersErr  error
	ScheduleErr error
	Calls       atomic.Int32
	Notify      chan struct{}
}

// SetPlayersErr swaps the player error while a loader may be running.
func (s *StubProvider) SetPlayersErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PlayersErr = err
}

// FetchPlayers returns the configured players and error while tracking calls.
func (s *StubProvider) FetchPlayers(ctx context.Context) ([]props.Player, error) {
	_ = ctx
	s.Calls.Add(1)
	s.notify()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Players, s.PlayersErr
}

// FetchSchedule returns the configured schedule and error.
func (s *StubProvider) FetchSchedule(ctx context.Context) ([]games.Game, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Schedule, s.ScheduleErr
}

func (s *StubProvider) notify() {
	if s.Notify == nil {
		return
	}
	select {
	case <-s.Notify:
	default:
		close(s.Notify)
	}
}

// StubSnapshotStore is an in-memory snapshots.Store.
type StubSnapshotStore struct {
	mu        sync.Mutex
	Snapshots map[string]snapshots.Snapshot // keyed by date
	SaveErr   error
	LatestErr error
	saves     int
}

// Save records the snapshot under its date.
func (s *StubSnapshotStore) Save(ctx context.Context, snap snapshots.Snapshot) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if s.Snapshots == nil {
		s.Snapshots = make(map[string]snapshots.Snapshot)
	}
	s.Snapshots[snap.Date] = snap
	s.saves++
	return nil
}

// Load returns the snapshot for date or snapshots.ErrNotFound.
func (s *StubSnapshotStore) Load(ctx context.Context, date string) (snapshots.Snapshot, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.Snapshots[date]
	if !ok {
		return snapshots.Snapshot{}, snapshots.ErrNotFound
	}
	return snap, nil
}

// Latest returns the snapshot with the greatest date.
func (s *StubSnapshotStore) Latest(ctx context.Context) (snapshots.Snapshot, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LatestErr != nil {
		return snapshots.Snapshot{}, s.LatestErr
	}
	latest := ""
	for date := range s.Snapshots {
		if date > latest {
			latest = date
		}
	}
	if latest == "" {
		return snapshots.Snapshot{}, snapshots.ErrNotFound
	}
	return s.Snapshots[latest], nil
}

// Saves reports how many snapshots were saved successfully.
func (s *StubSnapshotStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
