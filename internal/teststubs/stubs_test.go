package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
	"github.com/preston-bernstein/nba-props-service/internal/snapshots"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Players: []props.Player{{ID: "1"}}, PlayersErr: err, Notify: make(chan struct{})}
	if _, got := p.FetchPlayers(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
	select {
	case <-p.Notify:
	default:
		t.Fatalf("expected notify channel closed")
	}
	// A second call must not panic on the closed channel.
	p.SetPlayersErr(nil)
	if _, got := p.FetchPlayers(context.Background()); got != nil {
		t.Fatalf("expected nil error, got %v", got)
	}
}

func TestStubSnapshotStore(t *testing.T) {
	s := &StubSnapshotStore{}
	ctx := context.Background()

	if _, err := s.Latest(ctx); !errors.Is(err, snapshots.ErrNotFound) {
		t.Fatalf("expected not found on empty store, got %v", err)
	}
	for _, date := range []string{"2024-01-01", "2024-01-03", "2024-01-02"} {
		if err := s.Save(ctx, snapshots.Snapshot{Date: date, BoardID: date}); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	latest, err := s.Latest(ctx)
	if err != nil || latest.BoardID != "2024-01-03" {
		t.Fatalf("expected newest snapshot, got %+v err %v", latest, err)
	}
	if _, err := s.Load(ctx, "2023-12-31"); !errors.Is(err, snapshots.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if s.Saves() != 3 {
		t.Fatalf("expected 3 saves, got %d", s.Saves())
	}

	s.SaveErr = errors.New("disk full")
	if err := s.Save(ctx, snapshots.Snapshot{Date: "2024-01-04"}); err == nil {
		t.Fatalf("expected save error")
	}
}
