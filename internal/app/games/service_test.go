package games

import (
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/board"
	domaingames "github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
)

type stubStore struct {
	board *board.Board
}

func (s stubStore) Board() (*board.Board, bool) {
	return s.board, s.board != nil
}

var now = time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

func TestServiceSchedule(t *testing.T) {
	sched := []domaingames.Game{
		{Home: "LAL", Away: "GSW", Time: "2025-02-02T03:30:00Z"},
		{Home: "BOS", Away: "NYK", Time: "2025-01-30T00:00:00Z"},
	}
	b := board.New(nil, sched, now, "test")
	svc := NewService(stubStore{board: b})

	resp, err := svc.Schedule()
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if resp.Count != 2 || !resp.MappedAt.Equal(now) {
		t.Fatalf("unexpected response %+v", resp)
	}
	resp.Games[0].Home = "mutated"
	if b.Games[0].Home != "LAL" {
		t.Fatalf("expected schedule to be copied")
	}
}

func TestServiceNextByTeam(t *testing.T) {
	sched := []domaingames.Game{{Home: "LAL", Away: "GSW", Time: "2025-02-02T03:30:00Z"}}
	players := []props.Player{
		{ID: "1", Name: "A", Team: "LAL"},
		{ID: "2", Name: "B", Team: "LAL"},
		{ID: "3", Name: "C", Team: "MIA"},
	}
	svc := NewService(stubStore{board: board.New(players, sched, now, "test")})

	next, err := svc.NextByTeam()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if len(next) != 1 || next["LAL"].Away != "GSW" {
		t.Fatalf("unexpected next games %+v", next)
	}
}

func TestServiceNotReady(t *testing.T) {
	svc := NewService(stubStore{})
	if _, err := svc.Schedule(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
	if _, err := svc.NextByTeam(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
}
