package teams

import (
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/board"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
)

type stubStore struct {
	board *board.Board
}

func (s stubStore) Board() (*board.Board, bool) {
	return s.board, s.board != nil
}

func TestServiceTeams(t *testing.T) {
	players := []props.Player{
		{ID: "1", Name: "A", Team: "NYK"},
		{ID: "2", Name: "B", Team: "ATL"},
		{ID: "3", Name: "C", Team: "NYK"},
	}
	svc := NewService(stubStore{board: board.New(players, nil, time.Now(), "test")})

	got, err := svc.Teams()
	if err != nil {
		t.Fatalf("teams: %v", err)
	}
	if len(got) != 2 || got[0].Code != "ATL" || got[1].Code != "NYK" {
		t.Fatalf("unexpected teams %+v", got)
	}
	if got[1].Colors.Primary != "#006BB6" {
		t.Fatalf("unexpected NYK colors %+v", got[1].Colors)
	}
}

func TestServiceTeamsNotReady(t *testing.T) {
	if _, err := NewService(stubStore{}).Teams(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
}
