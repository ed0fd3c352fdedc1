package snapshots

import (
	"context"
	"errors"
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/board"
	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
	"github.com/preston-bernstein/nba-props-service/internal/timeutil"
)

// ErrNotFound is returned when no snapshot exists for the requested date.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is the persisted form of a loaded board.
type Snapshot struct {
	Date    string         `json:"date"`
	BoardID string         `json:"boardId"`
	Source  string         `json:"source"`
	SavedAt time.Time      `json:"savedAt"`
	Players []props.Player `json:"players"`
	Games   []games.Game   `json:"games"`
}

// Store persists and restores snapshots.
type Store interface {
	Save(ctx context.Context, snap Snapshot) error
	Load(ctx context.Context, date string) (Snapshot, error)
	Latest(ctx context.Context) (Snapshot, error)
}

// FromBoard captures a board, dated by its load day (UTC).
func FromBoard(b *board.Board) Snapshot {
	return Snapshot{
		Date:    timeutil.FormatDate(b.LoadedAt.UTC()),
		BoardID: b.ID,
		Source:  b.Source,
		SavedAt: time.Now().UTC(),
		Players: b.Players,
		Games:   b.Games,
	}
}

// Board rebuilds a board from the snapshot with the game mapping computed at now.
func (s Snapshot) Board(now time.Time) *board.Board {
	source := s.Source
	if source == "" {
		source = "snapshot"
	}
	return board.Restore(s.BoardID, s.Players, s.Games, now, source)
}
