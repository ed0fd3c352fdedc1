package games

import (
	"errors"

	"github.com/preston-bernstein/nba-props-service/internal/board"
	domaingames "github.com/preston-bernstein/nba-props-service/internal/domain/games"
)

// ErrNotReady is returned before the first board has been loaded.
var ErrNotReady = errors.New("schedule not loaded")

// Store exposes the current board.
type Store interface {
	Board() (*board.Board, bool)
}

// Service serves the loaded schedule.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Schedule returns every game of the current board with its mapping time.
func (s *Service) Schedule() (domaingames.ScheduleResponse, error) {
	b, ok := s.store.Board()
	if !ok {
		return domaingames.ScheduleResponse{}, ErrNotReady
	}
	out := make([]domaingames.Game, len(b.Games))
	copy(out, b.Games)
	return domaingames.NewScheduleResponse(b.MappedAt, out), nil
}

// NextByTeam returns the mapped next game for each team that has players.
func (s *Service) NextByTeam() (map[string]domaingames.Game, error) {
	b, ok := s.store.Board()
	if !ok {
		return nil, ErrNotReady
	}
	out := make(map[string]domaingames.Game)
	for _, p := range b.Players {
		if _, done := out[p.Team]; done {
			continue
		}
		if g, ok := b.Game(p.ID); ok {
			out[p.Team] = g
		}
	}
	return out, nil
}
