package teams

import (
	"errors"

	"github.com/preston-bernstein/nba-props-service/internal/board"
	domainteams "github.com/preston-bernstein/nba-props-service/internal/domain/teams"
)

// ErrNotReady is returned before the first board has been loaded.
var ErrNotReady = errors.New("teams not loaded")

// Store exposes the current board.
type Store interface {
	Board() (*board.Board, bool)
}

// Service lists the teams present in the loaded player set.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns the sorted team codes of the current board with their colors.
func (s *Service) Teams() ([]domainteams.Team, error) {
	b, ok := s.store.Board()
	if !ok {
		return nil, ErrNotReady
	}
	return domainteams.FromCodes(b.Teams()), nil
}
