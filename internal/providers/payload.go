package providers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
)

// DecodePlayers reads a stats payload: a JSON array of player records.
// Records with missing or malformed stat objects decode with empty stats.
func DecodePlayers(r io.Reader) ([]props.Player, error) {
	var players []props.Player
	if err := json.NewDecoder(r).Decode(&players); err != nil {
		return nil, fmt.Errorf("decode players: %w", err)
	}
	if players == nil {
		players = []props.Player{}
	}
	return players, nil
}

// DecodeSchedule reads a schedule payload: a JSON array of games.
func DecodeSchedule(r io.Reader) ([]games.Game, error) {
	var sched []games.Game
	if err := json.NewDecoder(r).Decode(&sched); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	if sched == nil {
		sched = []games.Game{}
	}
	return sched, nil
}
