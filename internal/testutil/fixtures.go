package testutil

import (
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/board"
	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
)

// SamplePlayer returns a player with a points line and projection.
func SamplePlayer(id, name, team string, line, proj float64) props.Player {
	return props.Player{
		ID:          props.PlayerID(id),
		Name:        name,
		Team:        team,
		Lines:       props.Lines{string(props.Points): line},
		Projections: props.Projections{string(props.Points): proj, string(props.Minutes): 30},
	}
}

// SamplePlayers returns three players on two teams with distinct point diffs.
func SamplePlayers() []props.Player {
	return []props.Player{
		SamplePlayer("1", "Jane Doe", "BOS", 20, 25),
		SamplePlayer("2", "John Smith", "LAL", 15, 12),
		SamplePlayer("3", "Ana Silva", "BOS", 10, 11),
	}
}

// SampleGame schedules home against away at the given instant.
func SampleGame(home, away string, at time.Time) games.Game {
	return games.Game{Home: home, Away: away, Time: at.UTC().Format(time.RFC3339)}
}

// SampleBoard builds a board from SamplePlayers with one upcoming BOS-LAL game.
func SampleBoard(now time.Time) *board.Board {
	schedule := []games.Game{SampleGame("BOS", "LAL", now.Add(3*time.Hour))}
	return board.Restore("board-1", SamplePlayers(), schedule, now, "test")
}
