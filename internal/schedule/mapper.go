// Package schedule maps players to their team's next game.
package schedule

import (
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
)

type candidate struct {
	game  games.Game
	start time.Time
}

// MapGames returns, for each player whose team has one, the earliest game
// starting at or after now. Ties keep the game listed first. Games already in
// the past, or with an unparseable time, are never selected.
//
// The result is a point-in-time view: it is not recomputed as now advances.
// Entries are keyed by player id; players sharing an id share one entry.
func MapGames(schedule []games.Game, players []props.Player, now time.Time) map[props.PlayerID]games.Game {
	next := NextByTeam(schedule, now)

	out := make(map[props.PlayerID]games.Game, len(players))
	for _, p := range players {
		if g, ok := next[p.Team]; ok {
			out[p.ID] = g
		}
	}
	return out
}

// NextByTeam returns the earliest upcoming game for every team in the schedule.
func NextByTeam(schedule []games.Game, now time.Time) map[string]games.Game {
	best := make(map[string]candidate)
	for _, g := range schedule {
		start, ok := g.StartTime()
		if !ok || start.Before(now) {
			continue
		}
		for _, team := range [2]string{g.Home, g.Away} {
			if team == "" {
				continue
			}
			current, seen := best[team]
			if !seen || current.start.After(start) {
				best[team] = candidate{game: g, start: start}
			}
		}
	}

	out := make(map[string]games.Game, len(best))
	for team, c := range best {
		out[team] = c.game
	}
	return out
}
