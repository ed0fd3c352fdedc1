// Package board holds one loaded generation of players and schedule.
package board

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
	"github.com/preston-bernstein/nba-props-service/internal/schedule"
)

// Board is an immutable snapshot of the data the API serves. A new Board is
// built on every successful load and swapped in whole.
//
// GamesByPlayer is computed once at MappedAt; a game that kicks off after
// that stays mapped until the next load.
type Board struct {
	ID            string
	Players       []props.Player
	Games         []games.Game
	GamesByPlayer map[props.PlayerID]games.Game
	MappedAt      time.Time
	LoadedAt      time.Time
	Source        string

	byID  map[props.PlayerID]int
	teams []string
}

// New dedupes players, maps each to its next game relative to now and
// indexes the result.
func New(players []props.Player, schedule []games.Game, now time.Time, source string) *Board {
	return build(uuid.NewString(), players, schedule, now, source)
}

// Restore rebuilds a board with a known id, as when loading a snapshot.
func Restore(id string, players []props.Player, schedule []games.Game, now time.Time, source string) *Board {
	if id == "" {
		id = uuid.NewString()
	}
	return build(id, players, schedule, now, source)
}

func build(id string, players []props.Player, sched []games.Game, now time.Time, source string) *Board {
	unique := props.Dedupe(players)
	if sched == nil {
		sched = []games.Game{}
	}

	b := &Board{
		ID:            id,
		Players:       unique,
		Games:         sched,
		GamesByPlayer: schedule.MapGames(sched, unique, now),
		MappedAt:      now.UTC(),
		LoadedAt:      time.Now().UTC(),
		Source:        source,
		byID:          make(map[props.PlayerID]int, len(unique)),
	}

	seen := make(map[string]struct{})
	for i, p := range unique {
		if _, dup := b.byID[p.ID]; !dup {
			b.byID[p.ID] = i
		}
		if p.Team == "" {
			continue
		}
		if _, ok := seen[p.Team]; !ok {
			seen[p.Team] = struct{}{}
			b.teams = append(b.teams, p.Team)
		}
	}
	sort.Strings(b.teams)
	return b
}

// Teams returns the distinct team codes present in the player set, sorted.
func (b *Board) Teams() []string {
	out := make([]string, len(b.teams))
	copy(out, b.teams)
	return out
}

// Player looks up a player by id. Ids are not checked for uniqueness, so
// distinct players sharing an id resolve to the first one listed.
func (b *Board) Player(id props.PlayerID) (props.Player, bool) {
	i, ok := b.byID[id]
	if !ok {
		return props.Player{}, false
	}
	return b.Players[i], true
}

// Game returns the next game mapped to a player. The mapping is keyed by id,
// so players sharing an id share one entry.
func (b *Board) Game(id props.PlayerID) (games.Game, bool) {
	g, ok := b.GamesByPlayer[id]
	return g, ok
}
