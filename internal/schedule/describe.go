package schedule

import (
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
)

const (
	VenueHome = "vs"
	VenueAway = "@"

	dateLayout = "02/01"
	timeLayout = "15:04"
)

// GameInfo is a game seen from one team's side.
type GameInfo struct {
	IsHome    bool       `json:"isHome"`
	Opponent  string     `json:"opponent"`
	Venue     string     `json:"venue"`
	Date      string     `json:"date,omitempty"`
	Time      string     `json:"time,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
}

// Describe renders game from team's perspective. Date and time are formatted in
// loc (UTC when nil); they are empty when the game time cannot be parsed.
func Describe(game games.Game, team string, loc *time.Location) GameInfo {
	if loc == nil {
		loc = time.UTC
	}
	info := GameInfo{IsHome: game.Home == team}
	if info.IsHome {
		info.Opponent = game.Away
		info.Venue = VenueHome
	} else {
		info.Opponent = game.Home
		info.Venue = VenueAway
	}

	if start, ok := game.StartTime(); ok {
		local := start.In(loc)
		info.Date = local.Format(dateLayout)
		info.Time = local.Format(timeLayout)
		utc := start.UTC()
		info.StartTime = &utc
	}
	return info
}
