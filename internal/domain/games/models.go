package games

import (
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/timeutil"
)

// Game is a scheduled matchup as delivered by the schedule feed.
// There is no upstream id; the (home, away, time) triple identifies it.
type Game struct {
	Home string `json:"home"`
	Away string `json:"away"`
	Time string `json:"time"`
}

// StartTime parses Time. The bool is false when the timestamp is unusable.
func (g Game) StartTime() (time.Time, bool) {
	return timeutil.ParseTimestamp(g.Time)
}

// Involves reports whether the team plays in the game.
func (g Game) Involves(team string) bool {
	return team != "" && (g.Home == team || g.Away == team)
}

// ScheduleResponse is the payload returned by /api/v1/schedule.
type ScheduleResponse struct {
	MappedAt time.Time `json:"mappedAt"`
	Count    int       `json:"count"`
	Games    []Game    `json:"games"`
}

// NewScheduleResponse builds a ScheduleResponse payload.
func NewScheduleResponse(mappedAt time.Time, games []Game) ScheduleResponse {
	if games == nil {
		games = []Game{}
	}
	return ScheduleResponse{
		MappedAt: mappedAt,
		Count:    len(games),
		Games:    games,
	}
}
