package schedule

import (
	"testing"
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
)

var now = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func TestMapGamesPicksEarliestUpcoming(t *testing.T) {
	schedule := []games.Game{
		{Home: "BOS", Away: "NYK", Time: "2025-01-12T00:00:00Z"},
		{Home: "LAL", Away: "BOS", Time: "2025-01-11T00:00:00Z"},
	}
	players := []props.Player{{ID: "1", Name: "Tatum", Team: "BOS"}}

	got := MapGames(schedule, players, now)
	g, ok := got["1"]
	if !ok {
		t.Fatalf("expected player to be mapped")
	}
	if g.Home != "LAL" {
		t.Fatalf("expected earliest game (LAL home), got %+v", g)
	}
}

func TestMapGamesSkipsPastGames(t *testing.T) {
	schedule := []games.Game{
		{Home: "BOS", Away: "NYK", Time: "2025-01-09T00:00:00Z"},
		{Home: "MIA", Away: "BOS", Time: "2025-01-15T00:00:00Z"},
	}
	players := []props.Player{{ID: "1", Team: "BOS"}, {ID: "2", Team: "NYK"}}

	got := MapGames(schedule, players, now)
	if got["1"].Home != "MIA" {
		t.Fatalf("expected the upcoming game, got %+v", got["1"])
	}
	if _, ok := got["2"]; ok {
		t.Fatalf("expected no game for a team whose only game is past")
	}
}

func TestMapGamesTieKeepsFirstSeen(t *testing.T) {
	schedule := []games.Game{
		{Home: "BOS", Away: "NYK", Time: "2025-01-11T00:00:00Z"},
		{Home: "BOS", Away: "MIA", Time: "2025-01-11T00:00:00Z"},
	}
	players := []props.Player{{ID: "1", Team: "BOS"}}

	got := MapGames(schedule, players, now)
	if got["1"].Away != "NYK" {
		t.Fatalf("expected first listed game on tie, got %+v", got["1"])
	}
}

func TestMapGamesIncludesGameStartingNow(t *testing.T) {
	schedule := []games.Game{{Home: "BOS", Away: "NYK", Time: now.Format(time.RFC3339)}}
	got := MapGames(schedule, []props.Player{{ID: "1", Team: "NYK"}}, now)
	if _, ok := got["1"]; !ok {
		t.Fatalf("expected a game starting exactly now to qualify")
	}
}

func TestMapGamesIgnoresUnparseableTimes(t *testing.T) {
	schedule := []games.Game{{Home: "BOS", Away: "NYK", Time: "tbd"}}
	got := MapGames(schedule, []props.Player{{ID: "1", Team: "BOS"}}, now)
	if len(got) != 0 {
		t.Fatalf("expected no mapping, got %+v", got)
	}
}

func TestMapGamesEveryEntryIsTheTeamsEarliest(t *testing.T) {
	schedule := []games.Game{
		{Home: "A", Away: "B", Time: "2025-01-20T00:00:00Z"},
		{Home: "C", Away: "A", Time: "2025-01-11T00:00:00Z"},
		{Home: "B", Away: "C", Time: "2025-01-13T00:00:00Z"},
		{Home: "D", Away: "A", Time: "2025-01-01T00:00:00Z"},
	}
	players := []props.Player{
		{ID: "a", Team: "A"},
		{ID: "b", Team: "B"},
		{ID: "c", Team: "C"},
		{ID: "d", Team: "D"},
		{ID: "e", Team: "E"},
	}
	got := MapGames(schedule, players, now)

	for _, p := range players {
		mapped, ok := got[p.ID]
		var earliest *time.Time
		for _, g := range schedule {
			start, _ := g.StartTime()
			if !g.Involves(p.Team) || start.Before(now) {
				continue
			}
			if earliest == nil || start.Before(*earliest) {
				s := start
				earliest = &s
			}
		}
		if earliest == nil {
			if ok {
				t.Fatalf("player %s: expected no game, got %+v", p.ID, mapped)
			}
			continue
		}
		if !ok {
			t.Fatalf("player %s: expected a game", p.ID)
		}
		if !mapped.Involves(p.Team) {
			t.Fatalf("player %s: mapped game does not involve team %s", p.ID, p.Team)
		}
		start, _ := mapped.StartTime()
		if !start.Equal(*earliest) {
			t.Fatalf("player %s: expected start %s, got %s", p.ID, earliest, start)
		}
	}
}

func TestNextByTeam(t *testing.T) {
	schedule := []games.Game{
		{Home: "A", Away: "B", Time: "2025-01-20T00:00:00Z"},
		{Home: "", Away: "B", Time: "2025-01-11T00:00:00Z"},
	}
	got := NextByTeam(schedule, now)
	if len(got) != 2 {
		t.Fatalf("expected two teams, got %+v", got)
	}
	if got["B"].Time != "2025-01-11T00:00:00Z" {
		t.Fatalf("unexpected game for B: %+v", got["B"])
	}
}
