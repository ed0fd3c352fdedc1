package providers

import (
	"strings"
	"testing"
)

func TestDecodePlayers(t *testing.T) {
	payload := `[
		{"id": 7, "name": "A", "team": "LAL", "lines": {"points": 20.5}, "projections": {"points": 22, "minutes": 33}},
		{"id": "8", "name": "B", "team": "BOS", "lines": null},
		{"id": 9, "name": "C", "team": "BOS", "projections": "oops"}
	]`
	players, err := DecodePlayers(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}
	if players[0].ID != "7" || players[0].Lines.Get("points") != 20.5 {
		t.Fatalf("unexpected first player %+v", players[0])
	}
	if players[1].Lines.Get("points") != 0 || players[2].Projections.Get("points") != 0 {
		t.Fatalf("expected missing stats to read as 0")
	}
}

func TestDecodePlayersRejectsNonArray(t *testing.T) {
	if _, err := DecodePlayers(strings.NewReader(`{"players": []}`)); err == nil {
		t.Fatalf("expected error for object payload")
	}
	if _, err := DecodePlayers(strings.NewReader(`not json`)); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}

func TestDecodePlayersNull(t *testing.T) {
	players, err := DecodePlayers(strings.NewReader(`null`))
	if err != nil || players == nil || len(players) != 0 {
		t.Fatalf("expected empty slice for null payload, got %v %v", players, err)
	}
}

func TestDecodeSchedule(t *testing.T) {
	sched, err := DecodeSchedule(strings.NewReader(`[{"home":"BOS","away":"NYK","time":"2025-01-01T00:00:00Z"}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sched) != 1 || sched[0].Away != "NYK" {
		t.Fatalf("unexpected schedule %+v", sched)
	}
	if _, err := DecodeSchedule(strings.NewReader(`"nope"`)); err == nil {
		t.Fatalf("expected error for string payload")
	}
}
