package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestProviderReadsPayloads(t *testing.T) {
	dir := t.TempDir()
	stats := writeFile(t, dir, "stats.json", `[{"id": 3, "name": "A", "team": "MIA", "lines": {"rebounds": 9.5}}]`)
	sched := writeFile(t, dir, "schedule.json", `[{"home": "MIA", "away": "ORL", "time": "2025-01-01 19:30"}]`)

	p := New(stats, sched)
	players, err := p.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("players: %v", err)
	}
	if len(players) != 1 || players[0].Lines.Get("rebounds") != 9.5 {
		t.Fatalf("unexpected players %+v", players)
	}
	games, err := p.FetchSchedule(context.Background())
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(games) != 1 || games[0].Away != "ORL" {
		t.Fatalf("unexpected schedule %+v", games)
	}
}

func TestProviderMissingFiles(t *testing.T) {
	dir := t.TempDir()
	p := New(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing-schedule.json"))

	if _, err := p.FetchPlayers(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error for stats, got %v", err)
	}
	games, err := p.FetchSchedule(context.Background())
	if err != nil || len(games) != 0 {
		t.Fatalf("expected empty schedule for missing file, got %v %v", games, err)
	}
}

func TestProviderHonoursCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := New("ignored", "ignored")
	if _, err := p.FetchPlayers(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
	if _, err := p.FetchSchedule(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}
