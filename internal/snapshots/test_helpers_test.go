package snapshots

import (
	"os"
	"testing"

	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
)

func simpleSnapshot(date string) Snapshot {
	return Snapshot{
		Date:    date,
		BoardID: "board-" + date,
		Source:  "fixture",
		Players: []props.Player{
			{ID: props.PlayerID(date), Name: "Player " + date, Team: "BOS", Lines: props.Lines{"points": 20}},
		},
		Games: []games.Game{
			{Home: "BOS", Away: "NYK", Time: date + "T23:30:00Z"},
		},
	}
}

func writeSnapshot(t *testing.T, w *Writer, snap Snapshot) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for date %s", snap.Date)
	}
	if err := w.Write(snap); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", snap.Date, err)
	}
}

func writeSimpleSnapshot(t *testing.T, w *Writer, date string) {
	t.Helper()
	writeSnapshot(t, w, simpleSnapshot(date))
}

func requireSnapshotExists(t *testing.T, w *Writer, date string) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil when asserting snapshot for %s", date)
	}
	if _, err := os.Stat(BoardSnapshotPath(w.BasePath(), date)); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", date, err)
	}
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
