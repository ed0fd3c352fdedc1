package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/timeutil"
)

const defaultRetentionDays = 7

// Writer persists board snapshots and the manifest, pruning old dates.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// Write stores snap under its date. When the players and games are unchanged
// from the file on disk only the manifest is refreshed.
func (w *Writer) Write(snap Snapshot) error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	if snap.Date == "" {
		return errors.New("snapshot date required")
	}

	target := BoardSnapshotPath(w.basePath, snap.Date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil {
		same, err := sameContent(existing, snap)
		if err == nil && same {
			return w.updateManifest(snap.Date, snap.BoardID)
		}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if err := writeAtomic(target, data); err != nil {
		return err
	}
	return w.updateManifest(snap.Date, snap.BoardID)
}

func sameContent(existing []byte, snap Snapshot) (bool, error) {
	var prev Snapshot
	if err := json.Unmarshal(existing, &prev); err != nil {
		return false, err
	}
	a, err := json.Marshal([]any{prev.Players, prev.Games})
	if err != nil {
		return false, err
	}
	b, err := json.Marshal([]any{snap.Players, snap.Games})
	if err != nil {
		return false, err
	}
	return bytes.Equal(a, b), nil
}

func (w *Writer) updateManifest(date, boardID string) error {
	m, _ := readManifest(w.basePath, w.retentionDays)

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}

	m.Boards.Dates = w.pruneOldSnapshots(dates)
	m.Boards.LatestBoardID = boardID
	m.Boards.LastRefreshed = w.now().UTC()
	m.Retention.BoardsDays = w.retentionDays

	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates() ([]string, error) {
	return listSnapshotDates(w.basePath)
}

func listSnapshotDates(basePath string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(basePath, boardsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		base := name[:len(name)-len(".json")]
		if _, err := timeutil.ParseDate(base); err != nil {
			continue
		}
		dates = append(dates, base)
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(dates []string) []string {
	now := w.now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	keep := make([]string, 0, len(dates))
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(BoardSnapshotPath(w.basePath, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep
}
