package snapshots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// FSStore saves and loads snapshots on the filesystem.
type FSStore struct {
	basePath string
	writer   *Writer
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string, retentionDays int) *FSStore {
	return &FSStore{basePath: basePath, writer: NewWriter(basePath, retentionDays)}
}

// Save writes snap through the Writer.
func (s *FSStore) Save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.writer.Write(snap)
}

// Load reads the snapshot for the given date (YYYY-MM-DD) from
// {basePath}/boards/{date}.json.
func (s *FSStore) Load(ctx context.Context, date string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	if s == nil {
		return Snapshot{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return Snapshot{}, errors.New("snapshot date required")
	}

	var snap Snapshot
	if err := decodeFile(BoardSnapshotPath(s.basePath, date), &snap); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, date)
		}
		return Snapshot{}, err
	}
	if snap.Date == "" {
		snap.Date = date
	}
	return snap, nil
}

// Latest loads the newest dated snapshot. The manifest is consulted first;
// without one the boards directory is scanned.
func (s *FSStore) Latest(ctx context.Context) (Snapshot, error) {
	dates := []string{}
	if m, err := readManifest(s.basePath, 0); err == nil {
		dates = m.Boards.Dates
	}
	if len(dates) == 0 {
		listed, err := listSnapshotDates(s.basePath)
		if err != nil {
			return Snapshot{}, err
		}
		dates = listed
	}
	if len(dates) == 0 {
		return Snapshot{}, ErrNotFound
	}
	return s.Load(ctx, maxDate(dates))
}

func maxDate(dates []string) string {
	latest := dates[0]
	for _, d := range dates[1:] {
		if d > latest {
			latest = d
		}
	}
	return latest
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
