package snapshots

import (
	"encoding/json"
	"os"
	"time"
)

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int        `json:"version"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Retention   Retention  `json:"retention"`
	Boards      BoardsMeta `json:"boards"`
}

type Retention struct {
	BoardsDays int `json:"boardsDays"`
}

type BoardsMeta struct {
	Dates         []string  `json:"dates"`
	LatestBoardID string    `json:"latestBoardId,omitempty"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

func defaultManifest(retentionDays int) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Retention: Retention{
			BoardsDays: retentionDays,
		},
		Boards: BoardsMeta{
			Dates: []string{},
		},
	}
}

func readManifest(basePath string, retentionDays int) (Manifest, error) {
	f, err := os.Open(ManifestPath(basePath))
	if err != nil {
		return defaultManifest(retentionDays), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(retentionDays), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(ManifestPath(basePath), data)
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
