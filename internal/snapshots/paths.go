package snapshots

import (
	"fmt"
	"path/filepath"
)

const (
	boardsDir    = "boards"
	manifestFile = "manifest.json"
)

// BoardSnapshotPath builds the path to a board snapshot for a given date.
func BoardSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, boardsDir, fmt.Sprintf("%s.json", date))
}

// ManifestPath is where the manifest lives under basePath.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestFile)
}
