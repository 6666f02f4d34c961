package snapshots

import (
	"fmt"
	"path/filepath"
)

const seasonsDir = "seasons"

// SeasonSnapshotPath builds the path to a season snapshot.
func SeasonSnapshotPath(basePath string, year int) string {
	return filepath.Join(basePath, seasonsDir, fmt.Sprintf("%d.json", year))
}

// LeagueBasePath scopes the cache directory to one league so two leagues never share files.
func LeagueBasePath(dir, leagueID string) string {
	if leagueID == "" {
		leagueID = "default"
	}
	return filepath.Join(dir, leagueID)
}
