package testutil

import (
	"testing"

	"fantasy-league-history/internal/domain/matchups"
	"fantasy-league-history/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir())
}

// WriteSeason writes a one-week season snapshot holding the given matchups.
func WriteSeason(t *testing.T, w *snapshots.Writer, year int, games ...matchups.Matchup) {
	t.Helper()
	season := matchups.Season{Year: year, Weeks: []matchups.Week{{Number: 1, Matchups: games}}}
	if err := w.WriteSeason(season); err != nil {
		t.Fatalf("failed to write season %d: %v", year, err)
	}
}

// SeasonPath returns the expected file path for a season snapshot.
func SeasonPath(w *snapshots.Writer, year int) string {
	return snapshots.SeasonSnapshotPath(w.BasePath(), year)
}
