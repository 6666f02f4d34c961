package snapshots

import (
	"os"
	"testing"

	"fantasy-league-history/internal/domain/coaches"
	"fantasy-league-history/internal/domain/matchups"
)

func simpleSeason(year int) matchups.Season {
	return matchups.Season{
		Year: year,
		Weeks: []matchups.Week{
			{Number: 2, Matchups: []matchups.Matchup{{
				Home: coaches.Coach{ID: "a", FirstName: "Alice"}, HomeScore: 88.5,
				Away: coaches.Coach{ID: "b", FirstName: "Bob"}, AwayScore: 91.25,
				Type: matchups.TypeRegular,
			}}},
			{Number: 1, Matchups: []matchups.Matchup{{
				Home: coaches.Coach{ID: "b", FirstName: "Bob"}, HomeScore: 100,
				Away: coaches.Coach{ID: "a", FirstName: "Alice"}, AwayScore: 90,
				Type: matchups.TypeRegular,
			}}},
		},
	}
}

func writeSeason(t *testing.T, w *Writer, season matchups.Season) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for season %d", season.Year)
	}
	if err := w.WriteSeason(season); err != nil {
		t.Fatalf("failed to write season %d: %v", season.Year, err)
	}
}

func requireSeasonExists(t *testing.T, w *Writer, year int) {
	t.Helper()
	if _, err := os.Stat(SeasonSnapshotPath(w.BasePath(), year)); err != nil {
		t.Fatalf("expected snapshot for %d to be written: %v", year, err)
	}
}

func assertYearsEqual(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("years length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("years mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
