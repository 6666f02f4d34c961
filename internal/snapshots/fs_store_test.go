package snapshots

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFSStoreLoadSeason(t *testing.T) {
	dir := t.TempDir()
	writeSeason(t, NewWriter(dir), simpleSeason(2022))

	store := NewFSStore(dir)
	if !store.HasSeason(2022) || store.HasSeason(2021) {
		t.Fatalf("unexpected HasSeason results")
	}
	got, err := store.LoadSeason(2022)
	if err != nil {
		t.Fatalf("failed to load season: %v", err)
	}
	if got.Year != 2022 || len(got.Weeks) != 2 || len(got.Weeks[0].Matchups) != 1 {
		t.Fatalf("unexpected season snapshot: %+v", got)
	}
	if got.Weeks[0].Matchups[0].Home.ID != "b" || got.Weeks[0].Matchups[0].HomeScore != 100 {
		t.Fatalf("unexpected first matchup: %+v", got.Weeks[0].Matchups[0])
	}
}

func TestFSStoreErrors(t *testing.T) {
	dir := t.TempDir()
	store := NewFSStore(dir)
	if _, err := store.LoadSeason(2020); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error for missing season, got %v", err)
	}

	var nilStore *FSStore
	if _, err := nilStore.LoadSeason(2020); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if nilStore.HasSeason(2020) {
		t.Fatalf("expected nil store to have nothing")
	}

	if err := os.MkdirAll(filepath.Join(dir, seasonsDir), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(SeasonSnapshotPath(dir, 2019), []byte("{bad json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.LoadSeason(2019); err == nil {
		t.Fatalf("expected decode error")
	}

	if err := os.WriteFile(SeasonSnapshotPath(dir, 2018), []byte(`{"year": 2017}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.LoadSeason(2018); err == nil {
		t.Fatalf("expected mismatched year error")
	}
}

func TestLeagueBasePath(t *testing.T) {
	if got := LeagueBasePath("data", "42"); got != filepath.Join("data", "42") {
		t.Fatalf("unexpected path %s", got)
	}
	if got := LeagueBasePath("data", ""); got != filepath.Join("data", "default") {
		t.Fatalf("unexpected default path %s", got)
	}
}
