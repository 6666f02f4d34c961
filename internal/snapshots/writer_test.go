package snapshots

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriterWritesSeasonAndManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	writeSeason(t, w, simpleSeason(2022))
	requireSeasonExists(t, w, 2022)

	m, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("expected manifest, got err %v", err)
	}
	assertYearsEqual(t, m.Seasons.Years, []int{2022})
	if m.Version != manifestVersion || m.Seasons.LastRefreshed.IsZero() {
		t.Fatalf("unexpected manifest %+v", m)
	}
}

func TestWriterSortsWeeks(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	writeSeason(t, w, simpleSeason(2021))

	got, err := NewFSStore(dir).LoadSeason(2021)
	if err != nil {
		t.Fatalf("failed to load season: %v", err)
	}
	if got.Weeks[0].Number != 1 || got.Weeks[1].Number != 2 {
		t.Fatalf("expected weeks sorted, got %+v", got.Weeks)
	}
}

func TestWriterSkipsIdenticalContent(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	writeSeason(t, w, simpleSeason(2020))

	path := SeasonSnapshotPath(dir, 2020)
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	writeSeason(t, w, simpleSeason(2020))
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.ModTime().Equal(old) {
		t.Fatalf("expected unchanged file to be left alone, modtime %s", info.ModTime())
	}
}

func TestWriterManifestListsAllYears(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	for _, year := range []int{2023, 2019, 2021} {
		writeSeason(t, w, simpleSeason(year))
	}
	// Stray files are ignored.
	if err := os.WriteFile(filepath.Join(dir, seasonsDir, "notes.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write stray: %v", err)
	}
	writeSeason(t, w, simpleSeason(2018))

	m, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	assertYearsEqual(t, m.Seasons.Years, []int{2018, 2019, 2021, 2023})
}

func TestWriterRejectsInvalidInput(t *testing.T) {
	var nilWriter *Writer
	if err := nilWriter.WriteSeason(simpleSeason(2020)); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	if nilWriter.BasePath() != "" {
		t.Fatalf("expected empty base path for nil writer")
	}
	if err := NewWriter(t.TempDir()).WriteSeason(simpleSeason(0)); err == nil {
		t.Fatalf("expected error for missing year")
	}
}

func TestWriterFailsWhenBaseIsFile(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "file")
	if err := os.WriteFile(base, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := NewWriter(base).WriteSeason(simpleSeason(2020)); err == nil {
		t.Fatalf("expected error when base path is a file")
	}
}
