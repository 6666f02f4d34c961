package snapshots

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadManifestReturnsDefaultOnDecodeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	m, err := readManifest(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if m.Version != manifestVersion || len(m.Seasons.Years) != 0 {
		t.Fatalf("expected default manifest, got %+v", m)
	}
}

func TestReadManifestMissingIsEmpty(t *testing.T) {
	m, err := ReadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("expected missing manifest to be fine, got %v", err)
	}
	if len(m.Seasons.Years) != 0 {
		t.Fatalf("expected no years, got %v", m.Seasons.Years)
	}
}

func TestWriteManifestFailsWhenPathMissing(t *testing.T) {
	if err := writeManifest(filepath.Join("does-not-exist", "missing"), defaultManifest()); err == nil {
		t.Fatalf("expected error when base path missing")
	}
}

func TestWriteManifestSuccess(t *testing.T) {
	dir := t.TempDir()
	m := defaultManifest()
	m.Seasons.Years = []int{2021, 2022}
	if err := writeManifest(dir, m); err != nil {
		t.Fatalf("expected manifest to be written, got %v", err)
	}
	got, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("expected manifest to be readable, got %v", err)
	}
	assertYearsEqual(t, got.Seasons.Years, []int{2021, 2022})
}
