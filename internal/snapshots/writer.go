package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"fantasy-league-history/internal/domain/matchups"
)

// Writer persists season snapshots and the manifest.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSeason writes a completed season. Weeks are sorted so identical data yields identical bytes.
func (w *Writer) WriteSeason(season matchups.Season) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if season.Year <= 0 {
		return fmt.Errorf("season year required")
	}
	sort.SliceStable(season.Weeks, func(i, j int) bool {
		return season.Weeks[i].Number < season.Weeks[j].Number
	})

	target := SeasonSnapshotPath(w.basePath, season.Year)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(season, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest()
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest()
}

func (w *Writer) updateManifest() error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath)

	years, err := w.listYears()
	if err != nil {
		return err
	}
	m.Version = manifestVersion
	m.Seasons.Years = years
	m.Seasons.LastRefreshed = time.Now().UTC()

	return writeManifest(w.basePath, m)
}

func (w *Writer) listYears() ([]int, error) {
	dir := filepath.Join(w.basePath, seasonsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []int{}, nil
		}
		return nil, err
	}
	years := make([]int, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSuffix(e.Name(), ".json"))
		if err != nil {
			continue
		}
		years = append(years, year)
	}
	sort.Ints(years)
	return years, nil
}
