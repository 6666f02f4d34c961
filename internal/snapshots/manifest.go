package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const manifestVersion = 1

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int         `json:"version"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Seasons     SeasonsMeta `json:"seasons"`
}

// SeasonsMeta lists cached seasons.
type SeasonsMeta struct {
	Years         []int     `json:"years"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

func defaultManifest() Manifest {
	return Manifest{
		Version:     manifestVersion,
		GeneratedAt: time.Now().UTC(),
		Seasons: SeasonsMeta{
			Years: []int{},
		},
	}
}

func readManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(), err
	}
	return m, nil
}

// ReadManifest loads the manifest under basePath, returning an empty one when absent.
func ReadManifest(basePath string) (Manifest, error) {
	m, err := readManifest(filepath.Join(basePath, "manifest.json"))
	if os.IsNotExist(err) {
		return m, nil
	}
	return m, err
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(basePath, "manifest.json")
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
