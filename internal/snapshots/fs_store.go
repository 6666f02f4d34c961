package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"fantasy-league-history/internal/domain/matchups"
)

// Store defines how season snapshots are loaded.
type Store interface {
	HasSeason(year int) bool
	LoadSeason(year int) (matchups.Season, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadSeason reads {basePath}/seasons/{year}.json. A missing file returns an error matching os.ErrNotExist.
func (s *FSStore) LoadSeason(year int) (matchups.Season, error) {
	if s == nil {
		return matchups.Season{}, errors.New("snapshot store not configured")
	}
	var season matchups.Season
	if err := decodeFile(SeasonSnapshotPath(s.basePath, year), &season); err != nil {
		return matchups.Season{}, err
	}
	if season.Year != year {
		return matchups.Season{}, fmt.Errorf("snapshot for %d holds season %d", year, season.Year)
	}
	return season, nil
}

// HasSeason reports whether a snapshot file exists for year.
func (s *FSStore) HasSeason(year int) bool {
	if s == nil {
		return false
	}
	_, err := os.Stat(SeasonSnapshotPath(s.basePath, year))
	return err == nil
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
