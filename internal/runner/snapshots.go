package runner

import (
	"fantasy-league-history/internal/collector"
	"fantasy-league-history/internal/config"
	"fantasy-league-history/internal/snapshots"
)

type snapshotComponents struct {
	store  collector.SeasonCache
	writer collector.SeasonWriter
	base   string
}

// buildSnapshots scopes the season cache to the configured league. It returns the zero
// value when caching is off.
func buildSnapshots(cfg config.Config) snapshotComponents {
	if !cfg.Snapshots.Enabled || cfg.Snapshots.Dir == "" {
		return snapshotComponents{}
	}
	leagueID := cfg.League.ID
	if cfg.Provider == config.ProviderFixture {
		leagueID = config.ProviderFixture
	}
	base := snapshots.LeagueBasePath(cfg.Snapshots.Dir, leagueID)
	return snapshotComponents{
		store:  snapshots.NewFSStore(base),
		writer: snapshots.NewWriter(base),
		base:   base,
	}
}
