package providers

import (
	"context"

	"fantasy-league-history/internal/domain/activity"
	"fantasy-league-history/internal/domain/matchups"
)

// Operation names used in logs, metrics, and timeout errors.
const (
	OpCurrentWeek    = "current_week"
	OpSeasonFinished = "season_finished"
	OpScoreboard     = "scoreboard"
	OpRecentActivity = "recent_activity"
)

// ScoreboardProvider fetches a season's week count, whether the upstream has closed the
// season, and a single week's matchups.
type ScoreboardProvider interface {
	CurrentWeek(ctx context.Context, year int) (int, error)
	SeasonFinished(ctx context.Context, year int) (bool, error)
	Scoreboard(ctx context.Context, year, week int) ([]matchups.Matchup, error)
}

// ActivityProvider fetches recent league transactions for a season.
type ActivityProvider interface {
	RecentActivity(ctx context.Context, year, limit int) ([]activity.Activity, error)
}

// LeagueProvider combines all provider capabilities.
type LeagueProvider interface {
	ScoreboardProvider
	ActivityProvider
}
