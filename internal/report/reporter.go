package report

import (
	"fmt"
	"log/slog"

	"fantasy-league-history/internal/domain/matchups"
	"fantasy-league-history/internal/logging"
	"fantasy-league-history/internal/stats"
)

// Reporter computes each statistic, writes its block, and hands back the typed result.
type Reporter struct {
	engine *stats.Engine
	sink   Sink
	logger *slog.Logger
}

// NewReporter writes sections computed by engine into sink.
func NewReporter(engine *stats.Engine, sink Sink, logger *slog.Logger) *Reporter {
	return &Reporter{engine: engine, sink: sink, logger: logger}
}

func (r *Reporter) LowestWinningPointTotals(n int) ([]matchups.Record, error) {
	res := r.engine.LowestWinningPointTotals(n)
	return res, r.write("lowest_winning", lowestWinningBlock(n, res))
}

func (r *Reporter) HighestLosingPointTotals(n int) ([]matchups.Record, error) {
	res := r.engine.HighestLosingPointTotals(n)
	return res, r.write("highest_losing", highestLosingBlock(n, res))
}

func (r *Reporter) HighestScoresAllTime(n int, regularSeasonOnly bool) ([]stats.ScoreEntry, error) {
	res := r.engine.HighestScoresAllTime(n, regularSeasonOnly)
	header := fmt.Sprintf("Top %d highest scores ever recorded%s:", n, regularSeasonSuffix(regularSeasonOnly))
	return res, r.write("highest_all_time", scoresBlock(header, res))
}

func (r *Reporter) LowestScoresAllTime(n int, regularSeasonOnly bool) ([]stats.ScoreEntry, error) {
	res := r.engine.LowestScoresAllTime(n, regularSeasonOnly)
	header := fmt.Sprintf("Top %d lowest scores ever recorded%s:", n, regularSeasonSuffix(regularSeasonOnly))
	return res, r.write("lowest_all_time", scoresBlock(header, res))
}

func (r *Reporter) ClosestGames(n int) ([]matchups.Record, error) {
	res := r.engine.ClosestGames(n)
	return res, r.write("closest_games", closestGamesBlock(n, res))
}

func (r *Reporter) LifetimeTopScorers(n int, regularSeasonOnly bool) (stats.LifetimeResult, error) {
	res := r.engine.LifetimeTopScorers(n, regularSeasonOnly)
	return res, r.write("lifetime", lifetimeBlocks(res)...)
}

func (r *Reporter) SeasonPointsAllowed(startYear, endYear, n int, regularSeasonOnly bool) (stats.SeasonRanking, error) {
	res := r.engine.SeasonPointsAllowed(startYear, endYear, n, regularSeasonOnly)
	return res, r.write("points_allowed", pointsAllowedBlocks(startYear, endYear, res)...)
}

func (r *Reporter) Streaks(n int, regularSeasonOnly bool) (stats.StreakResult, error) {
	res := r.engine.Streaks(n, regularSeasonOnly)
	return res, r.write("streaks", streakBlocks(n, regularSeasonOnly, res)...)
}

func (r *Reporter) PointsScored(n int, regularSeasonOnly bool) (stats.SeasonRanking, error) {
	res := r.engine.PointsScored(n, regularSeasonOnly)
	return res, r.write("points_scored", pointsScoredBlocks(n, res)...)
}

func (r *Reporter) ActivityLeaders(n int) ([]stats.ActivityLeader, error) {
	res := r.engine.ActivityLeaders(n)
	return res, r.write("activity", activityBlock(n, res))
}

func (r *Reporter) write(section string, blocks ...Block) error {
	if r.sink == nil {
		return fmt.Errorf("report %s: no sink configured", section)
	}
	lines := 0
	for _, b := range blocks {
		if err := r.sink.WriteBlock(b); err != nil {
			return fmt.Errorf("report %s: %w", section, err)
		}
		lines += len(b.Lines)
	}
	logging.Debug(r.logger, "report section written",
		slog.String(logging.FieldSection, section),
		slog.Int(logging.FieldCount, lines),
	)
	return nil
}
