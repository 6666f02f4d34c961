package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fantasy-league-history/internal/domain/activity"
	"fantasy-league-history/internal/domain/matchups"
	"fantasy-league-history/internal/logging"
	"fantasy-league-history/internal/metrics"
	"fantasy-league-history/internal/providers"
	"fantasy-league-history/internal/store"
	"fantasy-league-history/internal/timeutil"
)

// SeasonCache loads finished seasons from the snapshot cache.
type SeasonCache interface {
	HasSeason(year int) bool
	LoadSeason(year int) (matchups.Season, error)
}

// SeasonWriter persists finished seasons to the snapshot cache.
type SeasonWriter interface {
	WriteSeason(season matchups.Season) error
}

// Options tunes a Collector. Cache and Writer are optional.
type Options struct {
	TiePolicy          matchups.TiePolicy
	SkipInProgressWeek bool
	Cache              SeasonCache
	Writer             SeasonWriter
}

// Result holds every collected record and the regular-season subset, both in collection order.
type Result struct {
	All           []matchups.Record
	RegularSeason []matchups.Record
}

// Progress describes what the last Collect call did.
type Progress struct {
	Years       int
	Weeks       int
	Records     int
	CachedYears int
	LastYear    int
	LastWeek    int
}

// Collector walks seasons and weeks sequentially and turns scoreboards into records.
type Collector struct {
	provider providers.LeagueProvider
	store    *store.MemoryStore
	cache    SeasonCache
	writer   SeasonWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	policy   matchups.TiePolicy
	skipLive bool
	now      func() time.Time

	progressMu sync.RWMutex
	progress   Progress
}

// New constructs a Collector writing into st.
func New(provider providers.LeagueProvider, st *store.MemoryStore, logger *slog.Logger, recorder *metrics.Recorder, opts Options) *Collector {
	if st == nil {
		st = store.NewMemoryStore()
	}
	policy := opts.TiePolicy
	if policy == "" {
		policy = matchups.TieAwayWins
	}
	return &Collector{
		provider: provider,
		store:    st,
		cache:    opts.Cache,
		writer:   opts.Writer,
		logger:   logger,
		metrics:  recorder,
		policy:   policy,
		skipLive: opts.SkipInProgressWeek,
		now:      time.Now,
	}
}

// Collect gathers every matchup from startYear through endYear inclusive. Any fetch error
// aborts the run and is wrapped with the year and week it happened on.
func (c *Collector) Collect(ctx context.Context, startYear, endYear int) (Result, error) {
	if startYear > endYear {
		return Result{}, fmt.Errorf("start year %d is after end year %d", startYear, endYear)
	}
	if c.provider == nil {
		return Result{}, providers.ErrProviderUnavailable
	}

	start := time.Now()
	for _, year := range timeutil.Years(startYear, endYear) {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		logging.Info(c.logger, "processing season", slog.Int(logging.FieldYear, year))

		season, cached, err := c.season(ctx, year)
		if err != nil {
			return Result{}, err
		}
		count := c.record(season)
		c.trackYear(year, cached)
		logging.Info(c.logger, "season collected",
			slog.Int(logging.FieldYear, year),
			slog.Int(logging.FieldCount, count),
			slog.Bool("cached", cached),
		)
	}

	result := Result{
		All:           c.store.All(),
		RegularSeason: c.store.RegularSeason(),
	}
	logging.Info(c.logger, "collection finished",
		slog.Int(logging.FieldCount, len(result.All)),
		slog.Int("regular_season", len(result.RegularSeason)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return result, nil
}

// CollectActivities fetches recent activity per season. Failures are logged and the season skipped.
func (c *Collector) CollectActivities(ctx context.Context, startYear, endYear, limit int) ([]activity.Activity, error) {
	if c.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	for _, year := range timeutil.Years(startYear, endYear) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items, err := c.provider.RecentActivity(ctx, year, limit)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logging.Warn(c.logger, "skipping season activity",
				slog.Int(logging.FieldYear, year),
				slog.String("reason", activityFailure(err)),
				slog.Any("error", err),
			)
			continue
		}
		c.store.AppendActivities(items...)
		args := []any{slog.Int(logging.FieldYear, year), slog.Int(logging.FieldCount, len(items))}
		if len(items) > 0 {
			args = append(args, slog.String("latest", timeutil.FormatDate(items[0].Date)))
		}
		logging.Info(c.logger, "season activity collected", args...)
	}
	return c.store.Activities(), nil
}

// Status returns a snapshot of the collector's progress.
func (c *Collector) Status() Progress {
	c.progressMu.RLock()
	defer c.progressMu.RUnlock()
	return c.progress
}

// Store exposes the record store the collector writes into.
func (c *Collector) Store() *store.MemoryStore {
	return c.store
}

// season returns the raw scoreboards of year. Snapshots are only read for past calendar
// years and only written once the upstream reports the season finished.
func (c *Collector) season(ctx context.Context, year int) (matchups.Season, bool, error) {
	completed := timeutil.IsCompletedSeason(year, c.now())
	if completed && c.cache != nil && c.cache.HasSeason(year) {
		season, err := c.cache.LoadSeason(year)
		if err == nil {
			return season, true, nil
		}
		logging.Warn(c.logger, "season snapshot unreadable", slog.Int(logging.FieldYear, year), slog.Any("error", err))
	}

	finished := false
	if completed {
		var err error
		finished, err = c.provider.SeasonFinished(ctx, year)
		if err != nil {
			return matchups.Season{}, false, fmt.Errorf("collect %d: season status: %w", year, err)
		}
	}

	season, err := c.fetchSeason(ctx, year, !finished)
	if err != nil {
		return matchups.Season{}, false, err
	}
	switch {
	case c.writer == nil || !completed:
	case !finished:
		logging.Info(c.logger, "season not finished upstream, snapshot deferred", slog.Int(logging.FieldYear, year))
	default:
		if err := c.writer.WriteSeason(season); err != nil {
			logging.Error(c.logger, "season snapshot write failed", err, slog.Int(logging.FieldYear, year))
		}
	}
	return season, false, nil
}

func (c *Collector) fetchSeason(ctx context.Context, year int, open bool) (matchups.Season, error) {
	currentWeek, err := c.provider.CurrentWeek(ctx, year)
	if err != nil {
		return matchups.Season{}, fmt.Errorf("collect %d: current week: %w", year, err)
	}

	season := matchups.Season{Year: year, Weeks: make([]matchups.Week, 0, currentWeek)}
	for week := 1; week <= currentWeek; week++ {
		if c.skipLive && timeutil.IsInProgressWeek(week, currentWeek, open) {
			logging.Info(c.logger, "skipping in-progress week", slog.Int(logging.FieldYear, year), slog.Int(logging.FieldWeek, week))
			continue
		}
		weekCtx := logging.WithLogger(ctx, c.weekLogger(year, week))
		games, err := c.provider.Scoreboard(weekCtx, year, week)
		if err != nil {
			return matchups.Season{}, fmt.Errorf("collect %d week %d: %w", year, week, err)
		}
		logging.Debug(c.logger, "week fetched",
			slog.Int(logging.FieldYear, year),
			slog.Int(logging.FieldWeek, week),
			slog.Int(logging.FieldCount, len(games)),
		)
		season.Weeks = append(season.Weeks, matchups.Week{Number: week, Matchups: games})
	}
	return season, nil
}

// record converts a season into records, appending them to the store in week order.
func (c *Collector) record(season matchups.Season) int {
	total := 0
	for _, week := range season.Weeks {
		records := make([]matchups.Record, 0, len(week.Matchups))
		for _, m := range week.Matchups {
			rec, ok := matchups.NewRecord(m, week.Number, season.Year, c.policy)
			if !ok {
				logging.Debug(c.logger, "dropping tied matchup", slog.Int(logging.FieldYear, season.Year), slog.Int(logging.FieldWeek, week.Number))
				continue
			}
			records = append(records, rec)
		}
		c.store.Append(records...)
		c.metrics.RecordWeekCollected(season.Year, len(records))
		c.trackWeek(season.Year, week.Number, len(records))
		total += len(records)
	}
	return total
}

func (c *Collector) weekLogger(year, week int) *slog.Logger {
	if c.logger == nil {
		return nil
	}
	return c.logger.With(slog.Int(logging.FieldYear, year), slog.Int(logging.FieldWeek, week))
}

func (c *Collector) trackYear(year int, cached bool) {
	c.progressMu.Lock()
	defer c.progressMu.Unlock()
	c.progress.Years++
	c.progress.LastYear = year
	if cached {
		c.progress.CachedYears++
	}
}

func (c *Collector) trackWeek(year, week, records int) {
	c.progressMu.Lock()
	defer c.progressMu.Unlock()
	c.progress.Weeks++
	c.progress.Records += records
	c.progress.LastYear = year
	c.progress.LastWeek = week
}

func activityFailure(err error) string {
	var timeoutErr *providers.FetchTimeoutError
	var invalid *providers.InvalidLeagueError
	switch {
	case errors.As(err, &timeoutErr), providers.IsTimeout(err):
		return "timeout"
	case errors.As(err, &invalid):
		return "invalid league"
	default:
		return "fetch error"
	}
}
