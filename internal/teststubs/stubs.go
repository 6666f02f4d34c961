package teststubs

import (
	"context"
	"errors"
	"sync/atomic"

	"fantasy-league-history/internal/domain/activity"
	"fantasy-league-history/internal/domain/matchups"
)

// ErrNotFound is returned by StubProvider for seasons or weeks it was not given.
var ErrNotFound = errors.New("stub: not found")

// StubProvider is a test double for providers.LeagueProvider. Maps are keyed by year
// (and week for scoreboards); the *Fn hooks override the maps when set.
type StubProvider struct {
	Weeks       map[int]int
	Unfinished  map[int]bool
	Scoreboards map[int]map[int][]matchups.Matchup
	Activities  map[int][]activity.Activity
	Err         error

	CurrentWeekFn    func(ctx context.Context, year int) (int, error)
	SeasonFinishedFn func(ctx context.Context, year int) (bool, error)
	ScoreboardFn     func(ctx context.Context, year, week int) ([]matchups.Matchup, error)
	RecentActivityFn func(ctx context.Context, year, limit int) ([]activity.Activity, error)

	WeekCalls       atomic.Int32
	FinishedCalls   atomic.Int32
	ScoreboardCalls atomic.Int32
	ActivityCalls   atomic.Int32
}

// CurrentWeek returns the configured week for the year while tracking calls.
func (s *StubProvider) CurrentWeek(ctx context.Context, year int) (int, error) {
	s.WeekCalls.Add(1)
	if s.CurrentWeekFn != nil {
		return s.CurrentWeekFn(ctx, year)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	week, ok := s.Weeks[year]
	if !ok {
		return 0, ErrNotFound
	}
	return week, nil
}

// SeasonFinished reports seasons as finished unless they are marked in Unfinished.
func (s *StubProvider) SeasonFinished(ctx context.Context, year int) (bool, error) {
	s.FinishedCalls.Add(1)
	if s.SeasonFinishedFn != nil {
		return s.SeasonFinishedFn(ctx, year)
	}
	if s.Err != nil {
		return false, s.Err
	}
	return !s.Unfinished[year], nil
}

// Scoreboard returns the configured matchups for the week while tracking calls.
func (s *StubProvider) Scoreboard(ctx context.Context, year, week int) ([]matchups.Matchup, error) {
	s.ScoreboardCalls.Add(1)
	if s.ScoreboardFn != nil {
		return s.ScoreboardFn(ctx, year, week)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	weeks, ok := s.Scoreboards[year]
	if !ok {
		return nil, ErrNotFound
	}
	return weeks[week], nil
}

// RecentActivity returns the configured activity for the year while tracking calls.
func (s *StubProvider) RecentActivity(ctx context.Context, year, limit int) ([]activity.Activity, error) {
	s.ActivityCalls.Add(1)
	if s.RecentActivityFn != nil {
		return s.RecentActivityFn(ctx, year, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	items := s.Activities[year]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// BlockUntilDone waits for ctx to finish and returns its error; plug it into a *Fn hook
// to simulate an upstream call that never answers.
func BlockUntilDone(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

// StubSeasonStore is a test double for the collector's season cache.
type StubSeasonStore struct {
	Seasons map[int]matchups.Season
	LoadErr error
	Loads   atomic.Int32
}

// HasSeason reports whether a season is configured for year.
func (s *StubSeasonStore) HasSeason(year int) bool {
	_, ok := s.Seasons[year]
	return ok || s.LoadErr != nil
}

// LoadSeason returns the cached season for year.
func (s *StubSeasonStore) LoadSeason(year int) (matchups.Season, error) {
	s.Loads.Add(1)
	if s.LoadErr != nil {
		return matchups.Season{}, s.LoadErr
	}
	season, ok := s.Seasons[year]
	if !ok {
		return matchups.Season{}, ErrNotFound
	}
	return season, nil
}

// StubSeasonWriter records written seasons for verification in tests.
type StubSeasonWriter struct {
	Written map[int]matchups.Season
	Err     error
}

// WriteSeason records the season for verification in tests.
func (w *StubSeasonWriter) WriteSeason(season matchups.Season) error {
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[int]matchups.Season)
	}
	w.Written[season.Year] = season
	return nil
}
