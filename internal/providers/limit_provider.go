package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"fantasy-league-history/internal/domain/activity"
	"fantasy-league-history/internal/domain/matchups"
)

const defaultRateInterval = 250 * time.Millisecond

// rateLimitedProvider wraps a LeagueProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     LeagueProvider
	interval time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger
	provider string
}

// NewRateLimitedProvider returns a LeagueProvider that limits calls to one per interval.
// Calls block until a token is available or ctx is done.
func NewRateLimitedProvider(next LeagueProvider, interval time.Duration, logger *slog.Logger, provider string) LeagueProvider {
	if interval <= 0 {
		interval = defaultRateInterval
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		logger:   logger,
		provider: provider,
	}
}

func (p *rateLimitedProvider) CurrentWeek(ctx context.Context, year int) (int, error) {
	if err := p.wait(ctx, OpCurrentWeek); err != nil {
		return 0, err
	}
	return p.next.CurrentWeek(ctx, year)
}

func (p *rateLimitedProvider) SeasonFinished(ctx context.Context, year int) (bool, error) {
	if err := p.wait(ctx, OpSeasonFinished); err != nil {
		return false, err
	}
	return p.next.SeasonFinished(ctx, year)
}

func (p *rateLimitedProvider) Scoreboard(ctx context.Context, year, week int) ([]matchups.Matchup, error) {
	if err := p.wait(ctx, OpScoreboard); err != nil {
		return nil, err
	}
	return p.next.Scoreboard(ctx, year, week)
}

func (p *rateLimitedProvider) RecentActivity(ctx context.Context, year, limit int) ([]activity.Activity, error) {
	if err := p.wait(ctx, OpRecentActivity); err != nil {
		return nil, err
	}
	return p.next.RecentActivity(ctx, year, limit)
}

func (p *rateLimitedProvider) wait(ctx context.Context, op string) error {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.provider, "provider unavailable", slog.String("operation", op))
		return ErrProviderUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelDebug, p.provider, "rate-limited fetch canceled", slog.String("operation", op))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// Wait fails early when the deadline is shorter than the next token.
		return context.DeadlineExceeded
	}
	return nil
}
