package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"fantasy-league-history/internal/domain/activity"
	"fantasy-league-history/internal/domain/matchups"
)

const (
	defaultBreakerFailures = 5
	defaultBreakerCooldown = 30 * time.Second
)

// BreakerOptions tunes NewBreakerProvider. Zero values fall back to defaults.
type BreakerOptions struct {
	Provider            string
	ConsecutiveFailures uint32
	Cooldown            time.Duration
}

// breakerProvider fails fast once the upstream keeps failing.
type breakerProvider struct {
	next    LeagueProvider
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps next in a circuit breaker. Timeouts, cancellations, and
// league/credential errors never count as failures.
func NewBreakerProvider(next LeagueProvider, logger *slog.Logger, opts BreakerOptions) LeagueProvider {
	if opts.ConsecutiveFailures == 0 {
		opts.ConsecutiveFailures = defaultBreakerFailures
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = defaultBreakerCooldown
	}
	settings := gobreaker.Settings{
		Name:        opts.Provider,
		MaxRequests: 1,
		Timeout:     opts.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || IsTimeout(err) || IsPermanent(err) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logWithProvider(context.Background(), logger, slog.LevelWarn, name, "circuit breaker state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
	return &breakerProvider{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (p *breakerProvider) CurrentWeek(ctx context.Context, year int) (int, error) {
	return execute(p, func() (int, error) {
		return p.next.CurrentWeek(ctx, year)
	})
}

func (p *breakerProvider) SeasonFinished(ctx context.Context, year int) (bool, error) {
	return execute(p, func() (bool, error) {
		return p.next.SeasonFinished(ctx, year)
	})
}

func (p *breakerProvider) Scoreboard(ctx context.Context, year, week int) ([]matchups.Matchup, error) {
	return execute(p, func() ([]matchups.Matchup, error) {
		return p.next.Scoreboard(ctx, year, week)
	})
}

func (p *breakerProvider) RecentActivity(ctx context.Context, year, limit int) ([]activity.Activity, error) {
	return execute(p, func() ([]activity.Activity, error) {
		return p.next.RecentActivity(ctx, year, limit)
	})
}

func execute[T any](p *breakerProvider, call func() (T, error)) (T, error) {
	var zero T
	if p.next == nil {
		return zero, ErrProviderUnavailable
	}
	out, err := p.breaker.Execute(func() (interface{}, error) {
		return call()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
		}
		return zero, err
	}
	return out.(T), nil
}

// State exposes the breaker state for logging and tests.
func (p *breakerProvider) State() gobreaker.State {
	return p.breaker.State()
}
