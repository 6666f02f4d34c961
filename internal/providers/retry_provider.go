package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"fantasy-league-history/internal/domain/activity"
	"fantasy-league-history/internal/domain/matchups"
	"fantasy-league-history/internal/logging"
	"fantasy-league-history/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	defaultTimeout       = 30 * time.Second
)

// newBackOff is swapped in tests to avoid real sleeps.
var newBackOff = func(initial time.Duration) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initial
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// RetryOptions tunes NewRetryingProvider. Zero values fall back to defaults.
type RetryOptions struct {
	Provider    string
	MaxAttempts int
	Timeout     time.Duration
	Backoff     time.Duration
}

// retryingProvider wraps a LeagueProvider with per-attempt deadlines and retry/backoff behavior.
type retryingProvider struct {
	inner       LeagueProvider
	logger      *slog.Logger
	recorder    *metrics.Recorder
	provider    string
	maxAttempts int
	timeout     time.Duration
	backoff     time.Duration
}

// NewRetryingProvider wraps the given provider with retries. Each attempt gets its own timeout;
// only timeouts and rate limits are retried.
func NewRetryingProvider(inner LeagueProvider, logger *slog.Logger, recorder *metrics.Recorder, opts RetryOptions) LeagueProvider {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultRetryAttempts
	}
	if opts.Backoff <= 0 {
		opts.Backoff = defaultBackoff
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		provider:    opts.Provider,
		maxAttempts: opts.MaxAttempts,
		timeout:     opts.Timeout,
		backoff:     opts.Backoff,
	}
}

func (r *retryingProvider) CurrentWeek(ctx context.Context, year int) (int, error) {
	return retry(ctx, r, OpCurrentWeek, year, 0, func(ctx context.Context) (int, error) {
		return r.inner.CurrentWeek(ctx, year)
	})
}

func (r *retryingProvider) SeasonFinished(ctx context.Context, year int) (bool, error) {
	return retry(ctx, r, OpSeasonFinished, year, 0, func(ctx context.Context) (bool, error) {
		return r.inner.SeasonFinished(ctx, year)
	})
}

func (r *retryingProvider) Scoreboard(ctx context.Context, year, week int) ([]matchups.Matchup, error) {
	return retry(ctx, r, OpScoreboard, year, week, func(ctx context.Context) ([]matchups.Matchup, error) {
		return r.inner.Scoreboard(ctx, year, week)
	})
}

func (r *retryingProvider) RecentActivity(ctx context.Context, year, limit int) ([]activity.Activity, error) {
	return retry(ctx, r, OpRecentActivity, year, 0, func(ctx context.Context) ([]activity.Activity, error) {
		return r.inner.RecentActivity(ctx, year, limit)
	})
}

func retry[T any](ctx context.Context, r *retryingProvider, op string, year, week int, call func(context.Context) (T, error)) (T, error) {
	var zero T
	if r.inner == nil {
		return zero, ErrProviderUnavailable
	}

	bo := newBackOff(r.backoff)
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, r.timeout)
		start := time.Now()
		value, err := call(attemptCtx)
		cancel()
		r.recorder.RecordProviderAttempt(r.provider, op, time.Since(start), err)
		if err == nil {
			return value, nil
		}
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		lastErr = err

		timedOut := IsTimeout(err)
		rlErr, limited := AsRateLimitError(err)
		switch {
		case timedOut:
			r.recorder.RecordTimeout(r.provider, op)
		case limited:
			r.recorder.RecordRateLimit(r.provider, rlErr.RetryAfter)
		default:
			return zero, err
		}

		if attempt == r.maxAttempts {
			break
		}

		delay := bo.NextBackOff()
		if limited && rlErr.RetryAfter > 0 {
			delay = rlErr.RetryAfter
		}
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.provider, "provider fetch retry",
			slog.String("operation", op),
			slog.Int(logging.FieldYear, year),
			slog.Int(logging.FieldWeek, week),
			slog.Int(logging.FieldAttempt, attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelError, r.provider, "provider fetch failed",
		slog.String("operation", op),
		slog.Int(logging.FieldYear, year),
		slog.Int(logging.FieldWeek, week),
		slog.Int("attempts", r.maxAttempts),
		slog.Any("error", lastErr),
	)
	if IsTimeout(lastErr) {
		return zero, &FetchTimeoutError{Operation: op, Year: year, Week: week, Attempts: r.maxAttempts, Timeout: r.timeout}
	}
	return zero, lastErr
}
