package runner

import (
	"fmt"
	"log/slog"
	"strings"

	"fantasy-league-history/internal/config"
	"fantasy-league-history/internal/metrics"
	"fantasy-league-history/internal/providers"
	"fantasy-league-history/internal/providers/espn"
	"fantasy-league-history/internal/providers/fixture"
)

// providerFactory assembles the provider with shared wrappers (rate limit, breaker, retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

// build wraps base, or the provider named by cfg when base is nil. The retry layer is
// outermost so every attempt gets its own deadline and passes the rate limiter again.
func (f providerFactory) build(cfg config.Config, base providers.LeagueProvider) (providers.LeagueProvider, error) {
	if base == nil {
		selected, err := selectProvider(cfg)
		if err != nil {
			return nil, err
		}
		base = selected
	}
	name := normalizeProviderName(cfg.Provider, base)

	limited := providers.NewRateLimitedProvider(base, cfg.Fetch.RateInterval, f.logger, name)
	guarded := providers.NewBreakerProvider(limited, f.logger, providers.BreakerOptions{Provider: name})
	return providers.NewRetryingProvider(guarded, f.logger, f.metrics, providers.RetryOptions{
		Provider:    name,
		MaxAttempts: cfg.Fetch.Attempts,
		Timeout:     cfg.Fetch.Timeout,
		Backoff:     cfg.Fetch.Backoff,
	}), nil
}

func selectProvider(cfg config.Config) (providers.LeagueProvider, error) {
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderFixture:
		return fixture.New(), nil
	case config.ProviderESPN, "":
		return espn.NewClient(espn.Config{
			BaseURL:  cfg.ESPN.BaseURL,
			LeagueID: cfg.League.ID,
			S2:       cfg.League.S2,
			SWID:     cfg.League.SWID,
		}), nil
	default:
		return nil, &config.InvalidValueError{Key: config.KeyProvider, Value: cfg.Provider, Reason: "unknown provider"}
	}
}

// normalizeProviderName returns a lower-cased provider name for metrics and logs,
// deriving one from the instance when none is configured.
func normalizeProviderName(raw string, provider providers.LeagueProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
