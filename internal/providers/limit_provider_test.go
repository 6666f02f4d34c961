package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"fantasy-league-history/internal/teststubs"
)

func TestRateLimitedProviderSpacesCalls(t *testing.T) {
	inner := &teststubs.StubProvider{Weeks: map[int]int{2024: 14}}
	rl := NewRateLimitedProvider(inner, 20*time.Millisecond, nil, "stub")

	start := time.Now()
	for i := 0; i < 2; i++ {
		if _, err := rl.CurrentWeek(context.Background(), 2024); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("expected second call to wait for a token, elapsed %s", elapsed)
	}
	if inner.WeekCalls.Load() != 2 {
		t.Fatalf("expected inner provider called twice, got %d", inner.WeekCalls.Load())
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, time.Minute, nil, "stub")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.Scoreboard(ctx, 2024, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.ScoreboardCalls.Load() != 0 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderReportsShortDeadlineAsTimeout(t *testing.T) {
	inner := &teststubs.StubProvider{Weeks: map[int]int{2024: 14}}
	rl := NewRateLimitedProvider(inner, time.Hour, nil, "stub")
	if _, err := rl.CurrentWeek(context.Background(), 2024); err != nil {
		t.Fatalf("expected first call to pass, got %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := rl.CurrentWeek(ctx, 2024)
	if !IsTimeout(err) {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	rl := NewRateLimitedProvider(nil, time.Millisecond, nil, "stub")

	_, err := rl.RecentActivity(context.Background(), 2024, 10)
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDefaultsInterval(t *testing.T) {
	rl := NewRateLimitedProvider(&teststubs.StubProvider{}, 0, nil, "stub").(*rateLimitedProvider)
	if rl.interval != defaultRateInterval {
		t.Fatalf("expected default interval %s, got %s", defaultRateInterval, rl.interval)
	}
}
