package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	timeouts        int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type collectionStats struct {
	weeks   int
	records int
}

// Recorder captures lightweight, in-memory metrics about provider calls and collection
// progress, mirroring everything into otel instruments when telemetry is on.
type Recorder struct {
	mu         sync.Mutex
	stats      map[string]*providerStats
	collection collectionStats
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider, operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, operation, duration, err)
	}
}

// RecordTimeout tracks an attempt that ran past its per-call deadline.
func (r *Recorder) RecordTimeout(provider, operation string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStats(provider).timeouts++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTimeout(provider, operation)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordWeekCollected tracks one scoreboard week turned into records.
func (r *Recorder) RecordWeekCollected(year, records int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.collection.weeks++
	r.collection.records += records
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordWeek(year, records)
	}
}

// RecordRun tracks the duration and outcome of a whole analyzer run.
func (r *Recorder) RecordRun(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRun(duration, err)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// ProviderTimeouts returns the number of timed-out attempts for a provider.
func (r *Recorder) ProviderTimeouts(provider string) int {
	return r.Snapshot(provider).Timeouts
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// WeeksCollected returns how many scoreboard weeks were collected.
func (r *Recorder) WeeksCollected() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collection.weeks
}

// RecordsCollected returns how many matchup records were collected.
func (r *Recorder) RecordsCollected() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collection.records
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	Timeouts        int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Timeouts:        stats.timeouts,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
