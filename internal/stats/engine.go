// Package stats ranks and aggregates collected matchup records. Every query is a pure read
// over the records the Engine was built with; repeated calls return identical results.
package stats

import (
	"sort"
	"time"

	"fantasy-league-history/internal/domain/activity"
	"fantasy-league-history/internal/domain/matchups"
)

// Source is the record set an Engine reads from, in collection order.
type Source struct {
	All           []matchups.Record
	RegularSeason []matchups.Record
	Activities    []activity.Activity
}

// Option customises an Engine.
type Option func(*Engine)

// WithClock overrides the clock used to find the in-progress season.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// Engine answers statistics queries over an immutable record set.
type Engine struct {
	all        []matchups.Record
	regular    []matchups.Record
	activities []activity.Activity
	now        func() time.Time
}

// NewEngine copies src so later changes by the caller cannot leak into results.
func NewEngine(src Source, opts ...Option) *Engine {
	e := &Engine{
		all:        append([]matchups.Record(nil), src.All...),
		regular:    append([]matchups.Record(nil), src.RegularSeason...),
		activities: append([]activity.Activity(nil), src.Activities...),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Len returns the number of records across all matchups.
func (e *Engine) Len() int {
	return len(e.all)
}

func (e *Engine) records(regularSeasonOnly bool) []matchups.Record {
	if regularSeasonOnly {
		return e.regular
	}
	return e.all
}

// sortedCopy returns a stably sorted copy of records.
func sortedCopy(records []matchups.Record, less func(a, b matchups.Record) bool) []matchups.Record {
	out := append([]matchups.Record(nil), records...)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func take[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n:n]
}
