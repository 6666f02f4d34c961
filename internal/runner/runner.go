// Package runner wires one analyzer run: collect league history, compute the statistics,
// and write the report.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fantasy-league-history/internal/collector"
	"fantasy-league-history/internal/config"
	"fantasy-league-history/internal/domain/activity"
	"fantasy-league-history/internal/domain/matchups"
	"fantasy-league-history/internal/logging"
	"fantasy-league-history/internal/metrics"
	"fantasy-league-history/internal/providers"
	"fantasy-league-history/internal/report"
	"fantasy-league-history/internal/snapshots"
	"fantasy-league-history/internal/stats"
	"fantasy-league-history/internal/store"
)

var metricsSetup = metrics.Setup

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// Runner executes a single batch run.
type Runner struct {
	cfg    config.Config
	logger *slog.Logger
	runID  string
	base   providers.LeagueProvider
	sink   report.Sink
	now    func() time.Time
}

// New constructs a runner that talks to the configured provider and writes the report file.
func New(cfg config.Config, logger *slog.Logger) *Runner {
	return newRunner(cfg, logger, nil, nil)
}

// newRunner is used by tests to inject a base provider and a report sink.
func newRunner(cfg config.Config, logger *slog.Logger, base providers.LeagueProvider, sink report.Sink) *Runner {
	runID := uuid.NewString()
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldRunID, runID))
	}
	if sink == nil {
		sink = report.NewFileWriter(cfg.Report.Path)
	}
	return &Runner{
		cfg:    cfg,
		logger: logger,
		runID:  runID,
		base:   base,
		sink:   sink,
		now:    time.Now,
	}
}

// RunID identifies this run in logs.
func (r *Runner) RunID() string {
	return r.runID
}

// Run collects every configured season and writes the report. Collection failures abort
// the run before anything is written.
func (r *Runner) Run(ctx context.Context) (err error) {
	start := time.Now()
	recorder, stopMetrics := r.buildMetrics(ctx)
	defer func() {
		recorder.RecordRun(time.Since(start), err)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if stopErr := stopMetrics(shutdownCtx); stopErr != nil {
			logging.Warn(r.logger, "metrics shutdown failed", "error", stopErr)
		}
		if err != nil {
			logging.Error(r.logger, "run failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
			return
		}
		logging.Info(r.logger, "run complete", slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
	}()

	provider, err := newProviderFactory(r.logger, recorder).build(r.cfg, r.base)
	if err != nil {
		return err
	}

	snaps := buildSnapshots(r.cfg)
	col := collector.New(provider, store.NewMemoryStore(), r.logger, recorder, collector.Options{
		TiePolicy:          matchups.ParseTiePolicy(r.cfg.Collection.TiePolicy),
		SkipInProgressWeek: r.cfg.Collection.SkipInProgressWeek,
		Cache:              snaps.store,
		Writer:             snaps.writer,
	})

	logging.Info(r.logger, "collecting league history",
		slog.String(logging.FieldProvider, normalizeProviderName(r.cfg.Provider, provider)),
		slog.Int("start_year", r.cfg.Collection.StartYear),
		slog.Int("end_year", r.cfg.Collection.EndYear),
	)
	result, err := col.Collect(ctx, r.cfg.Collection.StartYear, r.cfg.Collection.EndYear)
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}

	var activities []activity.Activity
	if r.cfg.Collection.ActivityEnabled {
		activities, err = col.CollectActivities(ctx, r.cfg.Collection.StartYear, r.cfg.Collection.EndYear, r.cfg.Collection.ActivityLimit)
		if err != nil {
			return fmt.Errorf("collect activity: %w", err)
		}
	}

	engine := stats.NewEngine(stats.Source{
		All:           result.All,
		RegularSeason: result.RegularSeason,
		Activities:    activities,
	}, stats.WithClock(r.now))
	if err := r.writeReport(report.NewReporter(engine, r.sink, r.logger)); err != nil {
		return err
	}

	r.logCache(snaps.base)
	progress := col.Status()
	logging.Info(r.logger, "report written",
		slog.String(logging.FieldPath, r.cfg.Report.Path),
		slog.Int(logging.FieldCount, engine.Len()),
		slog.Int("coaches", len(col.Store().Coaches())),
		slog.Int("weeks", progress.Weeks),
		slog.Int("cached_years", progress.CachedYears),
	)
	return nil
}

// writeReport emits every section in report order and stops at the first write failure.
func (r *Runner) writeReport(rep *report.Reporter) error {
	n := r.cfg.Report.TopN
	sections := []func() error{
		func() error { _, err := rep.LowestWinningPointTotals(n); return err },
		func() error { _, err := rep.HighestLosingPointTotals(n); return err },
		func() error { _, err := rep.HighestScoresAllTime(n, false); return err },
		func() error { _, err := rep.LowestScoresAllTime(n, true); return err },
		func() error { _, err := rep.ClosestGames(n); return err },
		func() error { _, err := rep.LifetimeTopScorers(r.cfg.Report.LifetimeTopN, true); return err },
		func() error {
			_, err := rep.SeasonPointsAllowed(r.cfg.Report.PointsAllowedStartYear, r.cfg.Report.PointsAllowedEndYear, n, true)
			return err
		},
		func() error { _, err := rep.Streaks(n, true); return err },
		func() error { _, err := rep.PointsScored(n, true); return err },
	}
	if r.cfg.Collection.ActivityEnabled {
		sections = append(sections, func() error { _, err := rep.ActivityLeaders(n); return err })
	}
	for _, section := range sections {
		if err := section(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) buildMetrics(ctx context.Context) (*metrics.Recorder, func(context.Context) error) {
	rec, shutdown, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:        r.cfg.Metrics.Enabled,
		ServiceName:    r.cfg.Metrics.ServiceName,
		PushgatewayURL: r.cfg.Metrics.PushgatewayURL,
		OtlpEndpoint:   r.cfg.Metrics.OtlpEndpoint,
		OtlpInsecure:   r.cfg.Metrics.OtlpInsecure,
	})
	if err != nil || rec == nil {
		logging.Warn(r.logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), func(context.Context) error { return nil }
	}
	if shutdown == nil {
		shutdown = func(context.Context) error { return nil }
	}
	return rec, shutdown
}

func (r *Runner) logCache(base string) {
	if base == "" {
		return
	}
	m, err := snapshots.ReadManifest(base)
	if err != nil {
		logging.Warn(r.logger, "snapshot manifest unreadable", slog.String(logging.FieldPath, base), "error", err)
		return
	}
	logging.Info(r.logger, "snapshot cache",
		slog.String(logging.FieldPath, base),
		slog.Any("years", m.Seasons.Years),
	)
}
