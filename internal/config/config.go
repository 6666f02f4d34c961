package config

import (
	"strings"
	"time"
)

// Config holds runtime configuration for an analyzer run.
type Config struct {
	Provider   string
	League     LeagueConfig
	ESPN       ESPNConfig
	Collection CollectionConfig
	Fetch      FetchConfig
	Report     ReportConfig
	Snapshots  SnapshotConfig
	Log        LogConfig
	Metrics    MetricsConfig
}

// CollectionConfig controls which seasons are walked and how raw matchups become records.
type CollectionConfig struct {
	StartYear          int
	EndYear            int
	SkipInProgressWeek bool
	TiePolicy          string
	ActivityEnabled    bool
	ActivityLimit      int
}

// FetchConfig bounds every upstream call.
type FetchConfig struct {
	Timeout      time.Duration
	Attempts     int
	Backoff      time.Duration
	RateInterval time.Duration
}

// ReportConfig controls the text report.
type ReportConfig struct {
	Path                   string
	TopN                   int
	LifetimeTopN           int
	PointsAllowedStartYear int
	PointsAllowedEndYear   int
}

// SnapshotConfig controls the on-disk cache of completed seasons.
type SnapshotConfig struct {
	Enabled bool
	Dir     string
}

// LogConfig controls log output.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads configuration from environment variables with sensible defaults.
// Missing league credentials are reported before anything touches the network.
func Load() (Config, error) {
	return loadAt(time.Now())
}

func loadAt(now time.Time) (Config, error) {
	cfg := Config{
		Provider:   strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		League:     loadLeague(),
		ESPN:       loadESPN(),
		Collection: loadCollection(now),
		Fetch: FetchConfig{
			Timeout:      durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
			Attempts:     intEnvOrDefault(envFetchAttempts, defaultFetchAttempts),
			Backoff:      durationEnvOrDefault(envFetchBackoff, defaultFetchBackoff),
			RateInterval: durationEnvOrDefault(envRateInterval, defaultRateInterval),
		},
		Snapshots: SnapshotConfig{
			Enabled: boolEnvOrDefault(envSnapshotCache, defaultSnapshotCache),
			Dir:     envOrDefault(envSnapshotDir, defaultSnapshotDir),
		},
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, "info"),
			Format: envOrDefault(envLogFormat, "text"),
			File:   envOrDefault(envLogFile, defaultLogFile),
		},
		Metrics: loadMetrics(),
	}
	cfg.Report = loadReport(cfg.Collection)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadCollection(now time.Time) CollectionConfig {
	return CollectionConfig{
		StartYear:          intEnvOrDefault(envStartYear, defaultStartYear),
		EndYear:            intEnvOrDefault(envEndYear, now.Year()),
		SkipInProgressWeek: boolEnvOrDefault(envSkipInProgressWeek, defaultSkipInProgressWeek),
		TiePolicy:          envOrDefault(envTiePolicy, defaultTiePolicy),
		ActivityEnabled:    boolEnvOrDefault(envActivityEnabled, false),
		ActivityLimit:      intEnvOrDefault(envActivityLimit, defaultActivityLimit),
	}
}

func loadReport(collection CollectionConfig) ReportConfig {
	return ReportConfig{
		Path:                   envOrDefault(envReportPath, defaultReportPath),
		TopN:                   intEnvOrDefault(envReportTopN, defaultReportTopN),
		LifetimeTopN:           intEnvOrDefault(envLifetimeTopN, 0),
		PointsAllowedStartYear: intEnvOrDefault(envAllowedStartYear, collection.StartYear),
		PointsAllowedEndYear:   intEnvOrDefault(envAllowedEndYear, collection.EndYear),
	}
}

// Validate checks credentials and ranges.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderESPN:
		if missing := c.League.missing(); len(missing) > 0 {
			return &MissingCredentialsError{Missing: missing}
		}
	case ProviderFixture:
	default:
		return &InvalidValueError{Key: envProvider, Value: c.Provider, Reason: "expected espn or fixture"}
	}
	switch strings.ToLower(strings.TrimSpace(c.Collection.TiePolicy)) {
	case "away", "home", "skip":
	default:
		return &InvalidValueError{Key: envTiePolicy, Value: c.Collection.TiePolicy, Reason: "expected away, home or skip"}
	}
	if c.Collection.StartYear > c.Collection.EndYear {
		return &InvalidValueError{Key: envStartYear, Value: itoa(c.Collection.StartYear), Reason: "start year after end year " + itoa(c.Collection.EndYear)}
	}
	return nil
}
