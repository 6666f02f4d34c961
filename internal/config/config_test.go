package config

import (
	"errors"
	"testing"
	"time"
)

var fixedNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func clearCredentials(t *testing.T) {
	t.Helper()
	for _, key := range []string{envLeagueID, envEspnS2, envEspnSWID, legacyLeagueID, legacyEspnS2, legacySWID} {
		t.Setenv(key, "")
	}
}

func setCredentials(t *testing.T) {
	t.Helper()
	clearCredentials(t)
	t.Setenv(envLeagueID, "12345")
	t.Setenv(envEspnS2, "s2-cookie")
	t.Setenv(envEspnSWID, "{SWID}")
}

func TestLoadDefaults(t *testing.T) {
	setCredentials(t)

	cfg, err := loadAt(fixedNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Provider != ProviderESPN {
		t.Fatalf("expected default provider %s, got %s", ProviderESPN, cfg.Provider)
	}
	if cfg.ESPN.BaseURL != defaultEspnBaseURL {
		t.Fatalf("expected default espn base url, got %s", cfg.ESPN.BaseURL)
	}
	if cfg.Collection.StartYear != defaultStartYear || cfg.Collection.EndYear != 2025 {
		t.Fatalf("unexpected year range %d-%d", cfg.Collection.StartYear, cfg.Collection.EndYear)
	}
	if !cfg.Collection.SkipInProgressWeek {
		t.Fatalf("expected in-progress week to be skipped by default")
	}
	if cfg.Fetch.Timeout != defaultFetchTimeout || cfg.Fetch.Attempts != defaultFetchAttempts {
		t.Fatalf("unexpected fetch defaults %+v", cfg.Fetch)
	}
	if cfg.Report.Path != defaultReportPath || cfg.Report.TopN != defaultReportTopN {
		t.Fatalf("unexpected report defaults %+v", cfg.Report)
	}
	if cfg.Report.PointsAllowedStartYear != defaultStartYear || cfg.Report.PointsAllowedEndYear != 2025 {
		t.Fatalf("expected points-allowed window to follow collection range, got %+v", cfg.Report)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled by default")
	}
	if cfg.Log.File != defaultLogFile {
		t.Fatalf("expected default log file, got %s", cfg.Log.File)
	}
}

func TestLoadOverrides(t *testing.T) {
	setCredentials(t)
	t.Setenv(envStartYear, "2019")
	t.Setenv(envEndYear, "2021")
	t.Setenv(envFetchTimeout, "5s")
	t.Setenv(envFetchAttempts, "4")
	t.Setenv(envReportPath, "out/report.txt")
	t.Setenv(envReportTopN, "10")
	t.Setenv(envAllowedStartYear, "2020")
	t.Setenv(envTiePolicy, "skip")
	t.Setenv(envActivityEnabled, "true")
	t.Setenv(envPushgatewayURL, "http://push:9091")

	cfg, err := loadAt(fixedNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Collection.StartYear != 2019 || cfg.Collection.EndYear != 2021 {
		t.Fatalf("unexpected year range %+v", cfg.Collection)
	}
	if cfg.Fetch.Timeout != 5*time.Second || cfg.Fetch.Attempts != 4 {
		t.Fatalf("unexpected fetch config %+v", cfg.Fetch)
	}
	if cfg.Report.Path != "out/report.txt" || cfg.Report.TopN != 10 {
		t.Fatalf("unexpected report config %+v", cfg.Report)
	}
	if cfg.Report.PointsAllowedStartYear != 2020 || cfg.Report.PointsAllowedEndYear != 2021 {
		t.Fatalf("unexpected points-allowed window %+v", cfg.Report)
	}
	if cfg.Collection.TiePolicy != "skip" || !cfg.Collection.ActivityEnabled {
		t.Fatalf("unexpected collection config %+v", cfg.Collection)
	}
	if cfg.Metrics.PushgatewayURL != "http://push:9091" {
		t.Fatalf("expected pushgateway override, got %s", cfg.Metrics.PushgatewayURL)
	}
}

func TestLoadAcceptsLegacyCredentialNames(t *testing.T) {
	clearCredentials(t)
	t.Setenv(legacyLeagueID, "999")
	t.Setenv(legacyEspnS2, "legacy-s2")
	t.Setenv(legacySWID, "{LEGACY}")

	cfg, err := loadAt(fixedNow)
	if err != nil {
		t.Fatalf("expected legacy names to satisfy credentials, got %v", err)
	}
	if cfg.League.ID != "999" || cfg.League.S2 != "legacy-s2" || cfg.League.SWID != "{LEGACY}" {
		t.Fatalf("unexpected league config %+v", cfg.League)
	}
}

func TestLoadMissingCredentialsIsConfigurationError(t *testing.T) {
	clearCredentials(t)
	t.Setenv(envLeagueID, "12345")

	_, err := loadAt(fixedNow)
	if err == nil {
		t.Fatal("expected missing credentials error")
	}
	var missing *MissingCredentialsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingCredentialsError, got %T", err)
	}
	if len(missing.Missing) != 2 || missing.Missing[0] != envEspnS2 || missing.Missing[1] != envEspnSWID {
		t.Fatalf("unexpected missing list %v", missing.Missing)
	}
	if !IsConfigurationError(err) {
		t.Fatalf("expected configuration error classification")
	}
}

func TestLoadFixtureProviderSkipsCredentials(t *testing.T) {
	clearCredentials(t)
	t.Setenv(envProvider, "Fixture")

	cfg, err := loadAt(fixedNow)
	if err != nil {
		t.Fatalf("expected fixture provider to load without credentials, got %v", err)
	}
	if cfg.Provider != ProviderFixture {
		t.Fatalf("expected provider normalised to fixture, got %s", cfg.Provider)
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	setCredentials(t)
	t.Setenv(envProvider, "yahoo")

	_, err := loadAt(fixedNow)
	var invalid *InvalidValueError
	if !errors.As(err, &invalid) || invalid.Key != envProvider {
		t.Fatalf("expected invalid provider error, got %v", err)
	}
}

func TestLoadRejectsUnknownTiePolicy(t *testing.T) {
	setCredentials(t)
	t.Setenv(envTiePolicy, "hom")

	_, err := loadAt(fixedNow)
	var invalid *InvalidValueError
	if !errors.As(err, &invalid) || invalid.Key != envTiePolicy || invalid.Value != "hom" {
		t.Fatalf("expected invalid tie policy error, got %v", err)
	}
}

func TestLoadAcceptsTiePolicyInAnyCase(t *testing.T) {
	setCredentials(t)
	t.Setenv(envTiePolicy, " Home ")

	if _, err := loadAt(fixedNow); err != nil {
		t.Fatalf("expected mixed-case tie policy to load, got %v", err)
	}
}

func TestLifetimeCountDefaultsToEveryCoach(t *testing.T) {
	setCredentials(t)
	t.Setenv(envLifetimeTopN, "")

	cfg, err := loadAt(fixedNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Report.LifetimeTopN != 0 {
		t.Fatalf("expected lifetime count 0 (every coach), got %d", cfg.Report.LifetimeTopN)
	}
	t.Setenv(envLifetimeTopN, "3")
	if cfg, _ = loadAt(fixedNow); cfg.Report.LifetimeTopN != 3 {
		t.Fatalf("expected lifetime count 3, got %d", cfg.Report.LifetimeTopN)
	}
}

func TestLoadRejectsInvertedYearRange(t *testing.T) {
	setCredentials(t)
	t.Setenv(envStartYear, "2025")
	t.Setenv(envEndYear, "2023")

	_, err := loadAt(fixedNow)
	if !IsConfigurationError(err) {
		t.Fatalf("expected configuration error for inverted range, got %v", err)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	setCredentials(t)
	t.Setenv(envFetchTimeout, "not-a-duration")

	cfg, err := loadAt(fixedNow)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.Fetch.Timeout != defaultFetchTimeout {
		t.Fatalf("expected default fetch timeout on invalid value, got %s", cfg.Fetch.Timeout)
	}
}
