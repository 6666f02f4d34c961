package config

import "time"

const (
	envProvider           = "PROVIDER"
	envLeagueID           = "LEAGUE_ID"
	envEspnS2             = "ESPN_S2"
	envEspnSWID           = "ESPN_SWID"
	envEspnBaseURL        = "ESPN_BASE_URL"
	envStartYear          = "START_YEAR"
	envEndYear            = "END_YEAR"
	envSkipInProgressWeek = "SKIP_IN_PROGRESS_WEEK"
	envTiePolicy          = "TIE_POLICY"
	envActivityEnabled    = "ACTIVITY_ENABLED"
	envActivityLimit      = "ACTIVITY_LIMIT"
	envFetchTimeout       = "FETCH_TIMEOUT"
	envFetchAttempts      = "FETCH_ATTEMPTS"
	envFetchBackoff       = "FETCH_BACKOFF"
	envRateInterval       = "RATE_LIMIT_INTERVAL"
	envReportPath         = "REPORT_PATH"
	envReportTopN         = "REPORT_TOP_N"
	envLifetimeTopN       = "REPORT_LIFETIME_TOP_N"
	envAllowedStartYear   = "POINTS_ALLOWED_START_YEAR"
	envAllowedEndYear     = "POINTS_ALLOWED_END_YEAR"
	envSnapshotCache      = "SNAPSHOT_CACHE_ENABLED"
	envSnapshotDir        = "SNAPSHOT_DIR"
	envLogLevel           = "LOG_LEVEL"
	envLogFormat          = "LOG_FORMAT"
	envLogFile            = "LOG_FILE"
	envMetricsOn          = "METRICS_ENABLED"
	envPushgatewayURL     = "PUSHGATEWAY_URL"
	envOtelEndpoint       = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService        = "OTEL_SERVICE_NAME"
	envOtelInsecure       = "OTEL_EXPORTER_OTLP_INSECURE"

	// Lowercase names from the earlier scripts; still honoured.
	legacyLeagueID = "league_id"
	legacyEspnS2   = "s2"
	legacySWID     = "swid"

	// KeyProvider is the setting that selects the league data source.
	KeyProvider = envProvider

	ProviderESPN    = "espn"
	ProviderFixture = "fixture"

	defaultProvider           = ProviderESPN
	defaultStartYear          = 2023
	defaultSkipInProgressWeek = true
	defaultTiePolicy          = "away"
	defaultActivityLimit      = 200
	defaultFetchTimeout       = 30 * time.Second
	defaultFetchAttempts      = 3
	defaultFetchBackoff       = 500 * time.Millisecond
	// ESPN has no published quota; four calls a second keeps a multi-season run polite.
	defaultRateInterval  = 250 * time.Millisecond
	defaultReportPath    = "league_analysis.txt"
	defaultReportTopN    = 5
	defaultSnapshotCache = true
	defaultSnapshotDir   = "data/snapshots"
	defaultLogFile       = "fantasy_analytics.log"
	defaultServiceName   = "fantasy-league-history"
)
