package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled        bool
	PushgatewayURL string
	OtlpEndpoint   string
	ServiceName    string
	OtlpInsecure   bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:        boolEnvOrDefault(envMetricsOn, false),
		PushgatewayURL: envOrDefault(envPushgatewayURL, ""),
		OtlpEndpoint:   envOrDefault(envOtelEndpoint, ""),
		ServiceName:    envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure:   boolEnvOrDefault(envOtelInsecure, true),
	}
}
