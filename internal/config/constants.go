package config

import "time"

const (
	envPort         = "PORT"
	envSeason       = "SEASON"
	envPollInterval = "POLL_INTERVAL"
	envFeed         = "FEED"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort   = "4000"
	defaultSeason = "2024"
	// Season data moves slowly; refresh hourly to stay polite to the upstreams.
	defaultPollInterval = 1 * Duration(time.Hour)
	defaultFeed         = "fixture"
	defaultMetricsPort  = "9090"
)
