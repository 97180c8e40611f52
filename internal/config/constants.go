package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envCORSOrigins  = "CORS_ALLOWED_ORIGINS"
	envWindowPast   = "SCOREBOARD_WINDOW_PAST_DAYS"
	envWindowFuture = "SCOREBOARD_WINDOW_FUTURE_DAYS"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Mirrors the dashboard's score refresh cadence.
	defaultPollInterval = 30 * Duration(time.Second)
	// Scoreboard spans a week back and a week forward around "now".
	defaultWindowPastDays   = 7
	defaultWindowFutureDays = 7
	defaultMetricsPort      = "9090"
)
