package config

import "strings"

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	WindowPast   int
	WindowFuture int
	CORSOrigins  []string
	ESPN         ESPNConfig
	Odds         OddsConfig
	Weather      WeatherConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		WindowPast:   intEnvOrDefault(envWindowPast, defaultWindowPastDays),
		WindowFuture: intEnvOrDefault(envWindowFuture, defaultWindowFutureDays),
		CORSOrigins:  splitList(envOrDefault(envCORSOrigins, "*")),
		ESPN:         loadESPN(),
		Odds:         loadOdds(),
		Weather:      loadWeather(),
		Metrics:      loadMetrics(),
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
