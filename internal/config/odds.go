package config

import "time"

const (
	envOddsBaseURL   = "ODDS_API_BASE_URL"
	envOddsAPIKey    = "ODDS_API_KEY"
	envOddsCacheTTL  = "ODDS_CACHE_TTL"
	envOddsRedisURL  = "ODDS_REDIS_URL"
	envOddsCachePath = "ODDS_CACHE_PATH"

	defaultOddsBaseURL = "https://api.the-odds-api.com/v4"
	// Odds move slowly relative to their request quota; refetch at most hourly.
	defaultOddsCacheTTL  = Duration(time.Hour)
	defaultOddsCachePath = "data/odds"
)

// OddsConfig controls the odds provider and its cache.
// An empty APIKey disables odds lookups entirely; board requests then
// resolve to an empty mapping rather than an error.
type OddsConfig struct {
	BaseURL   string
	APIKey    string
	CacheTTL  Duration
	RedisURL  string
	CachePath string
}

func loadOdds() OddsConfig {
	return OddsConfig{
		BaseURL:   envOrDefault(envOddsBaseURL, defaultOddsBaseURL),
		APIKey:    envOrDefault(envOddsAPIKey, ""),
		CacheTTL:  durationEnvOrDefault(envOddsCacheTTL, defaultOddsCacheTTL),
		RedisURL:  envOrDefault(envOddsRedisURL, ""),
		CachePath: envOrDefault(envOddsCachePath, defaultOddsCachePath),
	}
}
