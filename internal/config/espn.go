package config

const (
	envESPNBaseURL = "ESPN_BASE_URL"

	defaultESPNBaseURL = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba"
)

// ESPNConfig controls how we talk to the ESPN site API.
type ESPNConfig struct {
	BaseURL string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
	}
}
