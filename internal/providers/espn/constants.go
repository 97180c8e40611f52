package espn

import "time"

// ProviderName identifies this client in logs and metrics.
const ProviderName = "espn"

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba"
	defaultHTTPTimeout = 15 * time.Second
)
