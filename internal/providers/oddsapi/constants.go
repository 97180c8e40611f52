package oddsapi

import "time"

// ProviderName identifies this client in logs and metrics.
const ProviderName = "oddsapi"

const (
	defaultBaseURL     = "https://api.the-odds-api.com/v4"
	defaultHTTPTimeout = 10 * time.Second

	sportKey = "basketball_nba"

	regionUS      = "us"
	marketsParam  = "h2h,spreads"
	formatAmerica = "american"

	// Bookmaker preference order for board extraction.
	bookmakerPrimary   = "fanduel"
	bookmakerSecondary = "draftkings"

	marketMoneyline = "h2h"
	marketSpreads   = "spreads"

	// Substring the provider returns alongside a 401 once the monthly
	// request allowance is spent.
	quotaMessage = "Usage quota has been reached"
)
