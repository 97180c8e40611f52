package oddsapi

import "time"

// Game is one entry of the upstream odds board.
type Game struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	CommenceTime time.Time   `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker is one book's quotes for a game.
type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// Market is one quoted market (moneyline, spreads).
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is one side's quote within a market. Point is only set for
// spread markets.
type Outcome struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Point float64 `json:"point"`
}

// PreferredBookmaker returns the first bookmaker in preference order, or
// false when none of the preferred books quoted the game.
func (g Game) PreferredBookmaker() (Bookmaker, bool) {
	for _, key := range []string{bookmakerPrimary, bookmakerSecondary} {
		for _, b := range g.Bookmakers {
			if b.Key == key {
				return b, true
			}
		}
	}
	return Bookmaker{}, false
}

// Market returns the named market from a bookmaker, if quoted.
func (b Bookmaker) Market(key string) (Market, bool) {
	for _, m := range b.Markets {
		if m.Key == key {
			return m, true
		}
	}
	return Market{}, false
}

// Outcome returns the outcome quoted for the named side, if present.
func (m Market) Outcome(name string) (Outcome, bool) {
	for _, o := range m.Outcomes {
		if o.Name == name {
			return o, true
		}
	}
	return Outcome{}, false
}
