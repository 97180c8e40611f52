package odds

import (
	"strconv"
	"time"
)

// Price is one side's moneyline quote in American odds format.
// A zero price means no quote was available.
type Price struct {
	Price int    `json:"price"`
	Name  string `json:"name"`
}

// GameOdds carries the moneyline pair and the home-side point spread
// for one upcoming game.
type GameOdds struct {
	Home   Price  `json:"homeTeamOdds"`
	Away   Price  `json:"awayTeamOdds"`
	Spread string `json:"spread"`
}

// Favorite reports whether the side quoted at price a is favored over b.
// Lower American odds mark the favorite.
func Favorite(a, b int) bool {
	return a < b
}

// Board maps game ids to their odds.
type Board map[string]GameOdds

// Snapshot is the persisted cache entry: one full board plus the time it
// was fetched. Age beyond the configured TTL makes it stale.
type Snapshot struct {
	Board     Board     `json:"odds"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// FormatAmerican renders an American odds price with an explicit sign,
// or "N/A" when no quote exists.
func FormatAmerican(price int) string {
	if price == 0 {
		return "N/A"
	}
	if price > 0 {
		return "+" + strconv.Itoa(price)
	}
	return strconv.Itoa(price)
}
