package scoreboard

import (
	"sort"

	domaingames "courtside/internal/domain/games"
)

// typeRank fixes the display grouping: live first, then upcoming, then past.
func typeRank(t domaingames.GameType) int {
	switch t {
	case domaingames.TypeLive:
		return 0
	case domaingames.TypeUpcoming:
		return 1
	default:
		return 2
	}
}

// Sort orders the board for display: grouped live/upcoming/past, upcoming
// soonest first, past and live most recent first.
func Sort(games []domaingames.ScoreboardGame) {
	sort.SliceStable(games, func(i, j int) bool {
		a, b := games[i], games[j]
		if a.Type != b.Type {
			return typeRank(a.Type) < typeRank(b.Type)
		}
		if a.Type == domaingames.TypeUpcoming {
			return a.StartTime.Before(b.StartTime)
		}
		return a.StartTime.After(b.StartTime)
	})
}
