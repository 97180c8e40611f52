package oddscache

import (
	"fmt"
	"strings"

	domaingames "courtside/internal/domain/games"
	"courtside/internal/domain/odds"
	"courtside/internal/providers/oddsapi"
)

// BuildBoard reduces the upstream odds board to a mapping keyed by the
// caller's game ids. An upstream game contributes only when a preferred
// bookmaker quoted its moneyline and a known game matches by team names.
func BuildBoard(upstream []oddsapi.Game, known []domaingames.ScoreboardGame) odds.Board {
	board := make(odds.Board)

	for _, game := range upstream {
		bookmaker, ok := game.PreferredBookmaker()
		if !ok {
			continue
		}
		moneyline, ok := bookmaker.Market("h2h")
		if !ok {
			continue
		}
		home, homeOK := moneyline.Outcome(game.HomeTeam)
		away, awayOK := moneyline.Outcome(game.AwayTeam)
		if !homeOK || !awayOK {
			continue
		}

		match, ok := matchGame(game, known)
		if !ok {
			continue
		}

		entry := odds.GameOdds{
			Home: odds.Price{Price: int(home.Price), Name: game.HomeTeam},
			Away: odds.Price{Price: int(away.Price), Name: game.AwayTeam},
		}
		if spreads, ok := bookmaker.Market("spreads"); ok {
			if outcome, ok := spreads.Outcome(game.HomeTeam); ok {
				entry.Spread = formatSpread(outcome.Point)
			}
		}
		board[match.ID] = entry
	}

	return board
}

// matchGame reconciles an upstream game with the caller's list. The two
// providers share no stable identifier, so matching falls back to mutual
// substring containment of the home and away team names.
func matchGame(game oddsapi.Game, known []domaingames.ScoreboardGame) (domaingames.ScoreboardGame, bool) {
	for _, k := range known {
		if namesOverlap(k.HomeTeam.Name, game.HomeTeam) && namesOverlap(k.AwayTeam.Name, game.AwayTeam) {
			return k, true
		}
	}
	return domaingames.ScoreboardGame{}, false
}

func namesOverlap(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	a, b = strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func formatSpread(point float64) string {
	if point > 0 {
		return fmt.Sprintf("+%g", point)
	}
	return fmt.Sprintf("%g", point)
}
