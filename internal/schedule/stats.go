package schedule

import (
	"fmt"
	"math"

	domaingames "courtside/internal/domain/games"
)

const lastTenWindow = 10

// ComputeStats derives the display record for a team from its upstream
// win/loss counts, per-game point averages and normalized game history.
// The games slice must be ordered newest first.
func ComputeStats(wins, losses int, ppg, pointsAllowed float64, games []domaingames.ProcessedGame) domaingames.TeamStats {
	if wins < 0 {
		wins = 0
	}
	if losses < 0 {
		losses = 0
	}

	return domaingames.TeamStats{
		Wins:          wins,
		Losses:        losses,
		WinPct:        winPct(wins, losses),
		LastTenRecord: lastTenRecord(games),
		Streak:        streak(games),
		PointsPerGame: roundTenth(ppg),
		PointsAllowed: roundTenth(pointsAllowed),
	}
}

func winPct(wins, losses int) float64 {
	total := wins + losses
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total)
}

// lastTenRecord counts wins over the most recent games, considering at
// most ten. Losses are the considered games minus the wins, so a team
// with only three games played reads "2-1", not "2-8".
func lastTenRecord(games []domaingames.ProcessedGame) string {
	considered := len(games)
	if considered > lastTenWindow {
		considered = lastTenWindow
	}

	wins := 0
	for _, g := range games[:considered] {
		if g.Won {
			wins++
		}
	}
	return fmt.Sprintf("%d-%d", wins, considered-wins)
}

// streak walks the ordered history from the most recent game. The streak
// type is fixed by the first game's result and counting stops at the
// first game that breaks the run.
func streak(games []domaingames.ProcessedGame) string {
	if len(games) == 0 {
		return "0"
	}

	kind := "L"
	if games[0].Won {
		kind = "W"
	}

	count := 0
	for _, g := range games {
		if g.Won != games[0].Won {
			break
		}
		count++
	}
	return fmt.Sprintf("%d%s", count, kind)
}

func roundTenth(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}
