package schedule

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	domaingames "courtside/internal/domain/games"
	"courtside/internal/logging"
	"courtside/internal/providers/espn"
)

const (
	roleHome = "home"
	roleAway = "away"
)

// Normalize reduces a raw event list to the completed games for the target
// team, newest first. Events missing a competition, a home or an away
// competitor are skipped and logged; bulk normalization never fails on a
// single malformed record.
func Normalize(events []espn.Event, teamID string, logger *slog.Logger) []domaingames.ProcessedGame {
	games := make([]domaingames.ProcessedGame, 0, len(events))

	for _, event := range events {
		if !event.Status.Type.Completed {
			continue
		}
		if len(event.Competitions) == 0 {
			logging.Warn(logger, "schedule event has no competition", logging.FieldGameID, event.ID)
			continue
		}

		competition := event.Competitions[0]
		home, homeOK := findCompetitor(competition.Competitors, roleHome)
		away, awayOK := findCompetitor(competition.Competitors, roleAway)
		if !homeOK || !awayOK {
			logging.Warn(logger, "schedule event missing competitor",
				logging.FieldGameID, event.ID,
				"has_home", homeOK,
				"has_away", awayOK,
			)
			continue
		}

		isHome := home.Team.ID == teamID
		us, them := home, away
		if !isHome {
			us, them = away, home
		}

		teamScore := parseScore(us.Score, event.ID, logger)
		opponentScore := parseScore(them.Score, event.ID, logger)

		games = append(games, domaingames.ProcessedGame{
			ID:            event.ID,
			Date:          event.Date.Time,
			TeamScore:     teamScore,
			OpponentScore: opponentScore,
			Won:           teamScore > opponentScore,
			IsHome:        isHome,
			Opponent: domaingames.Opponent{
				ID:           them.Team.ID,
				Name:         them.Team.Name,
				Abbreviation: them.Team.Abbreviation,
				Logo:         them.Team.Logo,
			},
		})
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].Date.After(games[j].Date)
	})
	return games
}

func findCompetitor(competitors []espn.Competitor, role string) (espn.Competitor, bool) {
	for _, c := range competitors {
		if strings.EqualFold(c.HomeAway, role) {
			return c, true
		}
	}
	return espn.Competitor{}, false
}

// parseScore converts an upstream score string to a non-negative int.
// Malformed input defaults to zero.
func parseScore(raw string, gameID string, logger *slog.Logger) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	score, err := strconv.Atoi(trimmed)
	if err != nil || score < 0 {
		logging.Warn(logger, "malformed score in schedule event",
			logging.FieldGameID, gameID,
			"score", raw,
		)
		return 0
	}
	return score
}
