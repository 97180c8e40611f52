package games

import (
	"time"

	"courtside/internal/domain/odds"
)

// GameType classifies a scoreboard game for display. Classification
// happens once per fetch cycle and is final for that cycle.
type GameType string

const (
	TypeLive     GameType = "live"
	TypeUpcoming GameType = "upcoming"
	TypePast     GameType = "past"
)

// Side is one participant in a scoreboard game.
type Side struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Logo  string `json:"logo,omitempty"`
	Score int    `json:"score"`
}

// ScoreboardGame is one classified entry on the aggregated board.
type ScoreboardGame struct {
	ID        string         `json:"id"`
	StartTime time.Time      `json:"startTime"`
	HomeTeam  Side           `json:"homeTeam"`
	AwayTeam  Side           `json:"awayTeam"`
	Status    string         `json:"status"`
	Period    int            `json:"period,omitempty"`
	Clock     string         `json:"clock,omitempty"`
	Type      GameType       `json:"type"`
	Odds      *odds.GameOdds `json:"odds,omitempty"`
}

// BoardResponse is the payload served for the aggregated scoreboard.
type BoardResponse struct {
	FetchedAt time.Time        `json:"fetchedAt"`
	Games     []ScoreboardGame `json:"games"`
}

// NewBoardResponse builds a BoardResponse payload.
func NewBoardResponse(fetchedAt time.Time, games []ScoreboardGame) BoardResponse {
	return BoardResponse{
		FetchedAt: fetchedAt,
		Games:     games,
	}
}

// Opponent identifies the other side of a processed schedule game.
type Opponent struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Logo         string `json:"logo,omitempty"`
}

// ProcessedGame is one completed game viewed from the target team's
// perspective, produced by the schedule normalizer.
type ProcessedGame struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	TeamScore     int       `json:"teamScore"`
	OpponentScore int       `json:"opponentScore"`
	Won           bool      `json:"won"`
	IsHome        bool      `json:"isHome"`
	Opponent      Opponent  `json:"opponent"`
}

// TeamStats is the derived record for one team, recomputed per fetch cycle.
type TeamStats struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPct        float64 `json:"winPct"`
	LastTenRecord string  `json:"lastTenRecord"`
	Streak        string  `json:"streak"`
	PointsPerGame float64 `json:"pointsPerGame"`
	PointsAllowed float64 `json:"pointsAllowed"`
}
