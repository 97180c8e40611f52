package scoreboard

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	domaingames "courtside/internal/domain/games"
	"courtside/internal/domain/odds"
	"courtside/internal/domain/teams"
	"courtside/internal/logging"
	"courtside/internal/metrics"
	"courtside/internal/providers"
	"courtside/internal/providers/espn"
	"courtside/internal/timeutil"
)

// ScoreboardClient fetches one upstream scoreboard page for a date.
type ScoreboardClient interface {
	Scoreboard(ctx context.Context, date time.Time) (espn.ScoreboardResponse, error)
}

// OddsSource supplies odds for a set of games, never fatally.
type OddsSource interface {
	BoardFor(ctx context.Context, games []domaingames.ScoreboardGame) odds.Board
}

// Aggregator builds the classified multi-day scoreboard.
type Aggregator struct {
	client     ScoreboardClient
	oddsSource OddsSource
	directory  *teams.Directory
	logger     *slog.Logger
	recorder   *metrics.Recorder
	pastDays   int
	futureDays int
	now        func() time.Time
}

// Config wires an Aggregator.
type Config struct {
	Client     ScoreboardClient
	OddsSource OddsSource
	Directory  *teams.Directory
	Logger     *slog.Logger
	Recorder   *metrics.Recorder
	PastDays   int
	FutureDays int
}

// New constructs an Aggregator with sane defaults.
func New(cfg Config) *Aggregator {
	directory := cfg.Directory
	if directory == nil {
		directory = teams.NewDirectory()
	}
	pastDays := cfg.PastDays
	if pastDays <= 0 {
		pastDays = defaultPastDays
	}
	futureDays := cfg.FutureDays
	if futureDays <= 0 {
		futureDays = defaultFutureDays
	}
	return &Aggregator{
		client:     cfg.Client,
		oddsSource: cfg.OddsSource,
		directory:  directory,
		logger:     cfg.Logger,
		recorder:   cfg.Recorder,
		pastDays:   pastDays,
		futureDays: futureDays,
		now:        time.Now,
	}
}

// Aggregate fetches every date in the window concurrently, classifies and
// sorts the combined games, and attaches odds to the upcoming ones. A
// failed date degrades to an empty page; Aggregate itself fails only when
// the context is cancelled.
func (a *Aggregator) Aggregate(ctx context.Context) ([]domaingames.ScoreboardGame, error) {
	now := a.now().UTC()
	dates := Window(now, a.pastDays, a.futureDays)
	pages := make([]espn.ScoreboardResponse, len(dates))

	g, gCtx := errgroup.WithContext(ctx)
	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			start := time.Now()
			page, err := providers.Retry(gCtx, a.logger, espn.ProviderName, func() (espn.ScoreboardResponse, error) {
				return a.client.Scoreboard(gCtx, date)
			})
			providers.Observe(a.logger, a.recorder, espn.ProviderName, start, err)
			if err != nil {
				logging.Warn(a.logger, "scoreboard page fetch failed, using empty page",
					logging.FieldDate, timeutil.FormatDate(date),
					"error", err,
				)
				return nil
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	games := make([]domaingames.ScoreboardGame, 0, 32)
	for _, page := range pages {
		for _, event := range page.Events {
			game, ok := a.mapEvent(event, now)
			if !ok {
				continue
			}
			games = append(games, game)
		}
	}

	a.attachOdds(ctx, games)
	Sort(games)
	return games, nil
}

func (a *Aggregator) mapEvent(event espn.Event, now time.Time) (domaingames.ScoreboardGame, bool) {
	if len(event.Competitions) == 0 {
		logging.Warn(a.logger, "scoreboard event has no competition", logging.FieldGameID, event.ID)
		return domaingames.ScoreboardGame{}, false
	}

	competition := event.Competitions[0]
	var home, away *espn.Competitor
	for i := range competition.Competitors {
		switch strings.ToLower(competition.Competitors[i].HomeAway) {
		case "home":
			home = &competition.Competitors[i]
		case "away":
			away = &competition.Competitors[i]
		}
	}
	if home == nil || away == nil {
		logging.Warn(a.logger, "scoreboard event missing competitor", logging.FieldGameID, event.ID)
		return domaingames.ScoreboardGame{}, false
	}

	gameType := Classify(event.Status.Type.State, event.Date.Time, now)

	status := event.Status.Type.Description
	if status == "" {
		if gameType == domaingames.TypeUpcoming {
			status = "Scheduled"
		} else {
			status = "Unknown"
		}
	}

	return domaingames.ScoreboardGame{
		ID:        event.ID,
		StartTime: event.Date.Time,
		HomeTeam:  a.mapSide(*home),
		AwayTeam:  a.mapSide(*away),
		Status:    status,
		Period:    event.Status.Period,
		Clock:     event.Status.DisplayClock,
		Type:      gameType,
	}, true
}

// mapSide resolves the competitor through the directory; unknown codes
// fall back to the raw upstream fields so the game still renders.
func (a *Aggregator) mapSide(c espn.Competitor) domaingames.Side {
	side := domaingames.Side{
		Code:  a.directory.Normalize(c.Team.Abbreviation),
		Name:  c.Team.Name,
		Score: parseScore(c.Score),
	}
	if team, ok := a.directory.Lookup(c.Team.Abbreviation); ok {
		side.Name = team.Name
		side.Logo = team.Logo
	} else {
		logging.Warn(a.logger, "team not found in directory",
			logging.FieldTeam, c.Team.Abbreviation,
		)
	}
	return side
}

func (a *Aggregator) attachOdds(ctx context.Context, games []domaingames.ScoreboardGame) {
	if a.oddsSource == nil {
		return
	}

	upcoming := make([]domaingames.ScoreboardGame, 0, len(games))
	for _, g := range games {
		if g.Type == domaingames.TypeUpcoming {
			upcoming = append(upcoming, g)
		}
	}
	if len(upcoming) == 0 {
		return
	}

	board := a.oddsSource.BoardFor(ctx, upcoming)
	if len(board) == 0 {
		return
	}
	for i := range games {
		if games[i].Type != domaingames.TypeUpcoming {
			continue
		}
		if entry, ok := board[games[i].ID]; ok {
			games[i].Odds = &entry
		}
	}
}

func parseScore(raw string) int {
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || score < 0 {
		return 0
	}
	return score
}
