// Package teamfeed serves per-team data: a proxied bundle of the
// upstream profile, schedule and statistics payloads, and a computed
// summary built from the normalized schedule.
package teamfeed

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	domaingames "courtside/internal/domain/games"
	"courtside/internal/domain/teams"
	"courtside/internal/metrics"
	"courtside/internal/providers"
	"courtside/internal/providers/espn"
	"courtside/internal/schedule"
)

// ErrUnknownTeam reports an abbreviation the directory cannot resolve.
var ErrUnknownTeam = errors.New("teamfeed: unknown team")

// Client is the slice of the ESPN surface the service uses.
type Client interface {
	TeamSchedule(ctx context.Context, teamID string) (espn.ScheduleResponse, error)
	TeamProfileRaw(ctx context.Context, teamID string) (json.RawMessage, error)
	TeamStatisticsRaw(ctx context.Context, teamID string) (json.RawMessage, error)
	TeamStatistics(ctx context.Context, teamID string) (espn.StatLine, error)
}

// Bundle carries the three upstream payloads for one team. Profile and
// statistics are forwarded untouched; the schedule is the decoded event
// list.
type Bundle struct {
	Team     json.RawMessage `json:"team"`
	Schedule []espn.Event    `json:"schedule"`
	Stats    json.RawMessage `json:"stats"`
}

// Summary is the computed per-team view.
type Summary struct {
	Team  teams.Team                  `json:"team"`
	Stats domaingames.TeamStats       `json:"stats"`
	Games []domaingames.ProcessedGame `json:"games"`
}

// Service resolves team abbreviations and assembles feeds.
type Service struct {
	client    Client
	directory *teams.Directory
	logger    *slog.Logger
	recorder  *metrics.Recorder
}

// NewService constructs a teamfeed Service.
func NewService(client Client, directory *teams.Directory, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		client:    client,
		directory: directory,
		logger:    logger,
		recorder:  recorder,
	}
}

// Bundle fetches the profile, schedule and statistics payloads for a
// team concurrently. Any failed upstream call fails the bundle.
func (s *Service) Bundle(ctx context.Context, abbr string) (Bundle, error) {
	team, ok := s.directory.Lookup(abbr)
	if !ok {
		return Bundle{}, ErrUnknownTeam
	}
	teamID := strconv.Itoa(team.ESPNID)

	var bundle Bundle
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := s.fetchRaw(ctx, func() (json.RawMessage, error) {
			return s.client.TeamProfileRaw(ctx, teamID)
		})
		bundle.Team = raw
		return err
	})
	g.Go(func() error {
		start := time.Now()
		resp, err := providers.Retry(ctx, s.logger, espn.ProviderName, func() (espn.ScheduleResponse, error) {
			return s.client.TeamSchedule(ctx, teamID)
		})
		providers.Observe(s.logger, s.recorder, espn.ProviderName, start, err)
		bundle.Schedule = resp.Events
		return err
	})
	g.Go(func() error {
		raw, err := s.fetchRaw(ctx, func() (json.RawMessage, error) {
			return s.client.TeamStatisticsRaw(ctx, teamID)
		})
		bundle.Stats = raw
		return err
	})

	if err := g.Wait(); err != nil {
		return Bundle{}, err
	}
	return bundle, nil
}

// Summary fetches a team's schedule and season statistics and computes
// the derived record, streak and scoring averages.
func (s *Service) Summary(ctx context.Context, abbr string) (Summary, error) {
	team, ok := s.directory.Lookup(abbr)
	if !ok {
		return Summary{}, ErrUnknownTeam
	}
	teamID := strconv.Itoa(team.ESPNID)

	var (
		events []espn.Event
		line   espn.StatLine
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		start := time.Now()
		resp, err := providers.Retry(gctx, s.logger, espn.ProviderName, func() (espn.ScheduleResponse, error) {
			return s.client.TeamSchedule(gctx, teamID)
		})
		providers.Observe(s.logger, s.recorder, espn.ProviderName, start, err)
		events = resp.Events
		return err
	})
	g.Go(func() error {
		start := time.Now()
		fetched, err := providers.Retry(gctx, s.logger, espn.ProviderName, func() (espn.StatLine, error) {
			return s.client.TeamStatistics(gctx, teamID)
		})
		providers.Observe(s.logger, s.recorder, espn.ProviderName, start, err)
		line = fetched
		return err
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	games := schedule.Normalize(events, teamID, s.logger)
	stats := schedule.ComputeStats(
		int(line.Wins),
		int(line.Losses),
		float64(line.PPG),
		float64(line.PAPG),
		games,
	)

	return Summary{Team: team, Stats: stats, Games: games}, nil
}

func (s *Service) fetchRaw(ctx context.Context, fn func() (json.RawMessage, error)) (json.RawMessage, error) {
	start := time.Now()
	raw, err := providers.Retry(ctx, s.logger, espn.ProviderName, fn)
	providers.Observe(s.logger, s.recorder, espn.ProviderName, start, err)
	return raw, err
}
