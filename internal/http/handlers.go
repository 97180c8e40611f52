// Package http exposes the dashboard API over chi.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	domaingames "courtside/internal/domain/games"
	"courtside/internal/domain/odds"
	"courtside/internal/domain/teams"
	domainweather "courtside/internal/domain/weather"
	"courtside/internal/poller"
	"courtside/internal/providers"
	"courtside/internal/teamfeed"
	"courtside/internal/weather"
)

// BoardStore serves the latest aggregated scoreboard.
type BoardStore interface {
	Board() (domaingames.BoardResponse, bool)
	GameByID(id string) (domaingames.ScoreboardGame, bool)
}

// TeamFeed serves per-team bundles and summaries.
type TeamFeed interface {
	Bundle(ctx context.Context, abbr string) (teamfeed.Bundle, error)
	Summary(ctx context.Context, abbr string) (teamfeed.Summary, error)
}

// OddsSource serves the cached odds board for a set of games.
type OddsSource interface {
	BoardFor(ctx context.Context, games []domaingames.ScoreboardGame) odds.Board
}

// WeatherService resolves locations and reports conditions.
type WeatherService interface {
	Resolve(ctx context.Context, city string, lat, lon *float64) (domainweather.Coordinates, error)
	Report(ctx context.Context, coords domainweather.Coordinates) (domainweather.Report, error)
}

// ReadyChecker reports poller health for the readiness probe.
type ReadyChecker interface {
	Status() poller.Status
}

// Handler wires HTTP routes to the services behind them.
type Handler struct {
	store     BoardStore
	teamFeed  TeamFeed
	oddsCache OddsSource
	weather   WeatherService
	ready     ReadyChecker
	directory *teams.Directory
	logger    *slog.Logger
}

// HandlerConfig wires a Handler.
type HandlerConfig struct {
	Store     BoardStore
	TeamFeed  TeamFeed
	OddsCache OddsSource
	Weather   WeatherService
	Ready     ReadyChecker
	Directory *teams.Directory
	Logger    *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	directory := cfg.Directory
	if directory == nil {
		directory = teams.NewDirectory()
	}
	return &Handler{
		store:     cfg.Store,
		teamFeed:  cfg.TeamFeed,
		oddsCache: cfg.OddsCache,
		weather:   cfg.Weather,
		ready:     cfg.Ready,
		directory: directory,
		logger:    cfg.Logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the poller has warmed the scoreboard.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.ready == nil {
		h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
		return
	}

	status := h.ready.Status()
	payload := map[string]any{
		"consecutive_failures": status.ConsecutiveFailures,
		"last_error":           status.LastError,
		"last_success":         status.LastSuccess,
	}
	if !status.IsReady() {
		payload["status"] = "not_ready"
		h.writeJSON(w, nethttp.StatusServiceUnavailable, payload)
		return
	}
	payload["status"] = "ready"
	h.writeJSON(w, nethttp.StatusOK, payload)
}

// Teams lists the franchise directory.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, h.directory.All())
}

// TeamByCode returns one directory entry.
func (h *Handler) TeamByCode(w nethttp.ResponseWriter, r *nethttp.Request) {
	team, ok := h.directory.Lookup(chi.URLParam(r, "code"))
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "unknown team")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, team)
}

// TeamBundle proxies the upstream profile, schedule and statistics for
// one team.
func (h *Handler) TeamBundle(w nethttp.ResponseWriter, r *nethttp.Request) {
	bundle, err := h.teamFeed.Bundle(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.writeServiceError(w, r, err, "team bundle fetch failed")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, bundle)
}

// TeamSummary returns the computed record, streak and scoring averages
// for one team.
func (h *Handler) TeamSummary(w nethttp.ResponseWriter, r *nethttp.Request) {
	summary, err := h.teamFeed.Summary(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.writeServiceError(w, r, err, "team summary fetch failed")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, summary)
}

// Scoreboard returns the latest aggregated board.
func (h *Handler) Scoreboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	board, _ := h.store.Board()
	if board.Games == nil {
		board.Games = []domaingames.ScoreboardGame{}
	}
	h.writeJSON(w, nethttp.StatusOK, board)
}

// GameByID returns one game from the latest board.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing game id")
		return
	}
	game, ok := h.store.GameByID(id)
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "game not found")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, game)
}

// Odds returns the cached odds board for the games on the latest
// scoreboard.
func (h *Handler) Odds(w nethttp.ResponseWriter, r *nethttp.Request) {
	board, _ := h.store.Board()
	result := h.oddsCache.BoardFor(r.Context(), board.Games)
	if result == nil {
		result = odds.Board{}
	}
	h.writeJSON(w, nethttp.StatusOK, result)
}

// Weather resolves the requested location and returns current
// conditions plus the daily forecast. Accepts ?city=, or ?lat=&lon=;
// with neither, the configured fallback location is served.
func (h *Handler) Weather(w nethttp.ResponseWriter, r *nethttp.Request) {
	city := r.URL.Query().Get("city")
	lat, latErr := parseCoord(r.URL.Query().Get("lat"))
	lon, lonErr := parseCoord(r.URL.Query().Get("lon"))
	if latErr != nil || lonErr != nil {
		h.writeError(w, nethttp.StatusBadRequest, "invalid coordinates")
		return
	}
	if (lat == nil) != (lon == nil) {
		h.writeError(w, nethttp.StatusBadRequest, "lat and lon must be provided together")
		return
	}

	coords, err := h.weather.Resolve(r.Context(), city, lat, lon)
	if err != nil {
		h.writeServiceError(w, r, err, "weather location lookup failed")
		return
	}

	report, err := h.weather.Report(r.Context(), coords)
	if err != nil {
		h.writeServiceError(w, r, err, "weather fetch failed")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, report)
}

func (h *Handler) writeServiceError(w nethttp.ResponseWriter, r *nethttp.Request, err error, msg string) {
	switch {
	case errors.Is(err, teamfeed.ErrUnknownTeam):
		h.writeError(w, nethttp.StatusNotFound, "unknown team")
	case errors.Is(err, weather.ErrCityNotFound):
		h.writeError(w, nethttp.StatusNotFound, "city not found")
	case errors.Is(err, providers.ErrDisabled):
		h.writeError(w, nethttp.StatusServiceUnavailable, "provider not configured")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.writeError(w, nethttp.StatusGatewayTimeout, "upstream timed out")
	default:
		if h.logger != nil {
			h.logger.Error(msg, "error", err)
		}
		h.writeError(w, nethttp.StatusBadGateway, "upstream fetch failed")
	}
}

func parseCoord(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &val, nil
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
