package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"courtside/internal/metrics"
)

const routeTimeout = 30 * time.Second

// RouterConfig wires the router.
type RouterConfig struct {
	Handler     *Handler
	WSHandler   *WSHandler
	Logger      *slog.Logger
	Recorder    *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers the API routes.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(LoggingMiddleware(cfg.Logger))
	r.Use(MetricsMiddleware(cfg.Recorder))
	r.Use(chimiddleware.Recoverer)

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	handler := cfg.Handler

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/api", func(r chi.Router) {
		// The websocket route manages its own connection lifetime.
		r.With(chimiddleware.Timeout(routeTimeout)).Group(func(r chi.Router) {
			r.Get("/teams", handler.Teams)
			r.Get("/teams/{code}", handler.TeamByCode)
			r.Get("/teams/{code}/feed", handler.TeamBundle)
			r.Get("/teams/{code}/summary", handler.TeamSummary)
			r.Get("/scoreboard", handler.Scoreboard)
			r.Get("/scoreboard/games/{id}", handler.GameByID)
			r.Get("/odds", handler.Odds)
			r.Get("/weather", handler.Weather)
		})
		if cfg.WSHandler != nil {
			r.Get("/ws", cfg.WSHandler.Subscribe)
		}
	})

	return r
}
