// Package server wires configuration, providers, caches and the HTTP
// surface into a runnable service.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"courtside/internal/config"
	"courtside/internal/domain/teams"
	httpserver "courtside/internal/http"
	"courtside/internal/logging"
	"courtside/internal/metrics"
	"courtside/internal/oddscache"
	"courtside/internal/poller"
	"courtside/internal/providers/espn"
	"courtside/internal/providers/oddsapi"
	"courtside/internal/providers/openweather"
	"courtside/internal/scoreboard"
	"courtside/internal/store"
	"courtside/internal/teamfeed"
	"courtside/internal/weather"
	"courtside/internal/ws"
)

var metricsSetup = metrics.Setup

// Server owns the long-running pieces of the service.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	hub           *ws.Hub
	poller        *poller.Poller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	redisClient   *redis.Client
}

// New constructs a fully wired server from configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	directory := teams.NewDirectory()
	memoryStore := store.NewMemoryStore()
	hub := ws.NewHub(logger)

	espnClient := espn.NewClient(espn.Config{BaseURL: cfg.ESPN.BaseURL})
	oddsClient := oddsapi.NewClient(oddsapi.Config{
		BaseURL: cfg.Odds.BaseURL,
		APIKey:  cfg.Odds.APIKey,
	})
	weatherClient := openweather.NewClient(openweather.Config{
		BaseURL:    cfg.Weather.BaseURL,
		GeoBaseURL: cfg.Weather.GeoBaseURL,
		APIKey:     cfg.Weather.APIKey,
	})

	oddsStore, redisClient := buildOddsStore(cfg, logger)
	oddsCache := oddscache.New(oddsClient, oddsStore, time.Duration(cfg.Odds.CacheTTL), logger, recorder)

	aggregator := scoreboard.New(scoreboard.Config{
		Client:     espnClient,
		OddsSource: oddsCache,
		Directory:  directory,
		Logger:     logger,
		Recorder:   recorder,
		PastDays:   cfg.WindowPast,
		FutureDays: cfg.WindowFuture,
	})

	plr := poller.New(poller.Config{
		Source:      aggregator,
		Sink:        memoryStore,
		Broadcaster: hub,
		Logger:      logger,
		Recorder:    recorder,
		Interval:    time.Duration(cfg.PollInterval),
	})

	weatherSvc := weather.NewService(weatherClient, weather.Fallback{
		City: cfg.Weather.FallbackCity,
		Lat:  cfg.Weather.FallbackLat,
		Lon:  cfg.Weather.FallbackLon,
	}, logger, recorder)
	feedSvc := teamfeed.NewService(espnClient, directory, logger, recorder)

	handler := httpserver.NewHandler(httpserver.HandlerConfig{
		Store:     memoryStore,
		TeamFeed:  feedSvc,
		OddsCache: oddsCache,
		Weather:   weatherSvc,
		Ready:     plr,
		Directory: directory,
		Logger:    logger,
	})
	wsHandler := httpserver.NewWSHandler(hub, memoryStore, logger)

	router := httpserver.NewRouter(httpserver.RouterConfig{
		Handler:     handler,
		WSHandler:   wsHandler,
		Logger:      logger,
		Recorder:    recorder,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		hub:           hub,
		poller:        plr,
		httpServer:    srv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		redisClient:   redisClient,
	}
}

// Run starts the hub, poller and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	go s.hub.Run(ctx)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.poller.Stop()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			logging.Warn(s.logger, "redis close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

// buildOddsStore prefers Redis when configured and falls back to the
// filesystem snapshot so odds survive restarts either way.
func buildOddsStore(cfg config.Config, logger *slog.Logger) (oddscache.Store, *redis.Client) {
	if cfg.Odds.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.Odds.RedisURL)
		if err != nil {
			logging.Warn(logger, "invalid redis url, using filesystem odds store", "error", err)
		} else {
			client := redis.NewClient(opts)
			return oddscache.NewRedisStore(client, 0), client
		}
	}
	return oddscache.NewFSStore(cfg.Odds.CachePath), nil
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{srv: &http.Server{
			Addr:    ":" + recCfg.Port,
			Handler: handler,
		}}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", "addr", srv.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}
