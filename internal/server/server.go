// Package server assembles the feed, enrichment, services, poller, and HTTP
// layers into a runnable process.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"f1-data-service/internal/app/drivers"
	"f1-data-service/internal/app/races"
	"f1-data-service/internal/app/standings"
	"f1-data-service/internal/assets"
	"f1-data-service/internal/config"
	"f1-data-service/internal/enrich"
	"f1-data-service/internal/feed"
	"f1-data-service/internal/http/handlers"
	"f1-data-service/internal/http/middleware"
	"f1-data-service/internal/logging"
	"f1-data-service/internal/metrics"
	"f1-data-service/internal/poller"
	"f1-data-service/internal/store"
	"f1-data-service/internal/wiki"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg              config.Config
	logger           *slog.Logger
	metrics          *metrics.Recorder
	store            *store.MemoryStore
	driversService   *drivers.Service
	racesService     *races.Service
	standingsService *standings.Service
	httpServer       httpServer
	metricsServer    httpServer
	poller           Poller
	metricsStop      func(context.Context) error
}

// New constructs a server with default feed and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithFeed(cfg, logger, nil)
}

func newServerWithFeed(cfg config.Config, logger *slog.Logger, feedClient feed.Client) *Server {
	return newServerWithMetrics(cfg, logger, feedClient, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, feedClient feed.Client, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if feedClient == nil {
		feedClient = newFeedFactory(logger, recorder).build(cfg)
	} else {
		feedClient = feed.NewRetryingClient(feedClient, logger, recorder, 0, 0)
	}

	aggregator := buildEnrichment(cfg, logger, recorder)
	memoryStore, driverSvc, raceSvc, standingSvc := buildServices(cfg, feedClient, aggregator, logger)
	plr := poller.New(cfg.Season, []poller.Refresher{driverSvc, raceSvc}, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, driverSvc, raceSvc, standingSvc, logger, recorder, plr)

	return &Server{
		cfg:              cfg,
		logger:           logger,
		metrics:          recorder,
		store:            memoryStore,
		driversService:   driverSvc,
		racesService:     raceSvc,
		standingsService: standingSvc,
		httpServer:       httpSrv,
		metricsServer:    metricsSrv,
		poller:           plr,
		metricsStop:      metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, driverSvc *drivers.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:            cfg,
		logger:         logger,
		driversService: driverSvc,
		httpServer:     httpSrv,
		poller:         plr,
	}
}

func buildEnrichment(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *enrich.Aggregator {
	scraper := wiki.NewScraper(wiki.NewClient(wiki.Config{BaseURL: cfg.Wikipedia.BaseURL}), cfg.Season, logger, recorder)
	resolver := assets.NewResolver(assets.NewHTTPProber(nil), logger, recorder)
	return enrich.New(scraper, scraper, resolver, cfg.Enrichment.MaxInFlight)
}

func buildServices(cfg config.Config, feedClient feed.Client, aggregator *enrich.Aggregator, logger *slog.Logger) (*store.MemoryStore, *drivers.Service, *races.Service, *standings.Service) {
	memoryStore := store.NewMemoryStore()
	driverSvc := drivers.NewService(feedClient, memoryStore, aggregator, logger)
	raceSvc := races.NewService(feedClient, memoryStore, aggregator, logger)
	standingSvc := standings.NewService(feedClient, aggregator, logger)
	return memoryStore, driverSvc, raceSvc, standingSvc
}

func buildHTTPServer(cfg config.Config, driverSvc *drivers.Service, raceSvc *races.Service, standingSvc *standings.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(driverSvc, raceSvc, standingSvc, cfg.Season, logger, statusFn)
	router := handlers.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.Logging(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation
// to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
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

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
