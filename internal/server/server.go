package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"nba-chat-service/internal/chat"
	"nba-chat-service/internal/config"
	"nba-chat-service/internal/domain"
	httpserver "nba-chat-service/internal/http"
	"nba-chat-service/internal/http/handlers"
	"nba-chat-service/internal/http/middleware"
	"nba-chat-service/internal/lexicon"
	"nba-chat-service/internal/logging"
	"nba-chat-service/internal/metrics"
	"nba-chat-service/internal/nlq"
	"nba-chat-service/internal/poller"
	"nba-chat-service/internal/providers"
	"nba-chat-service/internal/resolve"
	"nba-chat-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.ResolverStore
	dispatcher    *chat.Dispatcher
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider), 0, 0)
	}

	resolverStore := store.NewResolverStore()
	plr := poller.New(provider, indexBuilder(cfg, resolverStore), logger, recorder, time.Duration(cfg.RosterRefreshInterval))
	seedVocabulary(cfg, resolverStore, plr, logger)

	dispatcher := chat.NewDispatcher(resolverStore, provider, logger, recorder)
	httpSrv := buildHTTPServer(cfg, dispatcher, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         resolverStore,
		dispatcher:    dispatcher,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, dispatcher *chat.Dispatcher, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		dispatcher: dispatcher,
		httpServer: httpSrv,
		poller:     plr,
	}
}

// indexBuilder returns the callback the poller uses to rebuild the resolver
// snapshot from a fresh roster. Each rebuild merges the roster names over
// the built-in lexicon and swaps in a whole new immutable snapshot.
func indexBuilder(cfg config.Config, resolverStore *store.ResolverStore) poller.IndexBuilder {
	return func(roster []domain.Player) error {
		names := make([]string, 0, len(roster))
		for _, p := range roster {
			names = append(names, p.Name)
		}
		aliases, lex, err := lexicon.Load(cfg.Resolver.LexiconPath, names)
		if err != nil {
			return err
		}
		resolverStore.SetSnapshot(buildSnapshot(cfg, aliases, lex))
		return nil
	}
}

// seedVocabulary installs the built-in lexicon before the first upstream
// refresh so the service can answer as soon as it is listening.
func seedVocabulary(cfg config.Config, resolverStore *store.ResolverStore, plr Poller, logger *slog.Logger) {
	aliases, lex, err := lexicon.Load(cfg.Resolver.LexiconPath, nil)
	if err != nil {
		logging.Warn(logger, "lexicon overlay failed, using built-in vocabulary", "err", err)
		aliases, lex = lexicon.Defaults()
	}
	resolverStore.SetSnapshot(buildSnapshot(cfg, aliases, lex))
	plr.MarkSeeded()
}

func buildSnapshot(cfg config.Config, aliases *lexicon.AliasTable, lex *lexicon.MetricLexicon) *store.Snapshot {
	resolvers := resolve.Build(aliases, lex, resolve.Thresholds{
		Name:   cfg.Resolver.NameThreshold,
		Metric: cfg.Resolver.MetricThreshold,
	})
	return &store.Snapshot{
		Resolvers:  resolvers,
		Classifier: nlq.NewClassifier(aliases, lex),
	}
}

func buildHTTPServer(cfg config.Config, dispatcher *chat.Dispatcher, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(dispatcher, logger, statusFn)
	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(plr, cfg.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
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

	// Stop rate-limited providers to avoid ticker leaks when present.
	if rl, ok := s.pollerProvider().(interface{ Close() }); ok {
		rl.Close()
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

// pollerProvider attempts to extract the underlying provider from the poller when available.
// Best-effort helper to enable cleanup of rate-limited tickers; safe if not supported.
func (s *Server) pollerProvider() providers.RosterProvider {
	if pa, ok := s.poller.(interface {
		Provider() providers.RosterProvider
	}); ok {
		return pa.Provider()
	}
	return nil
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
