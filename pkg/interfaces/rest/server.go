// Package rest exposes the balancing pipeline over HTTP: a health probe,
// takt analysis, balancing and worksheet export, mirroring the endpoints the
// line-supervisor frontend consumes.
package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vsinha/linebalance/pkg/application/services/analysis"
	"github.com/vsinha/linebalance/pkg/application/services/balancing"
	"github.com/vsinha/linebalance/pkg/domain/entities"
	"github.com/vsinha/linebalance/pkg/domain/repositories"
	"github.com/vsinha/linebalance/pkg/infrastructure/events"
	"github.com/vsinha/linebalance/pkg/infrastructure/metrics"
	"github.com/vsinha/linebalance/pkg/infrastructure/repositories/csv"
)

// ServerConfig holds configuration for the REST server
type ServerConfig struct {
	Addr       string
	Logger     *slog.Logger
	Metrics    metrics.Collector
	EventStore events.Store
	CTFallback csv.CTFallback
	Analyzer   *analysis.LineAnalyzer
}

// balancingService is satisfied by both the plain and the event-driven service
type balancingService interface {
	Balance(ctx context.Context, repo repositories.ProcessRepository, req balancing.Request) (*entities.LineResult, error)
	Takt(ctx context.Context, repo repositories.ProcessRepository, totalOperators int, basis entities.TimeBasis) (*entities.TaktAnalysis, error)
}

// Server serves the balancing endpoints
type Server struct {
	config  ServerConfig
	service balancingService
	loader  *csv.Loader
	logger  *slog.Logger
	metrics metrics.Collector
	handler http.Handler
}

// NewServer creates a server with routes and middleware wired
func NewServer(config ServerConfig) *Server {
	if config.Addr == "" {
		config.Addr = ":8000"
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Metrics == nil {
		config.Metrics = metrics.NewNop()
	}

	analyzer := config.Analyzer
	if analyzer == nil {
		analyzer = analysis.NewLineAnalyzer()
	}

	var service balancingService
	if config.EventStore != nil {
		service = balancing.NewEventDrivenServiceWithAnalyzer(analyzer, config.EventStore)
	} else {
		service = balancing.NewServiceWithAnalyzer(analyzer)
	}

	s := &Server{
		config:  config,
		service: service,
		loader:  csv.NewLoaderWithFallback(config.CTFallback),
		logger:  config.Logger,
		metrics: config.Metrics,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /balance", s.handleBalance)
	mux.HandleFunc("POST /export", s.handleExport)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.handler = s.corsMiddleware(s.loggingMiddleware(s.metricsMiddleware(mux)))
	return s
}

// Handler returns the server's full middleware chain
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	s.logger.Info("server started", "addr", s.config.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("server shutting down")
		return server.Shutdown(shutdownCtx)
	}
}
