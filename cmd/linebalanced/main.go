package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vsinha/linebalance/pkg/infrastructure/events"
	"github.com/vsinha/linebalance/pkg/infrastructure/metrics"
	"github.com/vsinha/linebalance/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/linebalance/pkg/infrastructure/tracing"
	"github.com/vsinha/linebalance/pkg/interfaces/rest"
)

func main() {
	var (
		addr         = flag.String("addr", ":8000", "Listen address for the HTTP server")
		ctFallback   = flag.String("ct-fallback", "zero", "CT fallback policy: zero, smv")
		traceFile    = flag.String("trace", "", "Write OpenTelemetry spans to the given file")
		logJSON      = flag.Bool("log-json", false, "Emit logs as JSON")
		recordEvents = flag.Bool("events", false, "Record balance run events in memory")
	)
	flag.Parse()

	logger := newLogger(*logJSON)

	fallback, err := csv.ParseCTFallback(*ctFallback)
	if err != nil {
		logger.Error("invalid ct-fallback flag", "error", err)
		os.Exit(1)
	}

	if *traceFile != "" {
		if err := tracing.Init("linebalanced", "1.0.0", *traceFile); err != nil {
			logger.Error("failed to initialise tracing", "error", err)
			os.Exit(1)
		}
	}

	config := rest.ServerConfig{
		Addr:       *addr,
		Logger:     logger,
		Metrics:    metrics.NewPrometheus(nil, ""),
		CTFallback: fallback,
	}
	if *recordEvents {
		config.EventStore = events.NewInMemoryStore()
	}

	server := rest.NewServer(config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(json bool) *slog.Logger {
	if json {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
