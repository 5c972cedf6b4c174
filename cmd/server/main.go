// Command server runs the interactive quake globe: it fetches the USGS feed
// into an immutable snapshot and serves a Plotly 3D globe whose marker-size
// and depth-exaggeration sliders re-render from that snapshot.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	bordersadapter "github.com/seismoview/quake-globe/internal/adapter/borders"
	"github.com/seismoview/quake-globe/internal/adapter/httpapi"
	kafkaadapter "github.com/seismoview/quake-globe/internal/adapter/kafka"
	"github.com/seismoview/quake-globe/internal/adapter/usgs"
	"github.com/seismoview/quake-globe/internal/config"
	"github.com/seismoview/quake-globe/internal/observability"
	"github.com/seismoview/quake-globe/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	quakes := usgs.NewClient(cfg.QuakeFeedURL, cfg.FetchTimeout, metrics, logger)

	// Borders are decorative; nil disables the overlay entirely.
	var borderSrc pipeline.BorderFetcher
	if cfg.BordersEnabled {
		borderSrc = bordersadapter.NewClient(cfg.BordersURL, cfg.FetchTimeout, metrics, logger)
	} else {
		logger.Info("border overlay disabled")
	}

	// Kafka sink is feature-flagged via KAFKA_ENABLED.
	var publisher pipeline.Publisher
	var sink *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		sink = kafkaadapter.NewWriter(cfg, logger)
		publisher = sink
		metrics.SinkEnabled.Set(1)
		logger.Info("kafka sink enabled", "topic", cfg.KafkaSinkTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("kafka sink disabled")
	}

	p := pipeline.New(quakes, borderSrc, publisher, cfg.RefreshInterval, clockwork.NewRealClock(), logger, metrics)

	srv := httpapi.NewServer(cfg.HTTPAddr, p, cfg.SphereGrid, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start snapshot pipeline. A failed primary fetch degrades to an empty
	// globe rather than killing the process.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if sink != nil {
		if err := sink.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
