package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dagu-org/psig/internal/build"
	"github.com/dagu-org/psig/internal/logger"
	"github.com/dagu-org/psig/internal/telemetry"
)

func metricsRouter(lib telemetry.Library) http.Handler {
	registry := telemetry.NewRegistry(telemetry.NewCollector(build.Version, lib))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return r
}

// serveMetrics starts the metrics endpoint and returns a function that stops it.
func serveMetrics(ctx context.Context, addr string, lib telemetry.Library) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           metricsRouter(lib),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "Metrics server stopped", "err", err)
		}
	}()
	logger.Info(ctx, "Serving metrics", "addr", ln.Addr().String())

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn(ctx, "Failed to stop metrics server", "err", err)
		}
	}, nil
}
