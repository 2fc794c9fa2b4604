// Command portal-stub runs the in-memory portal used for local development
// and demos. It serves the same API contract as the production portal and
// loses all state on exit.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"

	"janseva/internal/platform/config"
	"janseva/internal/platform/httpserver"
	"janseva/internal/platform/logger"
	"janseva/internal/stub"
	"janseva/internal/stub/metrics"
	"janseva/internal/stub/store"
	"janseva/internal/stub/token"
)

func main() {
	_, cfg := config.FromEnv()
	addr := flag.String("addr", cfg.Addr, "listen address")
	flag.Parse()

	log := logger.New()

	handler := stub.NewHandler(
		store.NewMemoryStore(),
		token.NewService(cfg.JWTSigningKey, cfg.TokenTTL),
		metrics.New(prometheus.DefaultRegisterer),
		log,
	)
	srv := httpserver.New(*addr, handler.NewRouter())

	log.Info("starting portal stub", "addr", *addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("portal stub stopped")
}
