package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	consoleadapter "github.com/ceasedesk/console/internal/adapters/console"
	"github.com/ceasedesk/console/internal/bootstrap"
	"github.com/ceasedesk/console/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := bootstrap.New(cfg)

	var metricsServer *http.Server
	if cfg.MetricsPort != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", app.Metrics.Handler())
		metricsServer = &http.Server{
			Addr:        ":" + cfg.MetricsPort,
			Handler:     mux,
			ReadTimeout: 10 * time.Second,
		}
		go func() {
			app.Logger.Info("metrics_listening", "port", cfg.MetricsPort)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("metrics server error: %v", err)
			}
		}()
	}

	ui := consoleadapter.New(app.ConsoleDeps(), os.Stdin, os.Stdout)
	if err := ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("console error: %v", err)
	}

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("metrics shutdown error: %v", err)
		}
	}
}
