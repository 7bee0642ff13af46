// Command fina runs the Fina chat server: a static site plus a /chat
// endpoint proxying conversations to an LLM completion API with short-lived
// in-memory history.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fina-ai/fina/config"
	"github.com/fina-ai/fina/logging"
	"github.com/fina-ai/fina/model"
	"github.com/fina-ai/fina/model/anthropic"
	"github.com/fina-ai/fina/model/openai"
	"github.com/fina-ai/fina/server"
	"github.com/fina-ai/fina/session"
	"github.com/fina-ai/fina/telemetry"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fina: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logger, err := logging.New(logging.Config{Level: slog.LevelInfo, Dir: cfg.LogDir})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := context.Background()
	tel, telCleanup, err := telemetry.Init(ctx, "fina", server.Version)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer telCleanup()

	store := session.NewInMemoryStore()

	janitor := session.NewJanitor(store, cfg.SweepInterval, cfg.Retention, logger)
	janitor.Start()
	defer janitor.Stop()

	mdl := buildModel(cfg)
	logger.Info("completion backend selected",
		"provider", mdl.Info().Provider, "model", mdl.Info().Name)
	if cfg.Credential() == "" {
		logger.Warn("no API credential configured; /chat will return the fallback reply")
	}

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(cfg, store, mdl, logger, tel)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: srv.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "port", cfg.Port, "static_dir", cfg.StaticDir)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		// Startup failure (e.g. port already bound) is fatal.
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// buildModel selects the completion backend from configuration.
func buildModel(cfg config.Config) model.Model {
	switch cfg.Backend {
	case config.BackendAnthropic:
		return anthropic.NewModel(func(o *anthropic.Options) {
			o.APIKey = cfg.AnthropicAPIKey
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
		})
	default:
		return openai.NewModel(func(o *openai.Options) {
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
		})
	}
}
