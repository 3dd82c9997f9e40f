// Package app wires the service together and runs its lifecycle:
// configuration summary, telemetry, the transcription backends, the job
// orchestrator, and the HTTP server, with signal-driven graceful shutdown.
package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skillsenselab/yt-transcriber/internal/config"
	"github.com/skillsenselab/yt-transcriber/internal/download"
	"github.com/skillsenselab/yt-transcriber/internal/httpapi"
	"github.com/skillsenselab/yt-transcriber/internal/jobs"
	"github.com/skillsenselab/yt-transcriber/internal/logger"
	"github.com/skillsenselab/yt-transcriber/internal/observability"
	"github.com/skillsenselab/yt-transcriber/internal/transcribe/openai"
	"github.com/skillsenselab/yt-transcriber/internal/transcribe/whisper"
	"github.com/skillsenselab/yt-transcriber/internal/util"
)

// gracefulTimeout bounds the whole shutdown sequence.
const gracefulTimeout = 15 * time.Second

// App owns the long-lived pieces of the service.
type App struct {
	cfg *config.Config

	// base is handed to components, which tag it themselves; log carries
	// the app component tag.
	base *logger.Logger
	log  *logger.Logger

	telemetry  *observability.Telemetry
	downloader *download.Downloader
	local      *whisper.Transcriber
	remote     *openai.Transcriber
	server     *httpapi.Server
}

// New creates the application shell and initializes the global logger from
// config. Heavy initialization (model load, exporters, listener) happens
// in Start.
func New(cfg *config.Config) *App {
	logger.Init(cfg.Logging)
	base := logger.GetGlobalLogger()
	return &App{
		cfg:  cfg,
		base: base,
		log:  base.WithComponent("app"),
	}
}

// Start brings up telemetry, the downloader's scratch directory, both
// transcription backends, and the HTTP server. A model that cannot be
// loaded is fatal; a missing OpenAI credential is not, since the local
// route must keep working.
func (a *App) Start(ctx context.Context) error {
	a.logStartup()

	// Telemetry failure degrades the service, never blocks it.
	tel, err := observability.Init(ctx, a.cfg.Telemetry)
	if err != nil {
		a.log.Warn("Telemetry disabled", map[string]interface{}{
			logger.FieldError: err.Error(),
		})
		tel = &observability.Telemetry{}
	}
	a.telemetry = tel

	a.downloader = download.New(a.cfg.Download, a.base)
	if err := a.downloader.EnsureTempDir(); err != nil {
		return err
	}

	local, err := whisper.New(a.cfg.Whisper, a.base)
	if err != nil {
		return fmt.Errorf("load local backend: %w", err)
	}
	a.local = local

	a.remote = openai.New(a.cfg.OpenAI, a.base)

	orchestrator := jobs.New(a.downloader, tel.Metrics, a.base)

	server := httpapi.New(a.cfg.Server, a.base)
	server.ApplyMiddleware()
	httpapi.RegisterRoutes(server.GinEngine(), httpapi.Routes{
		Handler: httpapi.NewHandler(orchestrator, tel.Metrics),
		Local:   a.local,
		Remote:  a.remote,
		Health: httpapi.HealthHandler(a.cfg.Name, a.cfg.Version,
			[]observability.HealthChecker{a.downloader}, a.local, a.remote),
	})
	a.server = server

	if err := server.Start(ctx); err != nil {
		return err
	}

	a.log.Info("Application started", map[string]interface{}{
		"addr":     server.Addr(),
		"backends": []string{a.local.Name(), a.remote.Name()},
	})
	return nil
}

// Run executes the full lifecycle: Start, block until a shutdown signal or
// context cancellation, then graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	if err := a.Start(ctx); err != nil {
		return err
	}

	a.log.Info("Application ready, waiting for shutdown signal")
	a.waitForSignal(ctx)

	return a.Stop(context.Background())
}

// Stop shuts the service down in reverse dependency order: stop accepting
// requests, flush telemetry, release the model. Safe to call on a
// partially started App.
func (a *App) Stop(ctx context.Context) error {
	a.log.Info("Shutting down application", map[string]interface{}{
		"timeout": gracefulTimeout.String(),
	})

	ctx, cancel := context.WithTimeout(ctx, gracefulTimeout)
	defer cancel()

	var errs []error
	if a.server != nil {
		if err := a.server.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if a.telemetry != nil {
		if err := a.telemetry.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("telemetry shutdown: %w", err))
		}
	}
	if a.local != nil {
		if err := a.local.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close model: %w", err))
		}
	}

	a.log.Info("Application shutdown complete")
	return stderrors.Join(errs...)
}

// waitForSignal blocks until SIGINT/SIGTERM or context cancellation.
func (a *App) waitForSignal(ctx context.Context) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.log.Info("Received shutdown signal", map[string]interface{}{
			"signal": sig.String(),
		})
	case <-ctx.Done():
		a.log.Info("Context canceled, shutting down")
	}
}

// logStartup prints the effective configuration. Secrets are masked.
func (a *App) logStartup() {
	a.log.Info("Starting application", map[string]interface{}{
		"name":        a.cfg.Name,
		"version":     a.cfg.Version,
		"environment": a.cfg.Environment,
	})
	a.log.Info("Configuration", map[string]interface{}{
		"addr":          fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port),
		"temp_dir":      a.cfg.Download.TempDir,
		"whisper_model": a.cfg.Whisper.ModelSize,
		"openai_model":  a.cfg.OpenAI.Model,
		"openai_key":    util.MaskSecret(a.cfg.OpenAI.APIKey, 3),
		"telemetry":     a.cfg.Telemetry.Enabled,
	})
}
