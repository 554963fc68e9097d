// Package server wires the daemon together: configuration, repositories,
// the scripture client, the trigger scheduler, the alarm lifecycle and the
// HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	api "versewake/internal/api/http"
	"versewake/internal/audio"
	"versewake/internal/config"
	"versewake/internal/logger"
	alarmrepo "versewake/internal/repository/alarm"
	settingsrepo "versewake/internal/repository/settings"
	"versewake/internal/scripture"
	"versewake/internal/service/lifecycle"
	passagesvc "versewake/internal/service/passage"
	"versewake/internal/trigger"
)

// Options controls the versewake-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override.
	ListenAddress string
	// AlarmsFile provides an optional alarm store path override.
	AlarmsFile string
	// SettingsFile provides an optional passage settings path override.
	SettingsFile string
}

// shutdownTimeout bounds the graceful HTTP shutdown on exit.
const shutdownTimeout = 10 * time.Second

// Run starts the daemon and blocks until the context is cancelled.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "versewake-server")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	listenAddress := cfg.ListenAddress
	if opts.ListenAddress != "" {
		listenAddress = opts.ListenAddress
	}

	alarmsFile := cfg.AlarmsFile
	if opts.AlarmsFile != "" {
		alarmsFile = opts.AlarmsFile
	}

	settingsFile := cfg.SettingsFile
	if opts.SettingsFile != "" {
		settingsFile = opts.SettingsFile
	}

	if cfg.ScriptureAPIKey == "" {
		logger.Warn(ctx, "No scripture API key configured, random verse fetches will fail over to fallbacks")
	}

	alarms := alarmrepo.NewFileRepository(alarmsFile)
	settings := settingsrepo.NewFileRepository(settingsFile)

	client, err := scripture.NewClient(
		cfg.ScriptureBaseURL,
		cfg.ScriptureBibleID,
		cfg.ScriptureAPIKey,
		scripture.WithTimeout(cfg.FetchTimeout),
	)
	if err != nil {
		return fmt.Errorf("initialise scripture client: %w", err)
	}

	provider := passagesvc.NewProvider(client, settings)
	scheduler := trigger.NewTimerScheduler()

	service := lifecycle.NewService(
		alarms,
		scheduler,
		provider,
		audio.NewLoggingPlayer(),
		audio.NewLoggingKeepWarm(),
	)
	scheduler.Notify(service.HandleTrigger)

	// Re-arm persisted alarms before accepting requests.
	if err = service.Restore(ctx); err != nil {
		return fmt.Errorf("restore alarms: %w", err)
	}

	httpServer := &http.Server{
		Addr:              listenAddress,
		Handler:           api.NewRouter(api.NewHandler(service, settings)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.InfoKV(ctx, "Versewake server listening",
		"listen_address", listenAddress,
		"alarms_file", alarmsFile,
		"settings_file", settingsFile)

	// Done channel is closed after Shutdown finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.WarnKV(ctx, "HTTP shutdown incomplete", "error", err)
		}

		if err := scheduler.CancelAll(context.Background()); err != nil {
			logger.WarnKV(ctx, "Failed to cancel pending triggers", "error", err)
		}

		close(done)
	}()

	if err = httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve HTTP: %w", err)
	}

	<-done
	logger.Info(ctx, "HTTP server stopped")

	return nil
}
