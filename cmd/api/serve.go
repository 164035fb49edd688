package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/WailSalutem-Health-Care/ward-service/internal/config"
	wardhttp "github.com/WailSalutem-Health-Care/ward-service/internal/http"
	"github.com/WailSalutem-Health-Care/ward-service/internal/logger"
	"github.com/WailSalutem-Health-Care/ward-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/ward-service/internal/photo"
	"github.com/WailSalutem-Health-Care/ward-service/internal/session"
	"github.com/WailSalutem-Health-Care/ward-service/internal/telemetry"
	"github.com/WailSalutem-Health-Care/ward-service/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, telemetry.DefaultServiceName)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := telemetry.InitProvider(ctx, telemetry.LoadConfig(), log)
	if err != nil {
		log.Warn("telemetry unavailable", zap.Error(err))
	}
	metrics, err := telemetry.InitMetrics()
	if err != nil {
		log.Warn("failed to create metrics", zap.Error(err))
	}

	publisher := messaging.Connect(cfg.RabbitMQURL, log)
	defer publisher.Close()

	handler := wardhttp.NewHandler(wardhttp.Deps{
		Store:          session.NewStore(),
		Publisher:      publisher,
		Metrics:        metrics,
		Logger:         log,
		Notifier:       view.NewLogNotifier(log),
		Photos:         photo.NewDecoder(cfg.PhotoMaxBytes),
		Shifts:         cfg.Ward.Shifts,
		AppInfo:        cfg.Ward.AppInfo,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("ward-service listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	if provider != nil {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Error("telemetry shutdown failed", zap.Error(err))
		}
	}
	return nil
}
