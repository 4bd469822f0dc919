package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"wastewise/internal/api"
	"wastewise/internal/config"
	"wastewise/internal/metrics"
	"wastewise/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API and metrics servers",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	source, release, err := openProvider(cfg, log)
	if err != nil {
		return err
	}
	defer release()

	if log.Enabled(context.Background(), slog.LevelDebug) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	mc := metrics.NewCollector()
	data := provider.NewFallback(source, log, mc)
	a := newAnalyzer(cfg, log, mc)

	apiServer := api.NewServer(data, a,
		api.WithJWTSecret(cfg.Auth.JWTSecret),
		api.WithLogger(log),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = startMetricsServer(cfg.Metrics, mc, log)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: apiServer.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting API server", "port", cfg.Server.Port, "auth", cfg.Auth.JWTSecret != "")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down servers")
	case err := <-errCh:
		return fmt.Errorf("API server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Error("metrics server shutdown", "error", err)
		}
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("API server shutdown: %w", err)
	}
	return nil
}

func startMetricsServer(cfg config.MetricsConfig, mc *metrics.Collector, log *slog.Logger) *http.Server {
	metricsRouter := gin.New()
	metricsRouter.GET(cfg.Path, gin.WrapH(mc.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: metricsRouter,
	}

	go func() {
		log.Info("starting metrics server", "port", cfg.Port, "path", cfg.Path)
		if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server error", "error", err)
		}
	}()
	return metricsServer
}
