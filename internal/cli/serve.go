package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zonewatch-systems/zonewatch/internal/augment"
	"github.com/zonewatch-systems/zonewatch/internal/export"
	"github.com/zonewatch-systems/zonewatch/internal/generator"
	"github.com/zonewatch-systems/zonewatch/internal/handlers"
	"github.com/zonewatch-systems/zonewatch/internal/logging"
	"github.com/zonewatch-systems/zonewatch/internal/pipeline"
	"github.com/zonewatch-systems/zonewatch/internal/server"
	"github.com/zonewatch-systems/zonewatch/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ZoneWatch API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := logging.New(cfg.Logging)
	logger = logger.With(logging.Service("zonewatch"))

	capability := augment.NewCapability(cfg.Augment)
	if _, disabled := capability.(augment.NoopCapability); disabled {
		logger.Warn("no augmentation credentials configured; running in degraded mode")
	}

	exporter, err := export.New(cfg.Data.Dir)
	if err != nil {
		return err
	}

	pipe := pipeline.New(cfg, capability, logger)
	gen := generator.New(cfg, 0)
	svc := service.New(cfg, pipe, gen, exporter, logger)
	handler := handlers.NewHandler(svc)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.NewRouter(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		logger.Info("zonewatch listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
