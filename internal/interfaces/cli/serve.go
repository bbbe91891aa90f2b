package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/turtacn/hsn-advisor/internal/application/advisor"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/dataset"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/metrics"
	httpserver "github.com/turtacn/hsn-advisor/internal/interfaces/http"
)

var servePort int

// NewServeCmd creates the serve command, which runs the same HTTP API as the
// apiserver binary.  Convenient for local development against a test dataset.
func NewServeCmd(ctx *CLIContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(ctx)
		},
	}
	cmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP server port (overrides config)")
	return cmd
}

func runServe(ctx *CLIContext) error {
	cfg := ctx.Config
	if servePort > 0 {
		cfg.Server.Port = servePort
	}
	logger := ctx.Logger

	m := metrics.New()
	svc := advisor.NewService(ctx.Service.Source(), advisor.Options{
		Metrics: m,
		Logger:  logger.Named("advisor"),
	})
	if err := svc.Reload(); err != nil {
		logger.Error("initial dataset load failed, serving not-ready", logging.Err(err))
	}

	var watcher *dataset.Watcher
	if cfg.Dataset.Watch {
		var err error
		watcher, err = dataset.NewWatcher(cfg.Dataset.Path, cfg.Dataset.WatchDebounce, func() {
			if err := svc.Reload(); err != nil {
				logger.Error("auto-reload failed", logging.Err(err))
				return
			}
			svc.ResetTracker()
		}, logger.Named("watcher"))
		if err != nil {
			return err
		}
		if err := watcher.Start(); err != nil {
			return err
		}
		defer watcher.Close()
	}

	router := httpserver.NewRouter(svc, cfg, httpserver.RouterOptions{
		Logger:  logger,
		Metrics: m,
		Version: Version,
	})
	srv := httpserver.NewServer(cfg.Server, router, logger.Named("server"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}
	return srv.Stop(context.Background())
}
