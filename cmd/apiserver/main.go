// API server entry point for hsn-advisor.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/hsn-advisor/internal/application/advisor"
	"github.com/turtacn/hsn-advisor/internal/config"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/dataset"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/metrics"
	httpserver "github.com/turtacn/hsn-advisor/internal/interfaces/http"
)

const defaultConfigPath = "configs/config.yaml"

// Build-time variables injected via ldflags.
var version = "dev"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting hsn-advisor API server",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port),
		logging.String("dataset", cfg.Dataset.Path),
	)

	m := metrics.New()
	svc := advisor.NewService(dataset.Source{
		Path:              cfg.Dataset.Path,
		Format:            cfg.Dataset.Format,
		CodeColumn:        cfg.Dataset.CodeColumn,
		DescriptionColumn: cfg.Dataset.DescriptionColumn,
	}, advisor.Options{
		Metrics: m,
		Logger:  logger.Named("advisor"),
	})

	// A failed initial load is not fatal: the server starts, /readyz reports
	// not_ready, and an upload or a fixed file followed by a reload recovers.
	if err := svc.Reload(); err != nil {
		logger.Error("initial dataset load failed, serving not-ready", logging.Err(err))
	}

	var watcher *dataset.Watcher
	if cfg.Dataset.Watch {
		watcher, err = dataset.NewWatcher(cfg.Dataset.Path, cfg.Dataset.WatchDebounce, func() {
			if err := svc.Reload(); err != nil {
				logger.Error("auto-reload failed", logging.Err(err))
				return
			}
			svc.ResetTracker()
		}, logger.Named("watcher"))
		if err != nil {
			logger.Error("failed to create dataset watcher", logging.Err(err))
			os.Exit(1)
		}
		if err := watcher.Start(); err != nil {
			logger.Error("failed to start dataset watcher", logging.Err(err))
			os.Exit(1)
		}
	}

	router := httpserver.NewRouter(svc, cfg, httpserver.RouterOptions{
		Logger:  logger,
		Metrics: m,
		Version: version,
	})
	srv := httpserver.NewServer(cfg.Server, router, logger.Named("server"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutdown signal received", logging.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Error("http server failed", logging.Err(err))
		}
	}

	if watcher != nil {
		_ = watcher.Close()
	}
	if err := srv.Stop(context.Background()); err != nil {
		logger.Error("shutdown error", logging.Err(err))
		os.Exit(1)
	}
	logger.Info("hsn-advisor stopped")
}

// loadConfig loads the config file when present, otherwise falls back to
// environment variables plus built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err == nil {
		return config.Load(path)
	}
	fmt.Fprintf(os.Stderr, "config file %s not found, using environment and defaults\n", path)
	return config.LoadFromEnv()
}
