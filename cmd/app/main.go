package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/bootstrap"
	"github.com/punaab/discord-ts-UQkA/internal/config"
	"github.com/punaab/discord-ts-UQkA/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if cfg.Storage == config.StoragePostgres {
		warnings, err := config.ValidateEnvWithWarnings()
		if err != nil {
			slog.Error("Environment validation failed", "error", err)
			os.Exit(1)
		}
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		storage.Close()
		return err
	}
	if err := bootstrap.RegisterEventHandlers(bus); err != nil {
		storage.Close()
		return err
	}

	services, err := bootstrap.InitializeServices(storage, bootstrap.CatalogPathsFromConfig(cfg), cfg.DevMode, publisher)
	if err != nil {
		storage.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		DB:             storage.Pinger(),
	}, services)

	jobs := bootstrap.StartJobs(cfg, services.Orchard, services.Quests, publisher)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Jobs:               jobs,
		ResilientPublisher: publisher,
		Storage:            storage,
	})
	return err
}
