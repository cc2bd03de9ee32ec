package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/config"
	"github.com/punaab/discord-ts-UQkA/internal/discord"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/session"
)

const (
	serviceName     = "orchard-discord"
	shutdownTimeout = 5 * time.Second
)

func main() {
	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, serviceName, config.DefaultVersion, cfg.Environment, addSource))
	slog.Info("Configured API URL", "url", cfg.APIURL)

	if err := run(cfg); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.BotConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	bot, err := discord.New(discord.Config{
		Token:  cfg.Token,
		AppID:  cfg.AppID,
		APIURL: cfg.APIURL,
		APIKey: cfg.APIKey,
	}, session.NewManager(store))
	if err != nil {
		return err
	}
	bot.RegisterDefaults()

	health := discord.NewHTTPServer(cfg.HealthPort, bot)
	health.Start()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := health.Stop(shutdownCtx); err != nil {
			slog.Error("Health server shutdown failed", "error", err)
		}
	}()

	if cfg.ForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(cfg.ForceCommandUpdate); err != nil {
		// the bot still works when the commands were registered before
		slog.Error("Failed to register commands", "error", err)
	}

	return bot.Run(ctx)
}

// newSessionStore uses Redis when an address is configured so several bot
// processes share button sessions, and the in-memory store otherwise
func newSessionStore(ctx context.Context, cfg *config.BotConfig) (session.Store, func(), error) {
	if cfg.RedisAddr == "" {
		slog.Info("Using in-memory session store")
		return session.NewMemoryStore(session.DefaultMemoryCapacity), func() {}, nil
	}

	client, err := session.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Using Redis session store", "addr", cfg.RedisAddr)
	return session.NewRedisStore(client), func() {
		if err := client.Close(); err != nil {
			slog.Error("Failed to close Redis client", "error", err)
		}
	}, nil
}
