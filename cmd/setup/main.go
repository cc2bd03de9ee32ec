// Command setup prepares the PostgreSQL database: it waits for the server,
// optionally drops the database, creates it when missing and applies the
// embedded migrations.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/punaab/discord-ts-UQkA/internal/config"
	"github.com/punaab/discord-ts-UQkA/internal/database"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
)

const retryInterval = 2 * time.Second

func main() {
	reset := flag.Bool("reset", false, "drop the database before creating it")
	wait := flag.Int("wait", 30, "connection attempts before giving up")
	flag.Parse()

	cfg := config.LoadDB()
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "orchard-setup", config.DefaultVersion, cfg.Environment, false))

	ctx := context.Background()
	if err := setup(ctx, cfg, *reset, *wait); err != nil {
		log.Fatalf("Setup failed: %v", err)
	}
	slog.Info("✅ Database ready", "db", cfg.DBName)
}

func setup(ctx context.Context, cfg *config.Config, reset bool, attempts int) error {
	conn, err := connectWithRetry(ctx, cfg.GetServerConnString(), attempts)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	name := pgx.Identifier{cfg.DBName}.Sanitize()

	if reset {
		slog.Info("Terminating existing connections", "db", cfg.DBName)
		if _, err := conn.Exec(ctx, `
			SELECT pg_terminate_backend(pid)
			FROM pg_stat_activity
			WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName); err != nil {
			slog.Warn("Failed to terminate connections", "error", err)
		}
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+name); err != nil {
			return fmt.Errorf("failed to drop database: %w", err)
		}
		slog.Info("Database dropped", "db", cfg.DBName)
	}

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if !exists {
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+name); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
		slog.Info("Database created", "db", cfg.DBName)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	return database.Migrate(ctx, pool)
}

// connectWithRetry waits for the server to accept connections
func connectWithRetry(ctx context.Context, connString string, attempts int) (*pgx.Conn, error) {
	var lastErr error
	for i := 1; i <= max(attempts, 1); i++ {
		conn, err := pgx.Connect(ctx, connString)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		slog.Info("Database not ready", "attempt", i, "of", attempts, "error", err)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("database not ready after %d attempts: %w", attempts, lastErr)
}
