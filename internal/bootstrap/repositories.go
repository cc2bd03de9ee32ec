package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/punaab/discord-ts-UQkA/internal/config"
	"github.com/punaab/discord-ts-UQkA/internal/database"
	"github.com/punaab/discord-ts-UQkA/internal/database/memory"
	"github.com/punaab/discord-ts-UQkA/internal/database/postgres"
	"github.com/punaab/discord-ts-UQkA/internal/handler"
	"github.com/punaab/discord-ts-UQkA/internal/orchard"
	"github.com/punaab/discord-ts-UQkA/internal/utils"
)

// Storage holds the repositories for the configured backend. Pool is nil
// for the in-memory backend.
type Storage struct {
	Repos orchard.Repositories
	Pool  *pgxpool.Pool
}

// InitializeStorage connects the configured backend. Postgres is migrated to
// the latest schema before use.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgUsingPostgres, "host", cfg.DBHost, "db", cfg.DBName)
		return NewPostgresStorage(pool), nil
	case config.StorageMemory:
		slog.Warn(LogMsgUsingMemory)
		return NewMemoryStorage(utils.SecureSeed()), nil
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorage, cfg.Storage)
	}
}

// NewPostgresStorage wires every repository to pool
func NewPostgresStorage(pool *pgxpool.Pool) *Storage {
	return &Storage{
		Pool: pool,
		Repos: orchard.Repositories{
			Accounts:  postgres.NewAccountRepository(pool),
			Inventory: postgres.NewInventoryRepository(pool),
			Market:    postgres.NewMarketRepository(pool),
			Guilds:    postgres.NewGuildRepository(pool),
		},
	}
}

// NewMemoryStorage backs every repository with one in-process store
func NewMemoryStorage(marketSeed int64) *Storage {
	store := memory.NewStore(marketSeed)
	return &Storage{
		Repos: orchard.Repositories{
			Accounts:  store,
			Inventory: store,
			Market:    store,
			Guilds:    store,
		},
	}
}

// Pinger returns the database health probe, or nil without a pool so the
// health handler never sees a typed nil
func (s *Storage) Pinger() handler.Pinger {
	if s.Pool == nil {
		return nil
	}
	return s.Pool
}

// Close releases the pool, if any
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
