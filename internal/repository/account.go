package repository

import (
	"context"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// AccountRepository persists player accounts
type AccountRepository interface {
	// GetAccount returns domain.ErrAccountNotFound when key is unknown
	GetAccount(ctx context.Context, key string) (*domain.Account, error)
	// CreateAccount inserts a new account at version 1. Creating an
	// existing key is not an error; the stored account is left as is.
	CreateAccount(ctx context.Context, account *domain.Account) error
	BeginTx(ctx context.Context) (AccountTx, error)

	GetLeaderboard(ctx context.Context, metric domain.LeaderboardMetric, limit int) ([]domain.LeaderboardEntry, error)
	// GetRank returns the 1-based rank of key, or 0 if it has no account
	GetRank(ctx context.Context, metric domain.LeaderboardMetric, key string) (int, error)

	// ClearDailyQuestsStartedBefore drops daily quests older than boundary
	// so they are re-rolled on next access
	ClearDailyQuestsStartedBefore(ctx context.Context, boundary time.Time) (int64, error)
}

// AccountTx groups an account write with the inventory changes it implies
type AccountTx interface {
	Tx
	// SaveAccount overwrites the account if its stored version still equals
	// account.Version and bumps the version. A stale version yields
	// domain.ErrVersionConflict.
	SaveAccount(ctx context.Context, account *domain.Account) error
	CreateFruits(ctx context.Context, fruits []*domain.Fruit) error
	MarkFruitsSold(ctx context.Context, fruits []*domain.Fruit) error
	TransferFruit(ctx context.Context, fruitID, fromKey, toKey string) error
}
