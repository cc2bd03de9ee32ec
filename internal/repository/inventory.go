package repository

import (
	"context"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// InventoryRepository reads fruits outside of account transactions
type InventoryRepository interface {
	// GetUnsoldFruits returns the owner's unsold fruits oldest first
	GetUnsoldFruits(ctx context.Context, ownerKey string) ([]*domain.Fruit, error)
	CountUnsoldFruits(ctx context.Context, ownerKey string) (int, error)
	// GetSalesSince returns fruits sold at or after since
	GetSalesSince(ctx context.Context, since time.Time) ([]*domain.Fruit, error)
}
