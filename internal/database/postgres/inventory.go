package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
)

// InventoryRepository reads fruits outside of account transactions
type InventoryRepository struct {
	db *pgxpool.Pool
}

var _ repository.InventoryRepository = (*InventoryRepository)(nil)

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) GetUnsoldFruits(ctx context.Context, ownerKey string) ([]*domain.Fruit, error) {
	return r.queryFruits(ctx, queryUnsoldFruits, ownerKey)
}

func (r *InventoryRepository) CountUnsoldFruits(ctx context.Context, ownerKey string) (int, error) {
	var n int64
	if err := r.db.QueryRow(ctx, queryCountUnsoldFruits, ownerKey).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFruits, err)
	}
	return int(n), nil
}

func (r *InventoryRepository) GetSalesSince(ctx context.Context, since time.Time) ([]*domain.Fruit, error) {
	return r.queryFruits(ctx, querySalesSince, since)
}

func (r *InventoryRepository) queryFruits(ctx context.Context, query string, arg any) ([]*domain.Fruit, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFruits, err)
	}
	fruits, err := pgx.CollectRows(rows, scanFruit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFruits, err)
	}
	return fruits, nil
}
