package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
)

// MarketRepository persists the single market_state row
type MarketRepository struct {
	db *pgxpool.Pool
}

var _ repository.MarketRepository = (*MarketRepository)(nil)

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(db *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{db: db}
}

// GetMarketState returns the stored epoch and seed. The migration seeds the
// row; if it was removed a fresh seed is persisted.
func (r *MarketRepository) GetMarketState(ctx context.Context) (*domain.MarketState, error) {
	var state domain.MarketState
	err := r.db.QueryRow(ctx, queryGetMarketState).Scan(&state.Epoch, &state.Seed, &state.RotatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		state = domain.MarketState{Seed: rand.Int64N(1 << 31)}
		if err := r.SaveMarketState(ctx, &state); err != nil {
			return nil, err
		}
		return &state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMarketState, err)
	}
	state.RotatedAt = state.RotatedAt.UTC()
	return &state, nil
}

func (r *MarketRepository) SaveMarketState(ctx context.Context, state *domain.MarketState) error {
	if _, err := r.db.Exec(ctx, querySaveMarketState, state.Epoch, state.Seed, state.RotatedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveMarketState, err)
	}
	return nil
}
