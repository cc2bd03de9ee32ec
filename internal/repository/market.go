package repository

import (
	"context"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// MarketRepository persists the pricing epoch
type MarketRepository interface {
	GetMarketState(ctx context.Context) (*domain.MarketState, error)
	SaveMarketState(ctx context.Context, state *domain.MarketState) error
}
