package orchard

import (
	"context"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/economy"
	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
)

// Sell sells the account's unsold fruit. Each fruit is sold for its own
// value and every fruit in the batch shares one sale timestamp.
func (s *service) Sell(ctx context.Context, key string, rarity *domain.Rarity) (*domain.SaleResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "account", key, "rarity", rarity)

	if err := requireKey(key); err != nil {
		return nil, err
	}
	if rarity != nil && !rarity.Valid() {
		return nil, domain.ErrInvalidRarity
	}

	var result *domain.SaleResult
	_, err := s.accounts.Update(ctx, key, func(tx repository.AccountTx, acct *domain.Account) error {
		fruits, err := s.repos.Inventory.GetUnsoldFruits(ctx, acct.Key)
		if err != nil {
			return infra(ErrMsgLoadInventoryFailed, err)
		}
		fruits = economy.FilterByRarity(fruits, rarity)
		if len(fruits) == 0 {
			return domain.ErrNothingToSell
		}

		result = economy.Sell(acct, fruits, s.accounts.Now())
		if err := tx.MarkFruitsSold(ctx, fruits); err != nil {
			return infra(ErrMsgMarkSoldFailed, err)
		}
		result.NewlyComplete = s.tracker.RefreshAchievements(acct)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgSellCompleted, "account", key, "count", result.Count, "total", result.Total)
	s.publish(ctx, event.NewFruitSoldEvent(key, result.Count, result.Total))
	return result, nil
}

// GetInventory groups unsold fruit by rarity
func (s *service) GetInventory(ctx context.Context, key string) (*domain.InventorySummary, error) {
	if err := requireKey(key); err != nil {
		return nil, err
	}
	if _, err := s.accounts.Get(ctx, key); err != nil {
		return nil, err
	}
	fruits, err := s.repos.Inventory.GetUnsoldFruits(ctx, key)
	if err != nil {
		return nil, infra(ErrMsgLoadInventoryFailed, err)
	}
	return economy.SummarizeInventory(key, fruits), nil
}
