package orchard

import (
	"context"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/economy"
	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
)

// GetShop prices every upgrade track for key
func (s *service) GetShop(ctx context.Context, key string) (*domain.Shop, error) {
	if err := requireKey(key); err != nil {
		return nil, err
	}
	acct, err := s.accounts.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return economy.ShopFor(acct), nil
}

// BuyUpgrade buys the next tier of track. Coins are only deducted when the
// whole purchase succeeds.
func (s *service) BuyUpgrade(ctx context.Context, key string, track domain.UpgradeTrack) (*domain.PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyUpgradeCalled, "account", key, "track", track)

	if err := requireKey(key); err != nil {
		return nil, err
	}
	if _, ok := economy.LookupUpgrade(track); !ok {
		return nil, domain.ErrInvalidUpgrade
	}

	var result *domain.PurchaseResult
	_, err := s.accounts.Update(ctx, key, func(tx repository.AccountTx, acct *domain.Account) error {
		var err error
		result, err = economy.Purchase(acct, track)
		if err != nil {
			return err
		}
		s.tracker.RefreshAchievements(acct)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgUpgradePurchased, "account", key, "track", track, "tier", result.NewTier, "price", result.Price)
	s.publish(ctx, event.NewUpgradePurchasedEvent(key, result))
	return result, nil
}
