package orchard

import (
	"context"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/economy"
	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
)

// GetMarket prices every rarity for the current epoch and compares each
// price with the last 24h of sales
func (s *service) GetMarket(ctx context.Context) (*domain.MarketReport, error) {
	state, err := s.repos.Market.GetMarketState(ctx)
	if err != nil {
		return nil, infra(ErrMsgLoadMarketFailed, err)
	}
	now := s.accounts.Now()
	sales, err := s.repos.Inventory.GetSalesSince(ctx, now.Add(-domain.MarketTrendWindow))
	if err != nil {
		return nil, infra(ErrMsgLoadSalesFailed, err)
	}
	return economy.BuildMarketReport(state.Seed, now, sales), nil
}

// RotateMarket advances the persisted epoch when the clock has moved into
// a new pricing window. It reports whether a rotation happened.
func (s *service) RotateMarket(ctx context.Context) (bool, error) {
	state, err := s.repos.Market.GetMarketState(ctx)
	if err != nil {
		return false, infra(ErrMsgLoadMarketFailed, err)
	}
	now := s.accounts.Now()
	epoch := economy.EpochAt(now)
	if state.Epoch >= epoch {
		return false, nil
	}

	state.Epoch = epoch
	state.RotatedAt = now
	if err := s.repos.Market.SaveMarketState(ctx, state); err != nil {
		return false, infra(ErrMsgSaveMarketFailed, err)
	}

	prices := economy.PriceNames(economy.PricesFor(state.Seed, epoch))
	logger.FromContext(ctx).Info(LogMsgMarketRotated, "epoch", epoch, "prices", prices)
	s.publish(ctx, event.NewMarketRotatedEvent(epoch, prices))
	return true, nil
}
