package orchard

import (
	"context"

	"github.com/punaab/discord-ts-UQkA/internal/cooldown"
	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/economy"
)

// GetProfile summarizes the account and when each timed action is ready
func (s *service) GetProfile(ctx context.Context, key string) (*domain.Profile, error) {
	if err := requireKey(key); err != nil {
		return nil, err
	}
	acct, err := s.accounts.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	unsold, err := s.repos.Inventory.CountUnsoldFruits(ctx, key)
	if err != nil {
		return nil, infra(ErrMsgLoadInventoryFailed, err)
	}

	now := s.accounts.Now()
	pickWait := economy.PickCooldown(s.cooldowns.Duration(domain.ActionPick), acct.Upgrades.ToolQuality)
	levelFloor := economy.XPForLevel(acct.Level)

	return &domain.Profile{
		Account:      acct,
		XPIntoLevel:  max(0, acct.XP-levelFloor),
		XPForNext:    economy.XPForLevel(acct.Level+1) - levelFloor,
		NextPickAt:   cooldown.NextAvailable(acct.LastPickAt, pickWait, now),
		NextDailyAt:  cooldown.NextAvailable(acct.LastDailyAt, s.cooldowns.Duration(domain.ActionDaily), now),
		NextStealAt:  cooldown.NextAvailable(acct.LastStealAt, s.cooldowns.Duration(domain.ActionSteal), now),
		UnsoldFruits: unsold,
	}, nil
}
