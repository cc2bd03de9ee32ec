package orchard

import (
	"context"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/economy"
	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
)

// ClaimDaily pays the daily reward once per 24h, creating the account on
// first use
func (s *service) ClaimDaily(ctx context.Context, key, username string) (*domain.DailyResult, error) {
	logger.FromContext(ctx).Info(LogMsgDailyCalled, "account", key)

	if err := requireKey(key); err != nil {
		return nil, err
	}

	var result *domain.DailyResult
	_, err := s.accounts.UpdateOrCreate(ctx, key, username, func(tx repository.AccountTx, acct *domain.Account) error {
		now := s.accounts.Now()
		if err := s.cooldowns.Check(domain.ActionDaily, acct.LastDailyAt, now); err != nil {
			return err
		}
		result = economy.ClaimDaily(acct, now)
		s.tracker.RefreshAchievements(acct)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.NewClaimEvent(event.DailyClaimed, key, domain.ActionDaily, result.Reward, 0, 0))
	return result, nil
}
