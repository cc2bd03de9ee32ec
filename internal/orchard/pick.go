package orchard

import (
	"context"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/economy"
	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
)

// Pick rolls a basket of fruit for key, creating the account on first use.
// The fruits, XP, stats, quest progress and achievement progress are saved
// together.
func (s *service) Pick(ctx context.Context, key, username string) (*domain.PickResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPickCalled, "account", key, "username", username)

	if err := requireKey(key); err != nil {
		return nil, err
	}

	var (
		result   *domain.PickResult
		progress economy.LevelProgress
	)
	_, err := s.accounts.UpdateOrCreate(ctx, key, username, func(tx repository.AccountTx, acct *domain.Account) error {
		now := s.accounts.Now()
		wait := economy.PickCooldown(s.cooldowns.Duration(domain.ActionPick), acct.Upgrades.ToolQuality)
		if err := s.cooldowns.CheckWithDuration(domain.ActionPick, acct.LastPickAt, wait, now); err != nil {
			return err
		}

		count := economy.PickCount(acct.Level, acct.Upgrades.BasketCapacity)
		fruits := s.roller.Roll(acct, count, now)
		if err := tx.CreateFruits(ctx, fruits); err != nil {
			return infra(ErrMsgCreateFruitsFailed, err)
		}

		xp := economy.XPForRoll(fruits)
		progress = economy.GrantXP(acct, xp)
		acct.Stats.TotalPicked += len(fruits)
		for _, f := range fruits {
			if f.Rarity.AtLeast(domain.RarityRare) {
				acct.Stats.RareFruitsFound++
			}
		}

		s.tracker.EnsureCycles(acct, now)
		s.tracker.ApplyFruits(acct, fruits)
		completed := s.tracker.RefreshAchievements(acct)

		pickedAt := now
		acct.LastPickAt = &pickedAt

		result = &domain.PickResult{
			Fruits:        fruits,
			XPGained:      xp,
			XP:            acct.XP,
			Level:         acct.Level,
			LevelUp:       progress.LeveledUp(),
			Quests:        acct.Quests,
			NewlyComplete: completed,
			NextPickAt:    now.Add(wait),
			Cooldown:      wait,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgPickCompleted, "account", key, "count", len(result.Fruits), "xp", result.XPGained)
	if progress.LeveledUp() {
		log.Info(LogMsgLevelUp, "account", key, "old_level", progress.OldLevel, "new_level", progress.NewLevel)
	}
	if len(result.NewlyComplete) > 0 {
		log.Info(LogMsgAchievementsReady, "account", key, "achievements", result.NewlyComplete)
	}
	s.publish(ctx, event.NewFruitPickedEvent(key, result.Fruits, result.XPGained))
	s.publishLevelUp(ctx, key, progress)
	return result, nil
}
