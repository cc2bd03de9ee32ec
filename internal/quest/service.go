package quest

import (
	"context"
	"fmt"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/account"
	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
)

// Service defines quest and achievement operations
type Service interface {
	// GetQuestBoard returns both quest slots, rolling absent or expired ones
	GetQuestBoard(ctx context.Context, key string) (*domain.QuestBoard, error)
	ClaimQuest(ctx context.Context, key string, cycle domain.QuestCycle) (*domain.QuestClaimResult, error)

	GetAchievements(ctx context.Context, key string) ([]domain.AchievementView, error)
	ClaimAchievement(ctx context.Context, key, name string) (*domain.AchievementClaimResult, error)

	// ResetDailyQuests drops daily quests started before boundary
	ResetDailyQuests(ctx context.Context, boundary time.Time) (int64, error)
}

type service struct {
	accounts  *account.Manager
	repo      repository.AccountRepository
	tracker   *Tracker
	publisher event.Publisher
}

// NewService creates a new quest service
func NewService(accounts *account.Manager, repo repository.AccountRepository, tracker *Tracker, publisher event.Publisher) Service {
	return &service{
		accounts:  accounts,
		repo:      repo,
		tracker:   tracker,
		publisher: publisher,
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}

func (s *service) GetQuestBoard(ctx context.Context, key string) (*domain.QuestBoard, error) {
	acct, err := s.accounts.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	now := s.accounts.Now()
	if !Expired(acct.Quests.Daily, domain.CycleDaily, now) && !Expired(acct.Quests.Weekly, domain.CycleWeekly, now) {
		return Board(acct), nil
	}

	acct, err = s.accounts.Update(ctx, key, func(tx repository.AccountTx, acct *domain.Account) error {
		for _, cycle := range s.tracker.EnsureCycles(acct, now) {
			logger.FromContext(ctx).Info(LogMsgQuestRolled, "account", key, "cycle", cycle, "type", acct.Quests.Slot(cycle).Type)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return Board(acct), nil
}

func (s *service) ClaimQuest(ctx context.Context, key string, cycle domain.QuestCycle) (*domain.QuestClaimResult, error) {
	if !cycle.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCycle, cycle)
	}

	var result *domain.QuestClaimResult
	_, err := s.accounts.Update(ctx, key, func(tx repository.AccountTx, acct *domain.Account) error {
		var err error
		result, err = s.tracker.Claim(acct, cycle, s.accounts.Now())
		if err != nil {
			return err
		}
		s.tracker.RefreshAchievements(acct)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgQuestClaimed, "account", key, "cycle", cycle, "type", result.Claimed.Type,
		"coins", result.Reward.Coins, "gems", result.Reward.Gems)
	s.publish(ctx, event.NewClaimEvent(event.QuestClaimed, key, result.Claimed.Type, result.Reward.Coins, result.Reward.Gems, 0))
	return result, nil
}

func (s *service) GetAchievements(ctx context.Context, key string) ([]domain.AchievementView, error) {
	acct, err := s.accounts.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.tracker.AchievementViews(acct), nil
}

func (s *service) ClaimAchievement(ctx context.Context, key, name string) (*domain.AchievementClaimResult, error) {
	if _, ok := s.tracker.Catalog().Achievement(name); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrAchievementNotFound, name)
	}

	var (
		result   *domain.AchievementClaimResult
		oldLevel int
	)
	_, err := s.accounts.Update(ctx, key, func(tx repository.AccountTx, acct *domain.Account) error {
		oldLevel = acct.Level
		var err error
		result, err = s.tracker.ClaimAchievement(acct, name)
		if err != nil {
			return err
		}
		for _, completed := range s.tracker.RefreshAchievements(acct) {
			logger.FromContext(ctx).Info(LogMsgAchievementCompleted, "account", key, "achievement", completed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgAchievementClaimed, "account", key, "achievement", name)
	s.publish(ctx, event.NewClaimEvent(event.AchievementClaimed, key, name, result.Reward.Coins, result.Reward.Gems, result.Reward.XP))
	if result.LevelUp {
		s.publish(ctx, event.NewLevelUpEvent(key, oldLevel, result.Level))
	}
	return result, nil
}

func (s *service) ResetDailyQuests(ctx context.Context, boundary time.Time) (int64, error) {
	cleared, err := s.repo.ClearDailyQuestsStartedBefore(ctx, boundary)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", domain.ErrInfrastructure, ErrMsgResetDailyQuests, err)
	}
	logger.FromContext(ctx).Info(LogMsgDailyQuestsCleared, "boundary", boundary, "cleared", cleared)
	s.publish(ctx, event.NewDailyResetEvent(boundary, cleared))
	return cleared, nil
}
