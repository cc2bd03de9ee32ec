package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

type MockOrchardService struct {
	mock.Mock
}

func (m *MockOrchardService) Pick(ctx context.Context, key, username string) (*domain.PickResult, error) {
	args := m.Called(ctx, key, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PickResult), args.Error(1)
}

func (m *MockOrchardService) ClaimDaily(ctx context.Context, key, username string) (*domain.DailyResult, error) {
	args := m.Called(ctx, key, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyResult), args.Error(1)
}

func (m *MockOrchardService) Sell(ctx context.Context, key string, rarity *domain.Rarity) (*domain.SaleResult, error) {
	args := m.Called(ctx, key, rarity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleResult), args.Error(1)
}

func (m *MockOrchardService) GetInventory(ctx context.Context, key string) (*domain.InventorySummary, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventorySummary), args.Error(1)
}

func (m *MockOrchardService) GetShop(ctx context.Context, key string) (*domain.Shop, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockOrchardService) BuyUpgrade(ctx context.Context, key string, track domain.UpgradeTrack) (*domain.PurchaseResult, error) {
	args := m.Called(ctx, key, track)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseResult), args.Error(1)
}

func (m *MockOrchardService) GetMarket(ctx context.Context) (*domain.MarketReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketReport), args.Error(1)
}

func (m *MockOrchardService) RotateMarket(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrchardService) GetProfile(ctx context.Context, key string) (*domain.Profile, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockOrchardService) GetLeaderboard(ctx context.Context, key string, metric domain.LeaderboardMetric) (*domain.Leaderboard, error) {
	args := m.Called(ctx, key, metric)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Leaderboard), args.Error(1)
}

func (m *MockOrchardService) SetupGuild(ctx context.Context, guild *domain.Guild) (*domain.Guild, error) {
	args := m.Called(ctx, guild)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guild), args.Error(1)
}

func (m *MockOrchardService) GetGuild(ctx context.Context, guildID string) (*domain.Guild, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guild), args.Error(1)
}

type MockQuestService struct {
	mock.Mock
}

func (m *MockQuestService) GetQuestBoard(ctx context.Context, key string) (*domain.QuestBoard, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuestBoard), args.Error(1)
}

func (m *MockQuestService) ClaimQuest(ctx context.Context, key string, cycle domain.QuestCycle) (*domain.QuestClaimResult, error) {
	args := m.Called(ctx, key, cycle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuestClaimResult), args.Error(1)
}

func (m *MockQuestService) GetAchievements(ctx context.Context, key string) ([]domain.AchievementView, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AchievementView), args.Error(1)
}

func (m *MockQuestService) ClaimAchievement(ctx context.Context, key, name string) (*domain.AchievementClaimResult, error) {
	args := m.Called(ctx, key, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AchievementClaimResult), args.Error(1)
}

func (m *MockQuestService) ResetDailyQuests(ctx context.Context, boundary time.Time) (int64, error) {
	args := m.Called(ctx, boundary)
	return args.Get(0).(int64), args.Error(1)
}

type MockStealService struct {
	mock.Mock
}

func (m *MockStealService) Steal(ctx context.Context, actorKey, targetKey string) (*domain.StealResult, error) {
	args := m.Called(ctx, actorKey, targetKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StealResult), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
