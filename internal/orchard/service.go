// Package orchard holds the command-level game services: picking, the daily
// reward, selling, the upgrade shop, the market report, profiles,
// leaderboards and guild settings.
package orchard

import (
	"context"
	"fmt"

	"github.com/punaab/discord-ts-UQkA/internal/account"
	"github.com/punaab/discord-ts-UQkA/internal/cooldown"
	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/economy"
	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/quest"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
)

// Service defines the orchard game operations
type Service interface {
	Pick(ctx context.Context, key, username string) (*domain.PickResult, error)
	ClaimDaily(ctx context.Context, key, username string) (*domain.DailyResult, error)
	// Sell sells every unsold fruit, or only those of rarity when it is set
	Sell(ctx context.Context, key string, rarity *domain.Rarity) (*domain.SaleResult, error)
	GetInventory(ctx context.Context, key string) (*domain.InventorySummary, error)

	GetShop(ctx context.Context, key string) (*domain.Shop, error)
	BuyUpgrade(ctx context.Context, key string, track domain.UpgradeTrack) (*domain.PurchaseResult, error)

	GetMarket(ctx context.Context) (*domain.MarketReport, error)
	RotateMarket(ctx context.Context) (bool, error)
	GetProfile(ctx context.Context, key string) (*domain.Profile, error)
	GetLeaderboard(ctx context.Context, key string, metric domain.LeaderboardMetric) (*domain.Leaderboard, error)

	SetupGuild(ctx context.Context, guild *domain.Guild) (*domain.Guild, error)
	GetGuild(ctx context.Context, guildID string) (*domain.Guild, error)
}

// Repositories groups the stores the orchard service reads directly
type Repositories struct {
	Accounts  repository.AccountRepository
	Inventory repository.InventoryRepository
	Market    repository.MarketRepository
	Guilds    repository.GuildRepository
}

type service struct {
	accounts  *account.Manager
	repos     Repositories
	cooldowns cooldown.Service
	roller    *economy.RewardRoller
	tracker   *quest.Tracker
	publisher event.Publisher
}

// NewService creates a new orchard service
func NewService(
	accounts *account.Manager,
	repos Repositories,
	cooldowns cooldown.Service,
	roller *economy.RewardRoller,
	tracker *quest.Tracker,
	publisher event.Publisher,
) Service {
	return &service{
		accounts:  accounts,
		repos:     repos,
		cooldowns: cooldowns,
		roller:    roller,
		tracker:   tracker,
		publisher: publisher,
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}

func (s *service) publishLevelUp(ctx context.Context, key string, progress economy.LevelProgress) {
	if progress.LeveledUp() {
		s.publish(ctx, event.NewLevelUpEvent(key, progress.OldLevel, progress.NewLevel))
	}
}

func requireKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidAccountKey)
	}
	return nil
}

func infra(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrInfrastructure, msg, err)
}
