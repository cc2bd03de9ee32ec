package orchard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/punaab/discord-ts-UQkA/internal/account"
	"github.com/punaab/discord-ts-UQkA/internal/concurrency"
	"github.com/punaab/discord-ts-UQkA/internal/cooldown"
	"github.com/punaab/discord-ts-UQkA/internal/database/memory"
	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/economy"
	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/quest"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
	"github.com/punaab/discord-ts-UQkA/internal/utils"
)

var start = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store *memory.Store
	pub   *MockPublisher
	svc   Service
	clock time.Time
}

func testTracker(t *testing.T) *quest.Tracker {
	t.Helper()
	catalog, err := quest.NewCatalog(quest.PoolConfig{
		Daily:  []domain.QuestTemplate{{Type: "Fruit Collector", Target: 2, Reward: domain.QuestReward{Coins: 50}}},
		Weekly: []domain.QuestTemplate{{Type: "Master Collector", Target: 50, Reward: domain.QuestReward{Coins: 300}}},
	}, []domain.Achievement{
		{Name: "First Harvest", Requirements: domain.AchievementRequirement{Target: 1, Stat: domain.StatTotalPicked}},
		{Name: "Market Debut", Requirements: domain.AchievementRequirement{Target: 1, Stat: domain.StatTotalSold}},
	})
	require.NoError(t, err)
	return quest.NewTracker(catalog, utils.NewSequenceRandom(nil, []int{0}))
}

// newFixture wires the service over a memory store. floats drive the
// rarity rolls; the fruit index is always 0.
func newFixture(t *testing.T, floats ...float64) *fixture {
	t.Helper()
	f := &fixture{store: memory.NewStore(42), pub: &MockPublisher{}, clock: start}
	f.pub.On("PublishWithRetry", mock.Anything, mock.Anything).Return().Maybe()

	mgr := account.NewManager(f.store, concurrency.NewLockManager())
	mgr.SetClock(func() time.Time { return f.clock })
	f.svc = NewService(mgr,
		Repositories{Accounts: f.store, Inventory: f.store, Market: f.store, Guilds: f.store},
		cooldown.NewService(cooldown.Config{}),
		economy.NewRewardRoller(utils.NewSequenceRandom(floats, []int{0})),
		testTracker(t),
		f.pub,
	)
	return f
}

func (f *fixture) seed(t *testing.T, acct *domain.Account, fruits ...*domain.Fruit) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.store.CreateAccount(ctx, acct))
	if len(fruits) > 0 {
		tx, err := f.store.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.CreateFruits(ctx, fruits))
		require.NoError(t, tx.Commit(ctx))
	}
}

func publishedTypes(pub *MockPublisher) []event.Type {
	var types []event.Type
	for _, call := range pub.Calls {
		types = append(types, call.Arguments.Get(1).(event.Event).Type)
	}
	return types
}

func TestPick_NewAccount(t *testing.T) {
	// ARRANGE
	f := newFixture(t, 0.0)
	ctx := context.Background()

	// ACT
	res, err := f.svc.Pick(ctx, "discord:1", "alice")

	// ASSERT
	require.NoError(t, err)
	require.Len(t, res.Fruits, 1)
	assert.Equal(t, "Apple", res.Fruits[0].Name)
	assert.Equal(t, 10, res.Fruits[0].Value)
	assert.Equal(t, 10, res.XPGained)
	assert.Equal(t, 1, res.Level)
	assert.False(t, res.LevelUp)
	assert.Equal(t, 5*time.Minute, res.Cooldown)
	assert.Equal(t, start.Add(5*time.Minute), res.NextPickAt)
	assert.Equal(t, []string{"First Harvest"}, res.NewlyComplete)
	require.NotNil(t, res.Quests.Daily)
	assert.Equal(t, 1, res.Quests.Daily.Progress)

	acct, err := f.store.GetAccount(ctx, "discord:1")
	require.NoError(t, err)
	assert.Equal(t, "alice", acct.Username)
	assert.Equal(t, 1, acct.Stats.TotalPicked)
	assert.Equal(t, 0, acct.Stats.RareFruitsFound)
	require.NotNil(t, acct.LastPickAt)
	assert.Equal(t, start, *acct.LastPickAt)

	fruits, err := f.store.GetUnsoldFruits(ctx, "discord:1")
	require.NoError(t, err)
	assert.Len(t, fruits, 1)
	assert.Equal(t, []event.Type{event.FruitPicked}, publishedTypes(f.pub))
}

func TestPick_CooldownScalesWithToolTier(t *testing.T) {
	f := newFixture(t, 0.0)
	ctx := context.Background()
	acct := domain.NewAccount("k", "u", start)
	acct.Upgrades.ToolQuality = 3
	last := start.Add(-3 * time.Minute)
	acct.LastPickAt = &last
	f.seed(t, acct)

	_, err := f.svc.Pick(ctx, "k", "u")
	var cd cooldown.ErrOnCooldown
	require.ErrorAs(t, err, &cd)
	assert.Equal(t, 30*time.Second, cd.Remaining, "210s cooldown minus 180s elapsed")

	f.clock = start.Add(30 * time.Second)
	res, err := f.svc.Pick(ctx, "k", "u")
	require.NoError(t, err)
	assert.Equal(t, 210*time.Second, res.Cooldown)
	assert.Equal(t, 13, res.Fruits[0].Value, "10 * 1.05 * 1.3 floored")
}

func TestPick_BasketAndRareStats(t *testing.T) {
	f := newFixture(t, 0.999)
	ctx := context.Background()
	acct := domain.NewAccount("k", "u", start)
	acct.Upgrades.BasketCapacity = 1
	f.seed(t, acct)

	res, err := f.svc.Pick(ctx, "k", "u")

	require.NoError(t, err)
	require.Len(t, res.Fruits, 3)
	for _, fr := range res.Fruits {
		assert.Equal(t, domain.RarityMythic, fr.Rarity)
	}
	assert.Equal(t, 150, res.XPGained)
	assert.Equal(t, 2, res.Level)
	assert.True(t, res.LevelUp)

	stored, err := f.store.GetAccount(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Stats.RareFruitsFound)
	assert.Contains(t, publishedTypes(f.pub), event.LevelUp)
}

func TestPick_RequiresKey(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Pick(context.Background(), "", "u")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClaimDaily(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.ClaimDaily(ctx, "k", "u")
	require.NoError(t, err)
	assert.Equal(t, 60, res.Reward)
	assert.Equal(t, 1, res.Streak)

	_, err = f.svc.ClaimDaily(ctx, "k", "u")
	assert.ErrorIs(t, err, domain.ErrOnCooldown)

	f.clock = start.Add(25 * time.Hour)
	res, err = f.svc.ClaimDaily(ctx, "k", "u")
	require.NoError(t, err)
	assert.Equal(t, 65, res.Reward, "streak of one adds five coins")
	assert.Equal(t, 125, res.Coins)

	stored, err := f.store.GetAccount(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 125, stored.Stats.TotalEarned)
}

func TestSell(t *testing.T) {
	ctx := context.Background()
	inventory := func() []*domain.Fruit {
		return []*domain.Fruit{
			{ID: "a", OwnerKey: "k", Name: "Apple", Rarity: domain.RarityCommon, Value: 10},
			{ID: "b", OwnerKey: "k", Name: "Kiwi", Rarity: domain.RarityRare, Value: 26},
			{ID: "c", OwnerKey: "k", Name: "Banana", Rarity: domain.RarityCommon, Value: 8},
		}
	}

	t.Run("all fruit", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, domain.NewAccount("k", "u", start), inventory()...)

		res, err := f.svc.Sell(ctx, "k", nil)

		require.NoError(t, err)
		assert.Equal(t, 3, res.Count)
		assert.Equal(t, 44, res.Total)
		assert.Equal(t, 44, res.Coins)
		assert.Equal(t, []string{"Market Debut"}, res.NewlyComplete)
		for _, fr := range res.Sold {
			assert.Equal(t, fr.Value, fr.SoldFor)
			assert.Equal(t, start, *fr.SoldAt)
		}

		left, err := f.store.GetUnsoldFruits(ctx, "k")
		require.NoError(t, err)
		assert.Empty(t, left)
		sales, err := f.store.GetSalesSince(ctx, start.Add(-time.Hour))
		require.NoError(t, err)
		assert.Len(t, sales, 3)
	})

	t.Run("one rarity", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, domain.NewAccount("k", "u", start), inventory()...)
		rare := domain.RarityRare

		res, err := f.svc.Sell(ctx, "k", &rare)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Count)
		assert.Equal(t, 26, res.Total)
		left, err := f.store.GetUnsoldFruits(ctx, "k")
		require.NoError(t, err)
		assert.Len(t, left, 2)
	})

	t.Run("nothing to sell", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, domain.NewAccount("k", "u", start), inventory()...)
		mythic := domain.RarityMythic

		_, err := f.svc.Sell(ctx, "k", &mythic)

		assert.ErrorIs(t, err, domain.ErrNothingToSell)
		stored, err := f.store.GetAccount(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 0, stored.Coins)
	})

	t.Run("invalid rarity", func(t *testing.T) {
		f := newFixture(t)
		bad := domain.Rarity(42)
		_, err := f.svc.Sell(ctx, "k", &bad)
		assert.ErrorIs(t, err, domain.ErrInvalidRarity)
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Sell(ctx, "ghost", nil)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestSell_InventoryFailureIsInfrastructure(t *testing.T) {
	// ARRANGE
	store := memory.NewStore(1)
	require.NoError(t, store.CreateAccount(context.Background(), domain.NewAccount("k", "u", start)))
	inv := &MockInventoryRepository{}
	inv.On("GetUnsoldFruits", mock.Anything, "k").Return(nil, errors.New("connection refused"))
	svc := NewService(account.NewManager(store, concurrency.NewLockManager()),
		Repositories{Accounts: store, Inventory: inv, Market: store, Guilds: store},
		cooldown.NewService(cooldown.Config{}), economy.NewRewardRoller(utils.NewRandom(1)), testTracker(t), nil)

	// ACT
	_, err := svc.Sell(context.Background(), "k", nil)

	// ASSERT
	assert.ErrorIs(t, err, domain.ErrInfrastructure)
	assert.Contains(t, err.Error(), "connection refused")
	inv.AssertExpectations(t)
}

func TestGetInventory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, domain.NewAccount("k", "u", start),
		&domain.Fruit{ID: "a", OwnerKey: "k", Rarity: domain.RarityRare, Value: 25},
		&domain.Fruit{ID: "b", OwnerKey: "k", Rarity: domain.RarityCommon, Value: 10},
		&domain.Fruit{ID: "c", OwnerKey: "k", Rarity: domain.RarityCommon, Value: 12},
	)

	inv, err := f.svc.GetInventory(ctx, "k")

	require.NoError(t, err)
	assert.Equal(t, 3, inv.TotalCount)
	assert.Equal(t, 47, inv.TotalValue)
	require.Len(t, inv.Groups, 2)
	assert.Equal(t, domain.RarityCommon, inv.Groups[0].Rarity)
	assert.Equal(t, 22, inv.Groups[0].TotalValue)

	_, err = f.svc.GetInventory(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestShopAndBuyUpgrade(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	acct := domain.NewAccount("k", "u", start)
	acct.Coins = 250
	f.seed(t, acct)

	shop, err := f.svc.GetShop(ctx, "k")
	require.NoError(t, err)
	require.Len(t, shop.Entries, 4)
	assert.Equal(t, 250, shop.Coins)

	res, err := f.svc.BuyUpgrade(ctx, "k", domain.UpgradeBasketCapacity)
	require.NoError(t, err)
	assert.Equal(t, 1, res.NewTier)
	assert.Equal(t, 100, res.Price)
	assert.Equal(t, 150, res.Coins)

	// tier 1 costs floor(100*1.5) = 150, exactly the remaining balance
	res, err = f.svc.BuyUpgrade(ctx, "k", domain.UpgradeBasketCapacity)
	require.NoError(t, err)
	assert.Equal(t, 2, res.NewTier)
	assert.Equal(t, 150, res.Price)
	assert.Equal(t, 0, res.Coins)

	_, err = f.svc.BuyUpgrade(ctx, "k", domain.UpgradeBasketCapacity)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	_, err = f.svc.BuyUpgrade(ctx, "k", "jetpack")
	assert.ErrorIs(t, err, domain.ErrInvalidUpgrade)

	stored, err := f.store.GetAccount(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Coins, "failed purchases deduct nothing")
	assert.Equal(t, 2, stored.Upgrades.BasketCapacity)
	assert.Contains(t, publishedTypes(f.pub), event.UpgradePurchased)
}

func TestBuyUpgrade_MaxTier(t *testing.T) {
	f := newFixture(t)
	acct := domain.NewAccount("k", "u", start)
	acct.Coins = 1_000_000
	acct.Upgrades.AutoPicker = 2
	f.seed(t, acct)

	_, err := f.svc.BuyUpgrade(context.Background(), "k", domain.UpgradeAutoPicker)

	assert.ErrorIs(t, err, domain.ErrMaxTier)
}

func TestGetMarket_StableWithinEpoch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.GetMarket(ctx)
	require.NoError(t, err)
	f.clock = start.Add(time.Minute)
	second, err := f.svc.GetMarket(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Epoch, second.Epoch)
	assert.Equal(t, first.Quotes, second.Quotes)
	require.Len(t, first.Quotes, 5)
	for _, q := range first.Quotes {
		assert.Equal(t, 0, q.Trend.Sales)
		assert.Equal(t, q.BasePrice, q.Trend.Average, "base price stands in without sales")
	}
}

func TestRotateMarket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.svc

	rotated, err := svc.RotateMarket(ctx)
	require.NoError(t, err)
	assert.True(t, rotated)

	rotated, err = svc.RotateMarket(ctx)
	require.NoError(t, err)
	assert.False(t, rotated, "same epoch")

	f.clock = start.Add(domain.MarketEpochLength)
	rotated, err = svc.RotateMarket(ctx)
	require.NoError(t, err)
	assert.True(t, rotated)

	state, err := f.store.GetMarketState(ctx)
	require.NoError(t, err)
	assert.Equal(t, economy.EpochAt(f.clock), state.Epoch)
	assert.Equal(t, int64(42), state.Seed)
	assert.Contains(t, publishedTypes(f.pub), event.MarketRotated)
}

func TestGetProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	acct := domain.NewAccount("k", "u", start)
	acct.XP = 150
	acct.Level = 2
	lastDaily := start.Add(-time.Hour)
	acct.LastDailyAt = &lastDaily
	f.seed(t, acct, &domain.Fruit{ID: "a", OwnerKey: "k", Rarity: domain.RarityCommon, Value: 10})

	p, err := f.svc.GetProfile(ctx, "k")

	require.NoError(t, err)
	assert.Equal(t, 50, p.XPIntoLevel)
	assert.Equal(t, 300, p.XPForNext)
	assert.Equal(t, 1, p.UnsoldFruits)
	assert.Equal(t, start, p.NextPickAt)
	assert.Equal(t, start.Add(23*time.Hour), p.NextDailyAt)
	assert.Equal(t, start, p.NextStealAt)
}

func TestGetLeaderboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i, key := range []string{"a", "b", "c"} {
		acct := domain.NewAccount(key, key, start)
		acct.Coins = (i + 1) * 100
		f.seed(t, acct)
	}

	board, err := f.svc.GetLeaderboard(ctx, "a", "")
	require.NoError(t, err)
	assert.Equal(t, domain.MetricCoins, board.Metric)
	require.Len(t, board.Entries, 3)
	assert.Equal(t, "c", board.Entries[0].AccountKey)
	assert.Equal(t, 3, board.CallerRank)

	board, err = f.svc.GetLeaderboard(ctx, "ghost", domain.MetricLevel)
	require.NoError(t, err)
	assert.Equal(t, 0, board.CallerRank)

	_, err = f.svc.GetLeaderboard(ctx, "a", "steps")
	assert.ErrorIs(t, err, domain.ErrInvalidMetric)
}

func TestGuildSetup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.GetGuild(ctx, "g1")
	assert.ErrorIs(t, err, domain.ErrGuildNotFound)

	_, err = f.svc.SetupGuild(ctx, &domain.Guild{GuildID: "g1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	saved, err := f.svc.SetupGuild(ctx, &domain.Guild{GuildID: "g1", Name: "Orchard", ChannelID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, start, saved.UpdatedAt)

	got, err := f.svc.GetGuild(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ChannelID)
}

var _ repository.InventoryRepository = (*MockInventoryRepository)(nil)
