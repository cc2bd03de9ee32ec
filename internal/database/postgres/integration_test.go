package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/punaab/discord-ts-UQkA/internal/account"
	"github.com/punaab/discord-ts-UQkA/internal/concurrency"
	"github.com/punaab/discord-ts-UQkA/internal/database"
	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testPool, terminate = setupDatabase(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupDatabase(ctx context.Context) (*pgxpool.Pool, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("orchard"),
		postgres.WithUsername("orchard"),
		postgres.WithPassword("orchard"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return nil, nil
	}
	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return nil, terminate
	}
	pool, err := database.NewPool(connStr, 10, time.Minute, 5*time.Minute)
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		return nil, terminate
	}
	if err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		return nil, terminate
	}
	return pool, terminate
}

func requirePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	return testPool
}

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func createAccount(t *testing.T, repo *AccountRepository, coins int) *domain.Account {
	t.Helper()
	acct := domain.NewAccount("acct-"+uuid.NewString()[:8], "player", testNow)
	acct.Coins = coins
	require.NoError(t, repo.CreateAccount(context.Background(), acct))
	return acct
}

func newFruit(owner string, rarity domain.Rarity, value int) *domain.Fruit {
	return &domain.Fruit{ID: uuid.NewString(), OwnerKey: owner, Name: "Apple", Rarity: rarity, Value: value, PickedAt: testNow}
}

func TestAccountRepository_RoundTrip(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewAccountRepository(pool)

	// ARRANGE
	acct := createAccount(t, repo, 0)
	rarity := domain.RarityRare
	acct.Coins = 120
	acct.Upgrades.ToolQuality = 2
	acct.Stats.RareFruitsFound = 3
	acct.LastPickAt = &testNow
	acct.Quests.Daily = &domain.QuestProgress{
		QuestTemplate: domain.QuestTemplate{Type: "collect_rarity", Target: 3, RequiredRarity: &rarity, Reward: domain.QuestReward{Coins: 50}},
		Cycle:         domain.CycleDaily,
		Progress:      1,
		StartedAt:     testNow,
	}
	acct.Achievements = append(acct.Achievements, &domain.AchievementRecord{Name: "First Harvest", Progress: 1, Completed: true})

	// ACT
	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SaveAccount(ctx, acct))
	require.NoError(t, tx.Commit(ctx))
	got, err := repo.GetAccount(ctx, acct.Key)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
	assert.Equal(t, 120, got.Coins)
	assert.Equal(t, 2, got.Upgrades.ToolQuality)
	assert.Equal(t, 3, got.Stats.RareFruitsFound)
	require.NotNil(t, got.LastPickAt)
	assert.True(t, testNow.Equal(*got.LastPickAt))
	assert.Nil(t, got.LastDailyAt)
	require.NotNil(t, got.Quests.Daily)
	assert.Equal(t, domain.RarityRare, *got.Quests.Daily.RequiredRarity)
	assert.Equal(t, 1, got.Quests.Daily.Progress)
	assert.Nil(t, got.Quests.Weekly)
	require.Len(t, got.Achievements, 1)
	assert.True(t, got.Achievements[0].Completed)
}

func TestAccountRepository_NotFoundAndIdempotentCreate(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewAccountRepository(pool)

	_, err := repo.GetAccount(ctx, "missing-"+uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	acct := createAccount(t, repo, 10)
	dup := domain.NewAccount(acct.Key, "someone else", testNow)
	require.NoError(t, repo.CreateAccount(ctx, dup))

	got, err := repo.GetAccount(ctx, acct.Key)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Coins)
	assert.Equal(t, "player", got.Username)
}

func TestAccountTx_VersionConflict(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewAccountRepository(pool)
	acct := createAccount(t, repo, 0)

	stale, err := repo.GetAccount(ctx, acct.Key)
	require.NoError(t, err)

	tx, _ := repo.BeginTx(ctx)
	require.NoError(t, tx.SaveAccount(ctx, acct))
	require.NoError(t, tx.Commit(ctx))

	tx, _ = repo.BeginTx(ctx)
	defer repository.SafeRollback(ctx, tx)
	assert.ErrorIs(t, tx.SaveAccount(ctx, stale), domain.ErrVersionConflict)

	ghost := domain.NewAccount("ghost-"+uuid.NewString()[:8], "", testNow)
	tx2, _ := repo.BeginTx(ctx)
	defer repository.SafeRollback(ctx, tx2)
	assert.ErrorIs(t, tx2.SaveAccount(ctx, ghost), domain.ErrAccountNotFound)
}

func TestInventory_PickSellTransfer(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	accounts := NewAccountRepository(pool)
	inventory := NewInventoryRepository(pool)
	owner := createAccount(t, accounts, 0)
	thief := createAccount(t, accounts, 0)

	fruits := []*domain.Fruit{
		newFruit(owner.Key, domain.RarityCommon, 10),
		newFruit(owner.Key, domain.RarityRare, 25),
		newFruit(owner.Key, domain.RarityMythic, 200),
	}
	tx, err := accounts.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.CreateFruits(ctx, fruits))
	require.NoError(t, tx.Commit(ctx))

	got, err := inventory.GetUnsoldFruits(ctx, owner.Key)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, fruits[0].ID, got[0].ID, "oldest first")
	assert.Equal(t, domain.RarityMythic, got[2].Rarity)

	soldAt := testNow.Add(time.Minute)
	fruits[0].SoldAt, fruits[0].SoldFor = &soldAt, 10
	tx, _ = accounts.BeginTx(ctx)
	require.NoError(t, tx.MarkFruitsSold(ctx, fruits[:1]))
	require.NoError(t, tx.TransferFruit(ctx, fruits[1].ID, owner.Key, thief.Key))
	require.NoError(t, tx.Commit(ctx))

	n, err := inventory.CountUnsoldFruits(ctx, owner.Key)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, _ = inventory.CountUnsoldFruits(ctx, thief.Key)
	assert.Equal(t, 1, n)

	sales, err := inventory.GetSalesSince(ctx, testNow)
	require.NoError(t, err)
	var found bool
	for _, s := range sales {
		if s.ID == fruits[0].ID {
			found = true
			assert.Equal(t, 10, s.SoldFor)
			require.NotNil(t, s.SoldAt)
			assert.True(t, soldAt.Equal(*s.SoldAt))
		}
	}
	assert.True(t, found)

	t.Run("selling a sold fruit aborts", func(t *testing.T) {
		tx, _ := accounts.BeginTx(ctx)
		defer repository.SafeRollback(ctx, tx)
		assert.ErrorIs(t, tx.MarkFruitsSold(ctx, fruits[:1]), domain.ErrFruitNotFound)
	})

	t.Run("transfer from the wrong owner aborts", func(t *testing.T) {
		tx, _ := accounts.BeginTx(ctx)
		defer repository.SafeRollback(ctx, tx)
		assert.ErrorIs(t, tx.TransferFruit(ctx, fruits[2].ID, thief.Key, owner.Key), domain.ErrFruitNotFound)
	})
}

func TestAccountRepository_LeaderboardAndRank(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewAccountRepository(pool)

	rich := createAccount(t, repo, 1_000_000)
	richer := createAccount(t, repo, 2_000_000)

	entries, err := repo.GetLeaderboard(ctx, domain.MetricCoins, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, richer.Key, entries[0].AccountKey)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, rich.Key, entries[1].AccountKey)
	assert.Equal(t, 2, entries[1].Rank)

	rank, err := repo.GetRank(ctx, domain.MetricCoins, rich.Key)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)

	rank, err = repo.GetRank(ctx, domain.MetricCoins, "nobody")
	require.NoError(t, err)
	assert.Zero(t, rank)

	_, err = repo.GetLeaderboard(ctx, "wins", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidMetric)
}

func TestAccountRepository_ClearDailyQuests(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewAccountRepository(pool)
	boundary := testNow.Add(24 * time.Hour)

	stale := createAccount(t, repo, 0)
	stale.Quests.Daily = &domain.QuestProgress{QuestTemplate: domain.QuestTemplate{Target: 1}, Cycle: domain.CycleDaily, StartedAt: boundary.Add(-time.Hour)}
	stale.Quests.Weekly = &domain.QuestProgress{QuestTemplate: domain.QuestTemplate{Target: 1}, Cycle: domain.CycleWeekly, StartedAt: boundary.Add(-time.Hour)}
	fresh := createAccount(t, repo, 0)
	fresh.Quests.Daily = &domain.QuestProgress{QuestTemplate: domain.QuestTemplate{Target: 1}, Cycle: domain.CycleDaily, StartedAt: boundary.Add(time.Minute)}
	tx, _ := repo.BeginTx(ctx)
	require.NoError(t, tx.SaveAccount(ctx, stale))
	require.NoError(t, tx.SaveAccount(ctx, fresh))
	require.NoError(t, tx.Commit(ctx))

	n, err := repo.ClearDailyQuestsStartedBefore(ctx, boundary)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))

	got, _ := repo.GetAccount(ctx, stale.Key)
	assert.Nil(t, got.Quests.Daily)
	assert.NotNil(t, got.Quests.Weekly, "weekly quests are untouched")
	assert.Equal(t, 3, got.Version)
	got, _ = repo.GetAccount(ctx, fresh.Key)
	assert.NotNil(t, got.Quests.Daily)
}

func TestMarketAndGuildRepositories(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	market := NewMarketRepository(pool)
	guilds := NewGuildRepository(pool)

	state, err := market.GetMarketState(ctx)
	require.NoError(t, err)
	seed := state.Seed

	state.Epoch = 42
	state.RotatedAt = testNow
	require.NoError(t, market.SaveMarketState(ctx, state))
	state, err = market.GetMarketState(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), state.Epoch)
	assert.Equal(t, seed, state.Seed, "seed survives rotation")

	_, err = guilds.GetGuild(ctx, "no-such-guild")
	assert.ErrorIs(t, err, domain.ErrGuildNotFound)

	require.NoError(t, guilds.UpsertGuild(ctx, &domain.Guild{GuildID: "g1", Name: "Orchard", ChannelID: "c1", UpdatedAt: testNow}))
	require.NoError(t, guilds.UpsertGuild(ctx, &domain.Guild{GuildID: "g1", Name: "Orchard", ChannelID: "c2", UpdatedAt: testNow}))
	g, err := guilds.GetGuild(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "c2", g.ChannelID)
}

// Two managers share the database but not their locks, so concurrent
// writers only meet at the version check and must retry.
func TestManager_ConcurrentWritersAcrossProcesses(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewAccountRepository(pool)
	acct := createAccount(t, repo, 0)

	managers := []*account.Manager{
		account.NewManager(repo, concurrency.NewLockManager()),
		account.NewManager(repo, concurrency.NewLockManager()),
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(m *account.Manager) {
			defer wg.Done()
			_, err := m.Update(ctx, acct.Key, func(_ repository.AccountTx, a *domain.Account) error {
				a.Coins++
				return nil
			})
			if err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}(managers[i%2])
	}
	wg.Wait()

	got, err := repo.GetAccount(ctx, acct.Key)
	require.NoError(t, err)
	assert.Equal(t, 10-failures, got.Coins, "no update is lost")
	assert.Equal(t, 1+got.Coins, got.Version)
}
