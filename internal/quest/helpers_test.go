package quest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

func rarityPtr(r domain.Rarity) *domain.Rarity { return &r }

func testPool() PoolConfig {
	return PoolConfig{
		Version: "test",
		Daily: []domain.QuestTemplate{
			{Type: "Fruit Collector", Target: 3, Reward: domain.QuestReward{Coins: 50, Gems: 1}},
			{Type: "Rare Hunter", Target: 1, Reward: domain.QuestReward{Coins: 100, Gems: 2}, RequiredRarity: rarityPtr(domain.RarityRare)},
		},
		Weekly: []domain.QuestTemplate{
			{Type: "Apple Fan", Target: 2, Reward: domain.QuestReward{Coins: 300, Gems: 5}, RequiredTypes: []string{"Apple"}},
		},
	}
}

func testAchievements() []domain.Achievement {
	return []domain.Achievement{
		{
			Name:         "First Harvest",
			Requirements: domain.AchievementRequirement{Target: 1, Stat: domain.StatTotalPicked},
			Rewards:      domain.AchievementReward{Coins: 25, XP: 10},
		},
		{
			Name:         "Piggy Bank",
			Requirements: domain.AchievementRequirement{Target: 100, Stat: domain.StatCoins},
			Rewards:      domain.AchievementReward{Coins: 10, Gems: 1, XP: 1000},
		},
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(testPool(), testAchievements())
	require.NoError(t, err)
	return c
}
