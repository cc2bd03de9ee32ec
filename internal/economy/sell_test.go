package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

func testFruits() []*domain.Fruit {
	return []*domain.Fruit{
		{ID: "a", Name: "Apple", Rarity: domain.RarityCommon, Value: 10},
		{ID: "b", Name: "Kiwi", Rarity: domain.RarityRare, Value: 26},
		{ID: "c", Name: "Banana", Rarity: domain.RarityCommon, Value: 8},
		{ID: "d", Name: "Moon Berry", Rarity: domain.RarityMythic, Value: 210},
	}
}

func TestSell(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	account := &domain.Account{Coins: 5, Stats: domain.Stats{TotalSold: 1, TotalEarned: 20}}
	fruits := testFruits()

	result := Sell(account, fruits, now)

	assert.Equal(t, 4, result.Count)
	assert.Equal(t, 254, result.Total)
	assert.Equal(t, 259, account.Coins)
	assert.Equal(t, 259, result.Coins)
	assert.Equal(t, 5, account.Stats.TotalSold)
	assert.Equal(t, 274, account.Stats.TotalEarned)
	for _, f := range fruits {
		assert.True(t, f.Sold)
		require.NotNil(t, f.SoldAt)
		assert.Equal(t, now, *f.SoldAt)
		assert.Equal(t, f.Value, f.SoldFor, "each fruit records its own proceeds")
	}
}

func TestFilterByRarity(t *testing.T) {
	fruits := testFruits()
	assert.Len(t, FilterByRarity(fruits, nil), 4)

	common := domain.RarityCommon
	filtered := FilterByRarity(fruits, &common)
	require.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].ID)
	assert.Equal(t, "c", filtered[1].ID)

	legendary := domain.RarityLegendary
	assert.Empty(t, FilterByRarity(fruits, &legendary))
}

func TestSummarizeInventory(t *testing.T) {
	fruits := testFruits()
	fruits = append(fruits, &domain.Fruit{ID: "e", Rarity: domain.RarityCommon, Value: 100, Sold: true})

	summary := SummarizeInventory("owner", fruits)

	assert.Equal(t, "owner", summary.AccountKey)
	assert.Equal(t, 4, summary.TotalCount, "sold fruits are excluded")
	assert.Equal(t, 254, summary.TotalValue)
	require.Len(t, summary.Groups, 3)
	assert.Equal(t, domain.RarityCommon, summary.Groups[0].Rarity)
	assert.Equal(t, 2, summary.Groups[0].Count)
	assert.Equal(t, 18, summary.Groups[0].TotalValue)
	assert.Equal(t, domain.RarityRare, summary.Groups[1].Rarity)
	assert.Equal(t, domain.RarityMythic, summary.Groups[2].Rarity)

	empty := SummarizeInventory("owner", nil)
	assert.Empty(t, empty.Groups)
	assert.Zero(t, empty.TotalCount)
}
