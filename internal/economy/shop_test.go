package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

func TestUpgradeSpec_Price(t *testing.T) {
	tests := []struct {
		track    domain.UpgradeTrack
		tier     int
		expected int
	}{
		{domain.UpgradeBasketCapacity, 0, 100},
		{domain.UpgradeBasketCapacity, 1, 150},
		{domain.UpgradeBasketCapacity, 2, 225},
		{domain.UpgradeBasketCapacity, 3, 337},
		{domain.UpgradeToolQuality, 1, 400},
		{domain.UpgradeToolQuality, 4, 3200},
		{domain.UpgradeFruitScanner, 1, 1250},
		{domain.UpgradeFruitScanner, 2, 3125},
		{domain.UpgradeAutoPicker, 1, 3000},
	}
	for _, tt := range tests {
		spec, ok := LookupUpgrade(tt.track)
		require.True(t, ok)
		assert.Equal(t, tt.expected, spec.Price(tt.tier), "%s tier %d", tt.track, tt.tier)
	}
}

func TestPurchase(t *testing.T) {
	t.Run("deducts the price and raises the tier", func(t *testing.T) {
		account := &domain.Account{Coins: 500}
		account.Upgrades.ToolQuality = 1

		result, err := Purchase(account, domain.UpgradeToolQuality)

		require.NoError(t, err)
		assert.Equal(t, 2, result.NewTier)
		assert.Equal(t, 400, result.Price)
		assert.Equal(t, 100, result.Coins)
		assert.Equal(t, 100, account.Coins)
		assert.Equal(t, 2, account.Upgrades.ToolQuality)
	})

	t.Run("exact balance is enough", func(t *testing.T) {
		account := &domain.Account{Coins: 150}
		account.Upgrades.BasketCapacity = 1

		result, err := Purchase(account, domain.UpgradeBasketCapacity)

		require.NoError(t, err)
		assert.Equal(t, 150, result.Price)
		assert.Zero(t, account.Coins)
		assert.Equal(t, 2, account.Upgrades.BasketCapacity)
	})

	t.Run("insufficient funds leaves the account untouched", func(t *testing.T) {
		account := &domain.Account{Coins: 99}

		_, err := Purchase(account, domain.UpgradeBasketCapacity)

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, 99, account.Coins)
		assert.Zero(t, account.Upgrades.BasketCapacity)
	})

	t.Run("max tier is rejected even with funds", func(t *testing.T) {
		account := &domain.Account{Coins: 1_000_000}
		account.Upgrades.AutoPicker = 2

		_, err := Purchase(account, domain.UpgradeAutoPicker)

		assert.ErrorIs(t, err, domain.ErrMaxTier)
		assert.Equal(t, 1_000_000, account.Coins)
	})

	t.Run("unknown track", func(t *testing.T) {
		_, err := Purchase(&domain.Account{Coins: 10_000}, domain.UpgradeTrack("jetpack"))
		assert.ErrorIs(t, err, domain.ErrInvalidUpgrade)
	})
}

func TestShopFor(t *testing.T) {
	account := &domain.Account{Key: "k", Coins: 300}
	account.Upgrades.FruitScanner = 3

	shop := ShopFor(account)

	require.Len(t, shop.Entries, len(UpgradeCatalog))
	basket := shop.Entries[0]
	assert.Equal(t, domain.UpgradeBasketCapacity, basket.Track)
	assert.Equal(t, "Basket Capacity", basket.Name)
	require.NotNil(t, basket.NextPrice)
	assert.Equal(t, 100, *basket.NextPrice)
	assert.True(t, basket.Affordable)

	scanner := shop.Entries[2]
	assert.Equal(t, 3, scanner.Tier)
	assert.Nil(t, scanner.NextPrice, "no price at max tier")
	assert.False(t, scanner.Affordable)

	auto := shop.Entries[3]
	assert.False(t, auto.Affordable)
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "Legendary", RarityDisplayName(domain.RarityLegendary))
	assert.Equal(t, "Fruit Scanner", UpgradeDisplayName(domain.UpgradeFruitScanner))
	assert.Equal(t, "Auto Picker", UpgradeDisplayName(domain.UpgradeAutoPicker))
	assert.Equal(t, "🌙", RarityEmoji(domain.RarityMythic))
}
