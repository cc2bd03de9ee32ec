package economy

import (
	"fmt"
	"math"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// LookupUpgrade returns the pricing of a track
func LookupUpgrade(track domain.UpgradeTrack) (UpgradeSpec, bool) {
	for _, spec := range UpgradeCatalog {
		if spec.Track == track {
			return spec, true
		}
	}
	return UpgradeSpec{}, false
}

// Price is floor(base * multiplier^tier) for buying the next tier
func (s UpgradeSpec) Price(currentTier int) int {
	return int(math.Floor(float64(s.BasePrice) * math.Pow(s.Multiplier, float64(currentTier))))
}

// ShopFor prices every track for account
func ShopFor(account *domain.Account) *domain.Shop {
	shop := &domain.Shop{
		AccountKey: account.Key,
		Coins:      account.Coins,
		Entries:    make([]domain.ShopEntry, 0, len(UpgradeCatalog)),
	}
	for _, spec := range UpgradeCatalog {
		tier := account.Upgrades.Tier(spec.Track)
		entry := domain.ShopEntry{
			Track:       spec.Track,
			Name:        UpgradeDisplayName(spec.Track),
			Description: spec.Description,
			Tier:        tier,
			MaxTier:     spec.MaxTier,
		}
		if tier < spec.MaxTier {
			price := spec.Price(tier)
			entry.NextPrice = &price
			entry.Affordable = account.Coins >= price
		}
		shop.Entries = append(shop.Entries, entry)
	}
	return shop
}

// Purchase buys the next tier of track. Nothing is deducted on failure.
func Purchase(account *domain.Account, track domain.UpgradeTrack) (*domain.PurchaseResult, error) {
	spec, ok := LookupUpgrade(track)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidUpgrade, track)
	}
	tier := account.Upgrades.Tier(track)
	if tier >= spec.MaxTier {
		return nil, fmt.Errorf("%w: %s is tier %d", domain.ErrMaxTier, track, tier)
	}
	price := spec.Price(tier)
	if account.Coins < price {
		return nil, fmt.Errorf("%w: need %d coins, have %d", domain.ErrInsufficientFunds, price, account.Coins)
	}

	account.Coins -= price
	account.Upgrades.SetTier(track, tier+1)
	return &domain.PurchaseResult{
		Track:   track,
		NewTier: tier + 1,
		Price:   price,
		Coins:   account.Coins,
	}, nil
}
