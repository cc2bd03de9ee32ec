package economy

import (
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// Sell marks every fruit sold for its own value and credits the account.
// The caller guarantees fruits are unsold and owned by account.
func Sell(account *domain.Account, fruits []*domain.Fruit, now time.Time) *domain.SaleResult {
	soldAt := now
	total := 0
	for _, f := range fruits {
		f.Sold = true
		f.SoldAt = &soldAt
		f.SoldFor = f.Value
		total += f.Value
	}

	account.Coins += total
	account.Stats.TotalSold += len(fruits)
	account.Stats.TotalEarned += total

	return &domain.SaleResult{
		Sold:  fruits,
		Count: len(fruits),
		Total: total,
		Coins: account.Coins,
	}
}

// FilterByRarity keeps fruits of rarity, or all fruits when rarity is nil
func FilterByRarity(fruits []*domain.Fruit, rarity *domain.Rarity) []*domain.Fruit {
	if rarity == nil {
		return fruits
	}
	out := make([]*domain.Fruit, 0, len(fruits))
	for _, f := range fruits {
		if f.Rarity == *rarity {
			out = append(out, f)
		}
	}
	return out
}

// SummarizeInventory groups unsold fruits by rarity, common first. Empty
// tiers are omitted.
func SummarizeInventory(accountKey string, fruits []*domain.Fruit) *domain.InventorySummary {
	groups := make(map[domain.Rarity]*domain.RarityGroup, len(domain.Rarities))
	summary := &domain.InventorySummary{AccountKey: accountKey, Groups: []domain.RarityGroup{}}
	for _, f := range fruits {
		if f.Sold {
			continue
		}
		g, ok := groups[f.Rarity]
		if !ok {
			g = &domain.RarityGroup{Rarity: f.Rarity}
			groups[f.Rarity] = g
		}
		g.Count++
		g.TotalValue += f.Value
		g.Fruits = append(g.Fruits, f)
		summary.TotalCount++
		summary.TotalValue += f.Value
	}
	for _, r := range domain.Rarities {
		if g, ok := groups[r]; ok {
			summary.Groups = append(summary.Groups, *g)
		}
	}
	return summary
}
