package economy

import (
	"time"

	"github.com/google/uuid"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/utils"
)

// WeightTable maps each rarity to its drop weight
type WeightTable map[domain.Rarity]float64

// Total sums every weight
func (w WeightTable) Total() float64 {
	total := 0.0
	for _, r := range domain.Rarities {
		total += w[r]
	}
	return total
}

// Pick walks the tiers common to mythic and returns the first whose
// cumulative weight exceeds sample. Samples past the total (rounding)
// fall to the highest tier with a positive weight.
func (w WeightTable) Pick(sample float64) domain.Rarity {
	cumulative := 0.0
	last := domain.RarityCommon
	for _, r := range domain.Rarities {
		if w[r] <= 0 {
			continue
		}
		cumulative += w[r]
		last = r
		if sample < cumulative {
			return r
		}
	}
	return last
}

// ScannerBonus converts a fruitScanner tier into the redistributed mass
func ScannerBonus(scannerTier int) float64 {
	if scannerTier <= 0 {
		return 0
	}
	return float64(scannerTier) * ScannerBonusPerTier
}

// AdjustedWeights moves bonus mass from common to the top three tiers,
// clamps every weight at zero and renormalizes so the table sums to 1.
func AdjustedWeights(base WeightTable, bonus float64) WeightTable {
	adjusted := make(WeightTable, len(domain.Rarities))
	for _, r := range domain.Rarities {
		adjusted[r] = base[r]
	}
	if bonus > 0 {
		adjusted[domain.RarityMythic] += bonus * ScannerMythicShare
		adjusted[domain.RarityLegendary] += bonus * ScannerLegendaryShare
		adjusted[domain.RarityRare] += bonus * ScannerRareShare
		adjusted[domain.RarityCommon] -= bonus
	}

	total := 0.0
	for _, r := range domain.Rarities {
		if adjusted[r] < 0 {
			adjusted[r] = 0
		}
		total += adjusted[r]
	}
	if total <= 0 {
		return WeightTable{domain.RarityCommon: 1}
	}
	for _, r := range domain.Rarities {
		adjusted[r] /= total
	}
	return adjusted
}

// RewardRoller draws fruits for an account
type RewardRoller struct {
	weights WeightTable
	rnd     utils.Random
	newID   func() string
}

// NewRewardRoller creates a roller over the base drop table
func NewRewardRoller(rnd utils.Random) *RewardRoller {
	return &RewardRoller{
		weights: BaseRarityWeights,
		rnd:     rnd,
		newID:   uuid.NewString,
	}
}

// Roll draws count fruits for account. Values are scaled by the account's
// level and tool tier at roll time. The returned fruits are not persisted.
func (r *RewardRoller) Roll(account *domain.Account, count int, now time.Time) []*domain.Fruit {
	if count <= 0 {
		return []*domain.Fruit{}
	}
	weights := AdjustedWeights(r.weights, ScannerBonus(account.Upgrades.FruitScanner))

	fruits := make([]*domain.Fruit, 0, count)
	for i := 0; i < count; i++ {
		rarity := weights.Pick(r.rnd.Float64())
		candidates := FruitsOfRarity(rarity)
		fruitType := candidates[r.rnd.Intn(len(candidates))]

		fruits = append(fruits, &domain.Fruit{
			ID:       r.newID(),
			OwnerKey: account.Key,
			Name:     fruitType.Name,
			Rarity:   rarity,
			Value:    FruitValue(fruitType.BaseValue, account.Level, account.Upgrades.ToolQuality),
			PickedAt: now,
		})
	}
	return fruits
}
