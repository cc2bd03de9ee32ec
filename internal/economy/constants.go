package economy

import "github.com/punaab/discord-ts-UQkA/internal/domain"

// ==================== Reward Roll ====================

// BaseRarityWeights is the drop table before scanner adjustment. Sums to 1.0.
var BaseRarityWeights = WeightTable{
	domain.RarityCommon:    0.6,
	domain.RarityUncommon:  0.3,
	domain.RarityRare:      0.07,
	domain.RarityLegendary: 0.025,
	domain.RarityMythic:    0.005,
}

// Scanner bonus per fruitScanner tier, and how it is redistributed
const (
	ScannerBonusPerTier   = 0.05
	ScannerMythicShare    = 0.5
	ScannerLegendaryShare = 0.3
	ScannerRareShare      = 0.2
)

// Value scaling per level and per toolQuality tier
const (
	LevelValueBonus = 0.05
	ToolValueBonus  = 0.10
)

// ==================== Progression ====================

const (
	// XPPerLevelUnit is the divisor in level = floor(sqrt(xp / unit)) + 1
	XPPerLevelUnit = 100
	// BaseXPPerFruit is multiplied by the rarity multiplier
	BaseXPPerFruit = 10

	ToolCooldownReduction = 0.10
	LevelsPerExtraFruit   = 5
	FruitsPerBasketTier   = 2

	DailyBaseReward      = 50
	DailyRewardPerLevel  = 10
	DailyRewardPerStreak = 5
	DailyStreakCap       = 7
)

// RarityXPMultipliers scale BaseXPPerFruit
var RarityXPMultipliers = map[domain.Rarity]float64{
	domain.RarityCommon:    1,
	domain.RarityUncommon:  1.5,
	domain.RarityRare:      2,
	domain.RarityLegendary: 3,
	domain.RarityMythic:    5,
}

// ==================== Market ====================

// PriceBand is the multiplier range sampled for one rarity
type PriceBand struct {
	Min float64
	Max float64
}

// MarketBands widen with rarity
var MarketBands = map[domain.Rarity]PriceBand{
	domain.RarityCommon:    {Min: 0.8, Max: 1.2},
	domain.RarityUncommon:  {Min: 0.7, Max: 1.3},
	domain.RarityRare:      {Min: 0.6, Max: 1.4},
	domain.RarityLegendary: {Min: 0.5, Max: 1.5},
	domain.RarityMythic:    {Min: 0.4, Max: 1.6},
}

// MarketBasePrices are the unscaled prices per rarity
var MarketBasePrices = map[domain.Rarity]int{
	domain.RarityCommon:    10,
	domain.RarityUncommon:  20,
	domain.RarityRare:      50,
	domain.RarityLegendary: 100,
	domain.RarityMythic:    200,
}

// MarketEpochLength is how long one set of prices stays valid
const MarketEpochLength = domain.MarketEpochLength

// ==================== Shop ====================

// UpgradeSpec is the pricing of one upgrade track
type UpgradeSpec struct {
	Track       domain.UpgradeTrack
	Description string
	BasePrice   int
	MaxTier     int
	Multiplier  float64
}

// UpgradeCatalog lists purchasable tracks in display order
var UpgradeCatalog = []UpgradeSpec{
	{Track: domain.UpgradeBasketCapacity, Description: "+2 fruits per pick", BasePrice: 100, MaxTier: 10, Multiplier: 1.5},
	{Track: domain.UpgradeToolQuality, Description: "-10% pick cooldown, +10% fruit value", BasePrice: 200, MaxTier: 5, Multiplier: 2},
	{Track: domain.UpgradeFruitScanner, Description: "Better odds for rare fruits", BasePrice: 500, MaxTier: 3, Multiplier: 2.5},
	{Track: domain.UpgradeAutoPicker, Description: "An orchard helper that shows off your progress", BasePrice: 1000, MaxTier: 2, Multiplier: 3},
}
