package economy

import (
	"math"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// LevelForXP maps experience to level: floor(sqrt(xp/100)) + 1.
// Negative xp is treated as zero.
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	return int(math.Floor(math.Sqrt(float64(xp)/XPPerLevelUnit))) + 1
}

// XPForLevel is the minimum experience needed to reach level
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	n := level - 1
	return n * n * XPPerLevelUnit
}

// PickCooldown reduces base by 10% per tool tier with a one minute floor
func PickCooldown(base time.Duration, toolTier int) time.Duration {
	ms := float64(base.Milliseconds()) * (1 - float64(toolTier)*ToolCooldownReduction)
	reduced := time.Duration(math.Round(ms)) * time.Millisecond
	if reduced < domain.MinPickCooldown {
		return domain.MinPickCooldown
	}
	return reduced
}

// PickCount is how many fruits a single pick yields
func PickCount(level, basketTier int) int {
	return 1 + level/LevelsPerExtraFruit + basketTier*FruitsPerBasketTier
}

// DailyReward is 50 + level*10 + min(streak, 7)*5
func DailyReward(level, streak int) int {
	return DailyBaseReward + level*DailyRewardPerLevel + min(max(streak, 0), DailyStreakCap)*DailyRewardPerStreak
}

// XPForRoll sums 10 * rarity multiplier over the picked fruits
func XPForRoll(fruits []*domain.Fruit) int {
	total := 0.0
	for _, f := range fruits {
		total += BaseXPPerFruit * RarityXPMultipliers[f.Rarity]
	}
	return int(total)
}

// FruitValue scales a base value by level and tool tier, floored
func FruitValue(baseValue, level, toolTier int) int {
	v := float64(baseValue) * (1 + float64(level)*LevelValueBonus) * (1 + float64(toolTier)*ToolValueBonus)
	return int(math.Floor(v))
}

// LevelProgress is the outcome of adding experience to an account
type LevelProgress struct {
	OldLevel int
	NewLevel int
}

// LeveledUp reports whether the level increased
func (p LevelProgress) LeveledUp() bool {
	return p.NewLevel > p.OldLevel
}

// GrantXP adds xp to the account and raises the cached level when the
// curve says so. The level never goes down.
func GrantXP(account *domain.Account, xp int) LevelProgress {
	old := account.Level
	if old < 1 {
		old = 1
	}
	account.XP += xp
	if account.XP < 0 {
		account.XP = 0
	}
	account.Level = max(old, LevelForXP(account.XP))
	return LevelProgress{OldLevel: old, NewLevel: account.Level}
}
