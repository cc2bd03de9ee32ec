package domain

// AchievementStat names the account counter an achievement tracks
type AchievementStat string

const (
	StatTotalPicked     AchievementStat = "totalPicked"
	StatTotalSold       AchievementStat = "totalSold"
	StatTotalEarned     AchievementStat = "totalEarned"
	StatRareFruitsFound AchievementStat = "rareFruitsFound"
	StatLevel           AchievementStat = "level"
	StatCoins           AchievementStat = "coins"
)

// AchievementRequirement is the stat threshold that completes an achievement
type AchievementRequirement struct {
	Target int             `json:"target"`
	Stat   AchievementStat `json:"stat"`
}

// AchievementReward is granted once on claim
type AchievementReward struct {
	Coins int `json:"coins"`
	Gems  int `json:"gems"`
	XP    int `json:"xp"`
}

// Achievement is a global, read-only definition
type Achievement struct {
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Category     string                 `json:"category"`
	Requirements AchievementRequirement `json:"requirements"`
	Rewards      AchievementReward      `json:"rewards"`
	Icon         string                 `json:"icon,omitempty"`
	Rarity       Rarity                 `json:"rarity"`
}

// AchievementRecord tracks one account's progress on one definition.
// Claimed implies Completed.
type AchievementRecord struct {
	Name      string `json:"name"`
	Progress  int    `json:"progress"`
	Completed bool   `json:"completed"`
	Claimed   bool   `json:"claimed"`
}

// AchievementView pairs a definition with the account's record
type AchievementView struct {
	Achievement
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
	Claimed   bool `json:"claimed"`
}

// AchievementClaimResult is returned after an achievement reward has been paid
type AchievementClaimResult struct {
	Name    string            `json:"name"`
	Reward  AchievementReward `json:"reward"`
	Coins   int               `json:"coins"`
	Gems    int               `json:"gems"`
	XP      int               `json:"xp"`
	Level   int               `json:"level"`
	LevelUp bool              `json:"level_up"`
}
