package domain

import "time"

// PickResult summarizes one pick action
type PickResult struct {
	Fruits        []*Fruit      `json:"fruits"`
	XPGained      int           `json:"xp_gained"`
	XP            int           `json:"xp"`
	Level         int           `json:"level"`
	LevelUp       bool          `json:"level_up"`
	Quests        QuestSlots    `json:"quests"`
	NewlyComplete []string      `json:"newly_completed_achievements,omitempty"`
	NextPickAt    time.Time     `json:"next_pick_at"`
	Cooldown      time.Duration `json:"cooldown"`
}

// DailyResult summarizes a daily claim
type DailyResult struct {
	Reward      int       `json:"reward"`
	Streak      int       `json:"streak"`
	StreakReset bool      `json:"streak_reset"`
	Coins       int       `json:"coins"`
	NextClaimAt time.Time `json:"next_claim_at"`
}

// SaleResult summarizes a sell action
type SaleResult struct {
	Sold          []*Fruit `json:"sold"`
	Count         int      `json:"count"`
	Total         int      `json:"total"`
	Coins         int      `json:"coins"`
	NewlyComplete []string `json:"newly_completed_achievements,omitempty"`
}

// ShopEntry describes an upgrade track for one account
type ShopEntry struct {
	Track       UpgradeTrack `json:"track"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Tier        int          `json:"tier"`
	MaxTier     int          `json:"max_tier"`
	NextPrice   *int         `json:"next_price,omitempty"`
	Affordable  bool         `json:"affordable"`
}

// Shop is the upgrade catalog priced for one account
type Shop struct {
	AccountKey string      `json:"account_key"`
	Coins      int         `json:"coins"`
	Entries    []ShopEntry `json:"entries"`
}

// PurchaseResult summarizes an upgrade purchase
type PurchaseResult struct {
	Track   UpgradeTrack `json:"track"`
	NewTier int          `json:"new_tier"`
	Price   int          `json:"price"`
	Coins   int          `json:"coins"`
}

// StealResult summarizes a steal attempt
type StealResult struct {
	Success     bool      `json:"success"`
	Chance      float64   `json:"chance"`
	Fruit       *Fruit    `json:"fruit,omitempty"`
	TargetKey   string    `json:"target_key"`
	NextStealAt time.Time `json:"next_steal_at"`
}

// Profile is a read-only account summary
type Profile struct {
	Account      *Account  `json:"account"`
	XPIntoLevel  int       `json:"xp_into_level"`
	XPForNext    int       `json:"xp_for_next_level"`
	NextPickAt   time.Time `json:"next_pick_at"`
	NextDailyAt  time.Time `json:"next_daily_at"`
	NextStealAt  time.Time `json:"next_steal_at"`
	UnsoldFruits int       `json:"unsold_fruits"`
}
