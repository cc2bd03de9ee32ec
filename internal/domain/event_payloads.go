package domain

// FruitPickedPayload is the payload of EventTypeFruitPicked
type FruitPickedPayload struct {
	AccountKey string         `json:"account_key"`
	Count      int            `json:"count"`
	ByRarity   map[string]int `json:"by_rarity"`
	XPGained   int            `json:"xp_gained"`
	Timestamp  int64          `json:"timestamp"`
}

// FruitSoldPayload is the payload of EventTypeFruitSold
type FruitSoldPayload struct {
	AccountKey string `json:"account_key"`
	Count      int    `json:"count"`
	Total      int    `json:"total"`
	Timestamp  int64  `json:"timestamp"`
}

// LevelUpPayload is the payload of EventTypeLevelUp
type LevelUpPayload struct {
	AccountKey string `json:"account_key"`
	OldLevel   int    `json:"old_level"`
	NewLevel   int    `json:"new_level"`
	Timestamp  int64  `json:"timestamp"`
}

// UpgradePurchasedPayload is the payload of EventTypeUpgradePurchased
type UpgradePurchasedPayload struct {
	AccountKey string `json:"account_key"`
	Track      string `json:"track"`
	Tier       int    `json:"tier"`
	Price      int    `json:"price"`
	Timestamp  int64  `json:"timestamp"`
}

// StealAttemptedPayload is the payload of EventTypeStealAttempted
type StealAttemptedPayload struct {
	ActorKey  string  `json:"actor_key"`
	TargetKey string  `json:"target_key"`
	Success   bool    `json:"success"`
	Chance    float64 `json:"chance"`
	FruitID   string  `json:"fruit_id,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// ClaimPayload is the payload of quest, achievement and daily claim events
type ClaimPayload struct {
	AccountKey string `json:"account_key"`
	Name       string `json:"name"`
	Coins      int    `json:"coins"`
	Gems       int    `json:"gems"`
	XP         int    `json:"xp"`
	Timestamp  int64  `json:"timestamp"`
}

// DailyResetPayload is the payload of EventTypeDailyReset
type DailyResetPayload struct {
	QuestsCleared int64 `json:"quests_cleared"`
	ResetTime     int64 `json:"reset_time"`
}

// MarketRotatedPayload is the payload of EventTypeMarketRotated
type MarketRotatedPayload struct {
	Epoch     int64          `json:"epoch"`
	Prices    map[string]int `json:"prices"`
	Timestamp int64          `json:"timestamp"`
}

// FruitStormPayload is the payload of EventTypeFruitStorm
type FruitStormPayload struct {
	Roll      float64 `json:"roll"`
	Timestamp int64   `json:"timestamp"`
}
