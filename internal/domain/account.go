package domain

import "time"

// UpgradeTrack identifies one of the purchasable account modifiers
type UpgradeTrack string

const (
	UpgradeBasketCapacity UpgradeTrack = "basketCapacity"
	UpgradeToolQuality    UpgradeTrack = "toolQuality"
	UpgradeFruitScanner   UpgradeTrack = "fruitScanner"
	UpgradeAutoPicker     UpgradeTrack = "autoPicker"
)

// UpgradeTracks lists the tracks in shop display order
var UpgradeTracks = []UpgradeTrack{UpgradeBasketCapacity, UpgradeToolQuality, UpgradeFruitScanner, UpgradeAutoPicker}

// Upgrades holds the current tier of each track
type Upgrades struct {
	BasketCapacity int `json:"basket_capacity"`
	ToolQuality    int `json:"tool_quality"`
	FruitScanner   int `json:"fruit_scanner"`
	AutoPicker     int `json:"auto_picker"`
}

// Tier returns the tier for a track, or -1 for an unknown track
func (u Upgrades) Tier(track UpgradeTrack) int {
	switch track {
	case UpgradeBasketCapacity:
		return u.BasketCapacity
	case UpgradeToolQuality:
		return u.ToolQuality
	case UpgradeFruitScanner:
		return u.FruitScanner
	case UpgradeAutoPicker:
		return u.AutoPicker
	default:
		return -1
	}
}

// SetTier sets the tier for a track. Unknown tracks are ignored.
func (u *Upgrades) SetTier(track UpgradeTrack, tier int) {
	switch track {
	case UpgradeBasketCapacity:
		u.BasketCapacity = tier
	case UpgradeToolQuality:
		u.ToolQuality = tier
	case UpgradeFruitScanner:
		u.FruitScanner = tier
	case UpgradeAutoPicker:
		u.AutoPicker = tier
	}
}

// Stats are lifetime counters
type Stats struct {
	TotalPicked     int `json:"total_picked"`
	TotalSold       int `json:"total_sold"`
	TotalEarned     int `json:"total_earned"`
	RareFruitsFound int `json:"rare_fruits_found"`
}

// Account is a player's full persisted state. It is loaded, mutated and
// saved as a whole; Version guards against lost updates.
type Account struct {
	Key      string `json:"key"`
	Username string `json:"username"`

	Coins int `json:"coins"`
	Gems  int `json:"gems"`
	XP    int `json:"xp"`
	Level int `json:"level"`

	Upgrades Upgrades `json:"upgrades"`
	Stats    Stats    `json:"stats"`

	LastPickAt  *time.Time `json:"last_pick_at,omitempty"`
	LastDailyAt *time.Time `json:"last_daily_at,omitempty"`
	LastStealAt *time.Time `json:"last_steal_at,omitempty"`
	DailyStreak int        `json:"daily_streak"`

	Quests       QuestSlots           `json:"quests"`
	Achievements []*AchievementRecord `json:"achievements"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAccount returns the defaults for a first-time player
func NewAccount(key, username string, now time.Time) *Account {
	return &Account{
		Key:          key,
		Username:     username,
		Level:        1,
		Achievements: []*AchievementRecord{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// StatValue resolves an achievement stat name against the account
func (a *Account) StatValue(stat AchievementStat) (int, bool) {
	switch stat {
	case StatTotalPicked:
		return a.Stats.TotalPicked, true
	case StatTotalSold:
		return a.Stats.TotalSold, true
	case StatTotalEarned:
		return a.Stats.TotalEarned, true
	case StatRareFruitsFound:
		return a.Stats.RareFruitsFound, true
	case StatLevel:
		return a.Level, true
	case StatCoins:
		return a.Coins, true
	default:
		return 0, false
	}
}

// Achievement returns the record for a definition name, or nil
func (a *Account) Achievement(name string) *AchievementRecord {
	for _, rec := range a.Achievements {
		if rec.Name == name {
			return rec
		}
	}
	return nil
}

// Clone returns a deep copy so failed operations can be discarded
func (a *Account) Clone() *Account {
	c := *a
	c.LastPickAt = cloneTime(a.LastPickAt)
	c.LastDailyAt = cloneTime(a.LastDailyAt)
	c.LastStealAt = cloneTime(a.LastStealAt)
	c.Quests = a.Quests.clone()
	c.Achievements = make([]*AchievementRecord, len(a.Achievements))
	for i, rec := range a.Achievements {
		r := *rec
		c.Achievements[i] = &r
	}
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
