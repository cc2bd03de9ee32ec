package domain

import "time"

// Cooldown actions
const (
	ActionPick  = "pick"
	ActionDaily = "daily"
	ActionSteal = "steal"
)

// Game timing constants
const (
	BasePickCooldown  = 5 * time.Minute
	MinPickCooldown   = time.Minute
	DailyCooldown     = 24 * time.Hour
	DailyStreakWindow = 48 * time.Hour
	StealCooldown     = 30 * time.Minute
	MarketEpochLength = 6 * time.Hour
	MarketTrendWindow = 24 * time.Hour
	LeaderboardSize   = 10
)

// Platform
const (
	PlatformDiscord = "discord"
)
