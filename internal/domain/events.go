package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "fruit.sold")
const (
	// EventTypeFruitPicked is published after a successful pick
	EventTypeFruitPicked = "fruit.picked"

	// EventTypeFruitSold is published after a sale
	EventTypeFruitSold = "fruit.sold"

	// EventTypeLevelUp is published when a pick or claim raises the level
	EventTypeLevelUp = "account.level_up"

	// EventTypeUpgradePurchased is published after a shop purchase
	EventTypeUpgradePurchased = "upgrade.purchased"

	// EventTypeStealAttempted is published for both successful and failed steals
	EventTypeStealAttempted = "steal.attempted"

	// EventTypeQuestClaimed is published after a quest reward is paid
	EventTypeQuestClaimed = "quest.claimed"

	// EventTypeAchievementClaimed is published after an achievement reward is paid
	EventTypeAchievementClaimed = "achievement.claimed"

	// EventTypeDailyClaimed is published after a daily reward is paid
	EventTypeDailyClaimed = "daily.claimed"

	// EventTypeDailyReset is published by the midnight UTC reset worker
	EventTypeDailyReset = "daily.reset"

	// EventTypeMarketRotated is published when a new pricing epoch starts
	EventTypeMarketRotated = "market.rotated"

	// EventTypeFruitStorm is published when a fruit storm is triggered
	EventTypeFruitStorm = "fruit.storm"
)
