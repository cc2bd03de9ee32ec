package quest

// Error messages
const (
	ErrMsgLoadQuestPool    = "failed to load quest pool: %w"
	ErrMsgLoadAchievements = "failed to load achievement catalog: %w"
	ErrMsgResetDailyQuests = "failed to clear daily quests"
)

// Log messages
const (
	LogMsgQuestRolled          = "Quest rolled"
	LogMsgQuestClaimed         = "Quest reward claimed"
	LogMsgAchievementClaimed   = "Achievement reward claimed"
	LogMsgAchievementCompleted = "Achievement completed"
	LogMsgDailyQuestsCleared   = "Daily quests cleared"
)
