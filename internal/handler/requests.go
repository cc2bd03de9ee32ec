package handler

// AccountRequest identifies the acting account. Username is stored on
// first use and refreshed on later picks and daily claims.
type AccountRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	Username  string `json:"username" validate:"required,max=100"`
}

// SellRequest sells every unsold fruit, or one rarity
type SellRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	Rarity    string `json:"rarity" validate:"omitempty,rarity"`
}

// BuyUpgradeRequest buys the next tier of an upgrade track
type BuyUpgradeRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	Track     string `json:"track" validate:"required,upgrade_track"`
}

// StealRequest attempts to steal one fruit from the target
type StealRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	TargetID  string `json:"target_id" validate:"required,max=64"`
}

// ClaimQuestRequest claims a completed quest slot
type ClaimQuestRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	Cycle     string `json:"cycle" validate:"required,quest_cycle"`
}

// ClaimAchievementRequest claims a completed achievement
type ClaimAchievementRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	Name      string `json:"name" validate:"required,max=100"`
}

// SetupGuildRequest stores the bot channel for a Discord server
type SetupGuildRequest struct {
	GuildID   string `json:"guild_id" validate:"required,max=64"`
	Name      string `json:"name" validate:"max=100"`
	ChannelID string `json:"channel_id" validate:"required,max=64"`
}
