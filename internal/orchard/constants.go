package orchard

// Error messages
const (
	ErrMsgCreateFruitsFailed   = "failed to stage picked fruits"
	ErrMsgLoadInventoryFailed  = "failed to load inventory"
	ErrMsgMarkSoldFailed       = "failed to stage sale"
	ErrMsgLoadMarketFailed     = "failed to load market state"
	ErrMsgSaveMarketFailed     = "failed to save market state"
	ErrMsgLoadSalesFailed      = "failed to load recent sales"
	ErrMsgLoadLeaderboard      = "failed to load leaderboard"
	ErrMsgLoadRankFailed       = "failed to load rank"
	ErrMsgSaveGuildFailed      = "failed to save guild"
	ErrMsgLoadGuildFailed      = "failed to load guild"
	ErrMsgInvalidAccountKey    = "account key is required"
	ErrMsgInvalidGuildSettings = "guild id and channel id are required"
)

// Log messages
const (
	LogMsgPickCalled        = "Pick called"
	LogMsgPickCompleted     = "Pick completed"
	LogMsgDailyCalled       = "ClaimDaily called"
	LogMsgSellCalled        = "Sell called"
	LogMsgSellCompleted     = "Sell completed"
	LogMsgBuyUpgradeCalled  = "BuyUpgrade called"
	LogMsgUpgradePurchased  = "Upgrade purchased"
	LogMsgLevelUp           = "Account leveled up"
	LogMsgGuildConfigured   = "Guild configured"
	LogMsgAchievementsReady = "Achievements completed"
	LogMsgMarketRotated     = "Market rotated"
)
