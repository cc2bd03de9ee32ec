package discord

import "time"

// Client defaults
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultMaxRetries     = 3
	DefaultRetryDelay     = 500 * time.Millisecond

	// HandlerTimeout bounds the API work done for one interaction
	HandlerTimeout = 15 * time.Second

	HeaderAPIKey    = "X-API-Key"
	HeaderRequestID = "X-Request-ID"

	apiErrorPrefix = "API error: "
)

// Embed colors
const (
	ColorGreen  = 0x2ecc71
	ColorBlue   = 0x3498db
	ColorOrange = 0xf39c12
	ColorPurple = 0x9b59b6
	ColorRed    = 0xe74c3c
	ColorGold   = 0xf1c40f
	ColorGrey   = 0x95a5a6
)

// FooterOrchard is the standard embed footer
const FooterOrchard = "Orchard"

// Component custom ID prefixes. IDs are "<prefix>:<args...>".
const (
	customIDSeparator = ":"

	PrefixShop  = "shop"
	PrefixQuest = "quest"
	PrefixPanel = "panel"
)

// Panel actions
const (
	PanelPick      = "pick"
	PanelInventory = "inventory"
	PanelSell      = "sell"
	PanelShop      = "shop"
	PanelQuests    = "quests"
	PanelProfile   = "profile"
)

// Command and option names
const (
	OptionRarity  = "rarity"
	OptionUser    = "user"
	OptionMetric  = "metric"
	OptionName    = "name"
	OptionChannel = "channel"

	SubcommandList  = "list"
	SubcommandClaim = "claim"
)

// Friendly message constants for Discord responses
const (
	MsgInsufficientFunds = "⚠️ **Not Enough Coins!**\nSell some fruit and come back."
	MsgAccountNotFound   = "🌱 **No Orchard Yet**\nUse /pick to plant your first tree."
	MsgTargetNotFound    = "👤 **Player Not Found**\nThey haven't picked any fruit yet."
	MsgCooldownActive    = "⏳ **Whoa there!**\nYou need to wait a bit before doing that again."
	MsgNothingToSell     = "🧺 **Empty Basket**\nYou have no fruit to sell."
	MsgMaxTier           = "🏆 **Maxed Out**\nThat upgrade is already at its highest tier."
	MsgSelfSteal         = "🙃 You can't steal from yourself."
	MsgEmptyTarget       = "🍂 Their basket is empty. Nothing to steal."
	MsgNotCompleted      = "📜 **Not Done Yet**\nFinish it before claiming."
	MsgAlreadyClaimed    = "🎁 You already claimed that one."
	MsgManageChannels    = "🔒 You need the **Manage Channels** permission to do that."
	MsgGuildOnly         = "This command only works inside a server."
	MsgSetupComplete     = "✅ The orchard panel is now live in <#%s>."

	MsgGenericError    = "❌ Something went wrong."
	MsgConnectionError = "❌ Error connecting to game server."
)

// Log messages
const (
	LogMsgBotReady          = "Bot is ready"
	LogMsgCommandFailed     = "Command failed"
	LogMsgRespondFailed     = "Failed to send interaction response"
	LogMsgEditFailed        = "Failed to edit interaction response"
	LogMsgRetryingRequest   = "Retrying API request"
	LogMsgUnknownComponent  = "Unknown component interaction"
	LogMsgCommandsUnchanged = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated   = "Commands updated successfully"
)
