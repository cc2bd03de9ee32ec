package session

import "time"

// Session lifetimes
const (
	ShopTTL    = 60 * time.Second
	QuestTTL   = 5 * time.Minute
	DefaultTTL = time.Minute

	// MaxTTL bounds every kind; the memory store expires entries after it
	MaxTTL = QuestTTL

	// DefaultMemoryCapacity is the number of sessions the memory store keeps
	DefaultMemoryCapacity = 10_000

	redisKeyPrefix = "orchard:session:"
)

// Error messages
const (
	ErrMsgSessionExpired  = "this menu has expired, run the command again"
	ErrMsgSessionNotOwner = "this menu belongs to someone else"
	ErrMsgSaveFailed      = "failed to save session"
	ErrMsgDeleteFailed    = "failed to delete session"
	ErrMsgDecodeFailed    = "failed to decode session"
)

// Log messages
const (
	LogMsgSessionOpened = "Session opened"
	LogMsgDeleteFailed  = "Failed to delete expired session"
)
