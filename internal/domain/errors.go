package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Not found
	ErrMsgAccountNotFound     = "account not found"
	ErrMsgAchievementNotFound = "achievement not found"
	ErrMsgQuestNotFound       = "quest not found"
	ErrMsgGuildNotFound       = "guild not found"
	ErrMsgFruitNotFound       = "fruit not found"

	// Cooldown
	ErrMsgOnCooldown = "action on cooldown"

	// Funds
	ErrMsgInsufficientFunds = "insufficient funds"

	// Invalid target
	ErrMsgSelfSteal            = "cannot steal from yourself"
	ErrMsgEmptyTargetInventory = "target has no fruits to steal"

	// Preconditions
	ErrMsgNothingToSell             = "no fruits to sell"
	ErrMsgMaxTier                   = "upgrade already at max tier"
	ErrMsgQuestNotCompleted         = "quest not completed"
	ErrMsgAchievementNotCompleted   = "achievement not completed"
	ErrMsgAchievementAlreadyClaimed = "achievement already claimed"

	// Input
	ErrMsgInvalidInput   = "invalid input"
	ErrMsgInvalidRarity  = "invalid rarity"
	ErrMsgInvalidUpgrade = "invalid upgrade"
	ErrMsgInvalidCycle   = "invalid quest cycle"
	ErrMsgInvalidMetric  = "invalid leaderboard metric"

	// Infrastructure
	ErrMsgInfrastructure  = "infrastructure failure"
	ErrMsgVersionConflict = "account was modified concurrently"
	ErrMsgTxClosed        = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrAccountNotFound     = errors.New(ErrMsgAccountNotFound)
	ErrAchievementNotFound = errors.New(ErrMsgAchievementNotFound)
	ErrQuestNotFound       = errors.New(ErrMsgQuestNotFound)
	ErrGuildNotFound       = errors.New(ErrMsgGuildNotFound)
	ErrFruitNotFound       = errors.New(ErrMsgFruitNotFound)

	// ErrOnCooldown is matched by cooldown.ErrOnCooldown through errors.Is
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrSelfSteal            = errors.New(ErrMsgSelfSteal)
	ErrEmptyTargetInventory = errors.New(ErrMsgEmptyTargetInventory)

	ErrNothingToSell             = errors.New(ErrMsgNothingToSell)
	ErrMaxTier                   = errors.New(ErrMsgMaxTier)
	ErrQuestNotCompleted         = errors.New(ErrMsgQuestNotCompleted)
	ErrAchievementNotCompleted   = errors.New(ErrMsgAchievementNotCompleted)
	ErrAchievementAlreadyClaimed = errors.New(ErrMsgAchievementAlreadyClaimed)

	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
	ErrInvalidRarity  = errors.New(ErrMsgInvalidRarity)
	ErrInvalidUpgrade = errors.New(ErrMsgInvalidUpgrade)
	ErrInvalidCycle   = errors.New(ErrMsgInvalidCycle)
	ErrInvalidMetric  = errors.New(ErrMsgInvalidMetric)

	// ErrInfrastructure marks store and transport failures
	ErrInfrastructure  = errors.New(ErrMsgInfrastructure)
	ErrVersionConflict = errors.New(ErrMsgVersionConflict)
)

// IsInvalidTarget reports whether err rejects the steal target
func IsInvalidTarget(err error) bool {
	return errors.Is(err, ErrSelfSteal) || errors.Is(err, ErrEmptyTargetInventory)
}
