package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Game event types
const (
	FruitPicked        Type = domain.EventTypeFruitPicked
	FruitSold          Type = domain.EventTypeFruitSold
	LevelUp            Type = domain.EventTypeLevelUp
	UpgradePurchased   Type = domain.EventTypeUpgradePurchased
	StealAttempted     Type = domain.EventTypeStealAttempted
	QuestClaimed       Type = domain.EventTypeQuestClaimed
	AchievementClaimed Type = domain.EventTypeAchievementClaimed
	DailyClaimed       Type = domain.EventTypeDailyClaimed
	DailyReset         Type = domain.EventTypeDailyReset
	MarketRotated      Type = domain.EventTypeMarketRotated
	FruitStorm         Type = domain.EventTypeFruitStorm
)

// AllTypes lists every game event type, used to attach metrics subscribers
var AllTypes = []Type{
	FruitPicked, FruitSold, LevelUp, UpgradePurchased, StealAttempted,
	QuestClaimed, AchievementClaimed, DailyClaimed, DailyReset, MarketRotated, FruitStorm,
}

func newEvent(t Type, payload interface{}, metadata Metadata) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: metadata,
	}
}

func accountMeta(key string) Metadata {
	return map[string]interface{}{"account_key": key}
}

// NewFruitPickedEvent creates a fruit picked event
func NewFruitPickedEvent(accountKey string, fruits []*domain.Fruit, xpGained int) Event {
	byRarity := make(map[string]int)
	for _, f := range fruits {
		byRarity[f.Rarity.String()]++
	}
	return newEvent(FruitPicked, domain.FruitPickedPayload{
		AccountKey: accountKey,
		Count:      len(fruits),
		ByRarity:   byRarity,
		XPGained:   xpGained,
		Timestamp:  time.Now().Unix(),
	}, accountMeta(accountKey))
}

// NewFruitSoldEvent creates a fruit sold event
func NewFruitSoldEvent(accountKey string, count, total int) Event {
	return newEvent(FruitSold, domain.FruitSoldPayload{
		AccountKey: accountKey,
		Count:      count,
		Total:      total,
		Timestamp:  time.Now().Unix(),
	}, accountMeta(accountKey))
}

// NewLevelUpEvent creates a level up event
func NewLevelUpEvent(accountKey string, oldLevel, newLevel int) Event {
	return newEvent(LevelUp, domain.LevelUpPayload{
		AccountKey: accountKey,
		OldLevel:   oldLevel,
		NewLevel:   newLevel,
		Timestamp:  time.Now().Unix(),
	}, accountMeta(accountKey))
}

// NewUpgradePurchasedEvent creates an upgrade purchased event
func NewUpgradePurchasedEvent(accountKey string, result *domain.PurchaseResult) Event {
	return newEvent(UpgradePurchased, domain.UpgradePurchasedPayload{
		AccountKey: accountKey,
		Track:      string(result.Track),
		Tier:       result.NewTier,
		Price:      result.Price,
		Timestamp:  time.Now().Unix(),
	}, accountMeta(accountKey))
}

// NewStealAttemptedEvent creates a steal attempted event
func NewStealAttemptedEvent(actorKey string, result *domain.StealResult) Event {
	payload := domain.StealAttemptedPayload{
		ActorKey:  actorKey,
		TargetKey: result.TargetKey,
		Success:   result.Success,
		Chance:    result.Chance,
		Timestamp: time.Now().Unix(),
	}
	if result.Fruit != nil {
		payload.FruitID = result.Fruit.ID
	}
	return newEvent(StealAttempted, payload, accountMeta(actorKey))
}

// NewClaimEvent creates a quest, achievement or daily claim event
func NewClaimEvent(t Type, accountKey, name string, coins, gems, xp int) Event {
	return newEvent(t, domain.ClaimPayload{
		AccountKey: accountKey,
		Name:       name,
		Coins:      coins,
		Gems:       gems,
		XP:         xp,
		Timestamp:  time.Now().Unix(),
	}, accountMeta(accountKey))
}

// NewDailyResetEvent creates a daily reset event
func NewDailyResetEvent(resetTime time.Time, questsCleared int64) Event {
	return newEvent(DailyReset, domain.DailyResetPayload{
		QuestsCleared: questsCleared,
		ResetTime:     resetTime.Unix(),
	}, nil)
}

// NewMarketRotatedEvent creates a market rotated event
func NewMarketRotatedEvent(epoch int64, prices map[string]int) Event {
	return newEvent(MarketRotated, domain.MarketRotatedPayload{
		Epoch:     epoch,
		Prices:    prices,
		Timestamp: time.Now().Unix(),
	}, nil)
}

// NewFruitStormEvent creates a fruit storm event
func NewFruitStormEvent(roll float64) Event {
	return newEvent(FruitStorm, domain.FruitStormPayload{
		Roll:      roll,
		Timestamp: time.Now().Unix(),
	}, nil)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is what services depend on to emit events without blocking
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	// Handlers run synchronously on the publisher's goroutine
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
