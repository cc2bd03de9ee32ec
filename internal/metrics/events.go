package metrics

import (
	"context"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every game event type
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics. Payloads that fail to
// decode are counted as handler errors but never fail the publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record(evt event.Event) error {
	switch evt.Type {
	case event.FruitPicked:
		p, err := event.DecodePayload[domain.FruitPickedPayload](evt.Payload)
		if err != nil {
			return err
		}
		for rarity, n := range p.ByRarity {
			FruitsPicked.WithLabelValues(rarity).Add(float64(n))
		}

	case event.FruitSold:
		p, err := event.DecodePayload[domain.FruitSoldPayload](evt.Payload)
		if err != nil {
			return err
		}
		FruitsSold.Add(float64(p.Count))
		CoinsEarned.Add(float64(p.Total))

	case event.LevelUp:
		p, err := event.DecodePayload[domain.LevelUpPayload](evt.Payload)
		if err != nil {
			return err
		}
		if p.NewLevel > p.OldLevel {
			LevelUps.Add(float64(p.NewLevel - p.OldLevel))
		}

	case event.UpgradePurchased:
		p, err := event.DecodePayload[domain.UpgradePurchasedPayload](evt.Payload)
		if err != nil {
			return err
		}
		UpgradesPurchased.WithLabelValues(p.Track).Inc()

	case event.StealAttempted:
		p, err := event.DecodePayload[domain.StealAttemptedPayload](evt.Payload)
		if err != nil {
			return err
		}
		outcome := OutcomeFailure
		if p.Success {
			outcome = OutcomeSuccess
		}
		StealAttempts.WithLabelValues(outcome).Inc()

	case event.QuestClaimed, event.AchievementClaimed, event.DailyClaimed:
		RewardsClaimed.WithLabelValues(string(evt.Type)).Inc()

	case event.DailyReset:
		p, err := event.DecodePayload[domain.DailyResetPayload](evt.Payload)
		if err != nil {
			return err
		}
		QuestsCleared.Add(float64(p.QuestsCleared))

	case event.MarketRotated:
		p, err := event.DecodePayload[domain.MarketRotatedPayload](evt.Payload)
		if err != nil {
			return err
		}
		MarketEpoch.Set(float64(p.Epoch))

	case event.FruitStorm:
		FruitStorms.Inc()
	}
	return nil
}
