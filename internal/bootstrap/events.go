package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/punaab/discord-ts-UQkA/internal/config"
	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/metrics"
)

// InitializeEventSystem creates the event bus and the resilient publisher
// that services publish through. Zero config values fall back to the
// defaults, and the dead-letter directory is created if missing.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = config.DefaultEventMaxRetries
	}
	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = config.DefaultEventRetryDelay
	}
	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = config.DefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	publisher, err := event.NewResilientPublisher(bus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return bus, publisher, nil
}

// RegisterEventHandlers subscribes the metrics collector and the announcement
// loggers for the scheduled world events
func RegisterEventHandlers(bus event.Bus) error {
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	bus.Subscribe(event.FruitStorm, func(ctx context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[domain.FruitStormPayload](evt.Payload)
		if err != nil {
			return err
		}
		logger.FromContext(ctx).Info(LogMsgFruitStormAnnounced, "roll", payload.Roll)
		return nil
	})
	bus.Subscribe(event.MarketRotated, func(ctx context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[domain.MarketRotatedPayload](evt.Payload)
		if err != nil {
			return err
		}
		logger.FromContext(ctx).Info(LogMsgMarketRotatedAnnounced, "epoch", payload.Epoch)
		return nil
	})
	return nil
}
