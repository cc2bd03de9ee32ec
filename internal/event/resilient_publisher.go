package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/logger"
)

type retryEntry struct {
	event     Event
	attempt   int
	lastError error
}

// ResilientPublisher wraps a Bus with an asynchronous retry queue. Events
// that still fail after maxRetries attempts are appended to a dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()
	return rp, nil
}

// PublishWithRetry publishes once synchronously and queues a retry on failure.
// It never returns an error; callers should not fail a game action because
// an event could not be delivered.
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := rp.bus.Publish(ctx, evt)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	log.Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)

	select {
	case <-rp.shutdown:
		log.Warn(LogMsgEventDroppedShutdown, "event_type", evt.Type)
		rp.writeDeadLetter(evt, 1, err)
		return
	default:
	}

	select {
	case rp.retryQueue <- retryEntry{event: evt, attempt: 1, lastError: err}:
	default:
		log.Error(LogMsgRetryQueueFull, "event_type", evt.Type)
		rp.writeDeadLetter(evt, 1, err)
	}
}

// Publish satisfies Bus so the publisher can stand in for the bus it wraps
func (rp *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	rp.PublishWithRetry(ctx, evt)
	return nil
}

// Subscribe delegates to the inner bus
func (rp *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	rp.bus.Subscribe(eventType, handler)
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()
	for {
		select {
		case entry := <-rp.retryQueue:
			rp.retry(entry)
		case <-rp.shutdown:
			rp.drain()
			return
		}
	}
}

// retry re-publishes entry with exponential backoff until it succeeds or
// runs out of attempts
func (rp *ResilientPublisher) retry(entry retryEntry) {
	log := logger.FromContext(context.Background())
	for entry.attempt <= rp.maxRetries {
		select {
		case <-time.After(CalculateRetryDelay(rp.retryDelay, entry.attempt)):
		case <-rp.shutdown:
		}

		err := rp.bus.Publish(context.Background(), entry.event)
		if err == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempt)
			return
		}
		entry.lastError = err
		entry.attempt++
		log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempt, "error", err)
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempt)
	rp.writeDeadLetter(entry.event, entry.attempt, entry.lastError)
}

func (rp *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-rp.retryQueue:
			if err := rp.bus.Publish(context.Background(), entry.event); err != nil {
				rp.writeDeadLetter(entry.event, entry.attempt+1, err)
			}
			drained++
		default:
			if drained > 0 {
				logger.FromContext(context.Background()).Info(LogMsgQueueDrainedShutdown, "events", drained)
			}
			return
		}
	}
}

func (rp *ResilientPublisher) writeDeadLetter(evt Event, attempts int, lastErr error) {
	if rp.deadLetter == nil {
		return
	}
	if err := rp.deadLetter.Write(evt, attempts, lastErr); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed, "event_type", evt.Type, "error", err)
	}
}

// Shutdown stops the retry worker after draining queued events
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	rp.shutdownOnce.Do(func() { close(rp.shutdown) })

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if rp.deadLetter != nil {
			return rp.deadLetter.Close()
		}
		return nil
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return errors.Join(ctx.Err(), errShutdownTimeout)
	}
}

var errShutdownTimeout = errors.New("resilient publisher shutdown timed out")
