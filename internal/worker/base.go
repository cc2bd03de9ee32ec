package worker

import (
	"context"
	"sync"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/logger"
)

// BaseWorker provides the timer and shutdown bookkeeping shared by
// self-scheduling workers
type BaseWorker struct {
	mu           sync.Mutex
	timer        *time.Timer
	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// setTimer replaces the pending timer. It does nothing after shutdown.
func (w *BaseWorker) setTimer(d time.Duration, fn func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped() {
		return false
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(d, fn)
	return true
}

func (w *BaseWorker) stopped() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

// track runs fn in a goroutine that shutdown waits for
func (w *BaseWorker) track(fn func()) {
	w.mu.Lock()
	if w.stopped() {
		w.mu.Unlock()
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()
	go func() {
		defer w.wg.Done()
		fn()
	}()
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	w.shutdownOnce.Do(func() { close(w.shutdown) })
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
