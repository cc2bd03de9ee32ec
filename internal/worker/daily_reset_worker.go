package worker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/punaab/discord-ts-UQkA/internal/logger"
)

// DailyQuestResetter clears daily quests that started before a boundary
type DailyQuestResetter interface {
	ResetDailyQuests(ctx context.Context, boundary time.Time) (int64, error)
}

// DailyResetWorker clears stale daily quests at 00:00 UTC every day
type DailyResetWorker struct {
	BaseWorker
	resetter DailyQuestResetter
	now      func() time.Time
}

// NewDailyResetWorker creates a new DailyResetWorker
func NewDailyResetWorker(resetter DailyQuestResetter) *DailyResetWorker {
	w := &DailyResetWorker{
		resetter: resetter,
		now:      func() time.Time { return time.Now().UTC() },
	}
	w.init()
	return w
}

// Start schedules the first reset
func (w *DailyResetWorker) Start() {
	w.scheduleNext()
}

// scheduleNext waits in two stages so a long timer that drifts cannot make
// the reset fire far from midnight
func (w *DailyResetWorker) scheduleNext() {
	log := logger.FromContext(context.Background())
	duration := timeUntilNextReset(w.now())

	if duration > resetStandbyThreshold {
		wait := duration - resetWakeLead
		if w.setTimer(wait, w.scheduleNext) {
			log.Info(LogMsgDailyResetStandby, "next_check_at", w.now().Add(wait))
		}
		return
	}

	ok := w.setTimer(duration, func() {
		// Fired early: reschedule for the remainder
		rem := timeUntilNextReset(w.now())
		if rem > resetJitterTolerance && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}
		w.track(func() { w.RunReset(context.Background()) })
		w.scheduleNext()
	})
	if ok {
		log.Info(LogMsgDailyResetApproach, "next_reset_at", w.now().Add(duration))
	}
}

// RunReset clears daily quests started before the most recent midnight
func (w *DailyResetWorker) RunReset(ctx context.Context) (int64, error) {
	runID := uuid.NewString()
	log := logger.FromContext(ctx).With("run_id", runID)
	boundary := lastReset(w.now())
	log.Info(LogMsgDailyResetStarting, "boundary", boundary)

	cleared, err := w.resetter.ResetDailyQuests(ctx, boundary)
	if err != nil {
		log.Error(LogMsgDailyResetFailed, "error", err)
		return 0, err
	}
	log.Info(LogMsgDailyResetCompleted, "cleared", cleared)
	return cleared, nil
}

// Shutdown cancels the pending timer and waits for a running reset
func (w *DailyResetWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, "daily reset worker")
}

// lastReset is the most recent 00:00 UTC at or before now
func lastReset(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// timeUntilNextReset is the duration until the next 00:00 UTC strictly after now
func timeUntilNextReset(now time.Time) time.Duration {
	return lastReset(now).AddDate(0, 0, 1).Sub(now)
}
