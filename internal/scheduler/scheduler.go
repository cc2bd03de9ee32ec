package scheduler

import (
	"sync"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/worker"
)

const logMsgJobSkipped = "Scheduled job skipped, worker queue full"

// Scheduler enqueues jobs on the worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule runs job every interval until Stop. A tick that finds the queue
// full is skipped rather than blocking later ticks.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.schedule(name, interval, job, false)
}

// ScheduleNow is Schedule with an extra run right away
func (s *Scheduler) ScheduleNow(name string, interval time.Duration, job worker.Job) {
	s.schedule(name, interval, job, true)
}

func (s *Scheduler) schedule(name string, interval time.Duration, job worker.Job, immediate bool) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if immediate {
			s.enqueue(name, job)
		}
		for {
			select {
			case <-ticker.C:
				s.enqueue(name, job)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) enqueue(name string, job worker.Job) {
	if !s.workerPool.TryEnqueue(job) {
		logger.Warn(logMsgJobSkipped, "job", name)
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
