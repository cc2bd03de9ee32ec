package bootstrap

import (
	"log/slog"

	"github.com/punaab/discord-ts-UQkA/internal/config"
	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/quest"
	"github.com/punaab/discord-ts-UQkA/internal/scheduler"
	"github.com/punaab/discord-ts-UQkA/internal/utils"
	"github.com/punaab/discord-ts-UQkA/internal/worker"
)

const (
	jobMarketRotation = "market_rotation"
	jobFruitStorm     = "fruit_storm"

	// jobQueueFactor sizes the pool queue relative to its workers
	jobQueueFactor = 4

	LogMsgJobsStarted = "Background jobs started"
)

// Jobs are the background workers started alongside the API
type Jobs struct {
	Pool       *worker.Pool
	Scheduler  *scheduler.Scheduler
	DailyReset *worker.DailyResetWorker
}

// StartJobs starts the worker pool, the periodic market rotation and fruit
// storm jobs, and the midnight daily quest reset. The market rotates once
// immediately so a restart after a missed window catches up.
func StartJobs(cfg *config.Config, market worker.MarketRotator, quests quest.Service, publisher event.Publisher) *Jobs {
	pool := worker.NewPool(cfg.WorkerCount, max(cfg.WorkerCount, 1)*jobQueueFactor)
	pool.Start()

	sched := scheduler.New(pool)
	sched.ScheduleNow(jobMarketRotation, cfg.MarketRotationInterval, worker.NewMarketRotationJob(market))
	sched.Schedule(jobFruitStorm, cfg.FruitStormInterval,
		worker.NewFruitStormJob(publisher, utils.NewRandom(utils.SecureSeed()), cfg.FruitStormChance))

	daily := worker.NewDailyResetWorker(quests)
	daily.Start()

	slog.Info(LogMsgJobsStarted,
		"workers", cfg.WorkerCount,
		"market_rotation", cfg.MarketRotationInterval,
		"fruit_storm", cfg.FruitStormInterval)

	return &Jobs{Pool: pool, Scheduler: sched, DailyReset: daily}
}
