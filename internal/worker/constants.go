package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Daily Reset Worker
// ============================================================================

// Log messages for daily reset worker operations
const (
	LogMsgDailyResetStarting  = "Daily reset starting"
	LogMsgDailyResetCompleted = "Daily reset completed"
	LogMsgDailyResetFailed    = "Daily reset failed"
	LogMsgDailyResetStandby   = "Daily reset standby"
	LogMsgDailyResetApproach  = "Daily reset scheduled"
)

// ============================================================================
// Log Messages - Periodic Jobs
// ============================================================================

const (
	LogMsgMarketRotated    = "Market rotated"
	LogMsgMarketUnchanged  = "Market epoch unchanged"
	LogMsgFruitStorm       = "Fruit storm started"
	LogMsgFruitStormMissed = "Fruit storm roll missed"
)

// Daily reset scheduling
const (
	// resetStandbyThreshold switches from standby to the final timer
	resetStandbyThreshold = time.Hour
	// resetWakeLead is how far ahead of the reset the standby timer fires
	resetWakeLead = 45 * time.Minute
	// resetJitterTolerance absorbs timers that fire slightly early
	resetJitterTolerance = 10 * time.Second
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
