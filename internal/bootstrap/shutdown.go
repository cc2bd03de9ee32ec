package bootstrap

import (
	"context"
	"log/slog"

	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server             *server.Server
	Jobs               *Jobs
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
}

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting new requests)
// 2. Background jobs (cancel timers, wait for running jobs)
// 3. Event publisher (flush pending events)
// 4. Storage
//
// Errors are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Jobs != nil {
		slog.Info(LogMsgShuttingDownJobs)
		c.Jobs.Scheduler.Stop()
		if err := c.Jobs.DailyReset.Shutdown(ctx); err != nil {
			slog.Error(LogMsgDailyResetShutdownFailed, "error", err)
		}
		c.Jobs.Pool.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Storage != nil {
		c.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
