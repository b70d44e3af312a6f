package bootstrap

import (
	"context"
	"log/slog"
)

// HTTPServer is the part of the server shutdown needs
type HTTPServer interface {
	Stop(ctx context.Context) error
}

// Stopper is implemented by the scheduler and the worker pool
type Stopper interface {
	Stop()
}

// Closer is implemented by the database pool
type Closer interface {
	Close()
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil components are skipped.
type ShutdownComponents struct {
	Server    HTTPServer
	Scheduler Stopper
	Workers   Stopper
	DB        Closer
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests, drain in-flight ones)
// 2. Scheduler (no new background jobs)
// 3. Worker pool (cancel and wait for running jobs)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		c.Scheduler.Stop()
	}

	if c.Workers != nil {
		slog.Info(LogMsgStoppingWorkers)
		c.Workers.Stop()
	}

	if c.DB != nil {
		slog.Info(LogMsgClosingDatabase)
		c.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
