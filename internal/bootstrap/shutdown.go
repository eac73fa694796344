package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SaleBadge_Go/internal/database"
)

// Stopper is anything that drains in-flight work on shutdown
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server Stopper
	DBPool database.Pool
	Cache  interface{ Purge() }
}

// GracefulShutdown stops the HTTP server first so no request can touch the
// store, then releases the store. Errors are logged and do not stop the
// sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Cache != nil {
		components.Cache.Purge()
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
