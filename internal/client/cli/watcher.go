package cli

import (
	"context"
	"time"
)

const pingTimeout = 3 * time.Second

// StartOnlineStatusWatcher probes the server every interval and flips the
// app between online and offline mode. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	if a.probe == nil {
		return
	}

	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.probe.Ping(pctx)
	cancel()

	if err != nil {
		a.logger.Debug(ctx, "health check failed", "err", err)
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}
