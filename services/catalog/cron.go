package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StartRefreshCron periodically refreshes the catalog snapshot in the
// background so most turns are served without waiting on the collaborator.
func StartRefreshCron(ctx context.Context, cache *Cache, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("catalog refresh cron shutdown signal received")
			return
		case <-ticker.C:
			if err := cache.Refresh(ctx); err != nil {
				logger.Warn("scheduled catalog refresh failed", zap.Error(err))
			}
		}
	}
}
