package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"brewflow/models"

	"go.uber.org/zap"
)

// Cache holds the current menu snapshot. Refresh swaps in a complete new
// snapshot atomically; readers never observe a partially-updated catalog.
type Cache struct {
	Provider Provider
	TTL      time.Duration
	Timeout  time.Duration
	Logger   *zap.Logger

	mu        sync.RWMutex
	items     []models.CatalogItem
	fetchedAt time.Time

	// refreshMu serializes refreshes so the provider sees one fetch at a time.
	refreshMu sync.Mutex
}

// NewCache returns a cache around the given provider.
func NewCache(provider Provider, ttl, timeout time.Duration, logger *zap.Logger) *Cache {
	return &Cache{
		Provider: provider,
		TTL:      ttl,
		Timeout:  timeout,
		Logger:   logger,
	}
}

// Snapshot returns the current catalog, refreshing first when the snapshot
// is stale or missing. When a refresh fails but an older snapshot exists,
// the stale snapshot is served rather than failing the turn.
func (c *Cache) Snapshot(ctx context.Context) ([]models.CatalogItem, error) {
	c.mu.RLock()
	items, fetchedAt := c.items, c.fetchedAt
	c.mu.RUnlock()

	if items != nil && time.Since(fetchedAt) < c.TTL {
		return items, nil
	}

	if err := c.Refresh(ctx); err != nil {
		if items != nil {
			c.Logger.Warn("catalog refresh failed, serving stale snapshot", zap.Error(err))
			return items, nil
		}
		return nil, fmt.Errorf("catalog unavailable: %w", err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items, nil
}

// Refresh fetches a fresh catalog and swaps it in wholesale.
func (c *Cache) Refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	c.mu.RLock()
	fresh := c.items != nil && time.Since(c.fetchedAt) < c.TTL
	c.mu.RUnlock()
	if fresh {
		return nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	items, err := c.Provider.FetchCatalog(fetchCtx)
	if err != nil {
		return fmt.Errorf("failed to fetch catalog: %w", err)
	}

	c.mu.Lock()
	c.items = items
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	c.Logger.Info("catalog snapshot refreshed", zap.Int("items", len(items)))
	return nil
}

// FetchedAt reports when the current snapshot was taken.
func (c *Cache) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}
