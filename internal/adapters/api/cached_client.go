package api

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/premiertools/planner/internal/adapters/persistence"
	"github.com/premiertools/planner/internal/domain/catalog"
	"github.com/premiertools/planner/internal/infrastructure/ports"
)

// CachedCatalogClient wraps a live catalog client with the local cache.
// Reads prefer a fresh cache, fall through to the API, and fall back to a
// stale cache when the API is unreachable. Only when both sources fail
// does a fetch error propagate, which then fails startup as a unit.
type CachedCatalogClient struct {
	live  ports.CatalogClient
	cache *persistence.GormCatalogCache
	ttl   time.Duration

	// Offline skips the API entirely and serves whatever is cached
	Offline bool
}

// NewCachedCatalogClient creates a caching wrapper around a live client
func NewCachedCatalogClient(live ports.CatalogClient, cache *persistence.GormCatalogCache, ttl time.Duration) *CachedCatalogClient {
	return &CachedCatalogClient{live: live, cache: cache, ttl: ttl}
}

// GetAgents returns the agent catalog per the cache policy
func (c *CachedCatalogClient) GetAgents(ctx context.Context) ([]catalog.Agent, error) {
	cached, syncedAt, found, err := c.cache.LoadAgents(ctx)
	if err != nil {
		return nil, err
	}
	if found && (c.Offline || time.Since(syncedAt) < c.ttl) {
		return cached, nil
	}
	if c.Offline {
		return nil, fmt.Errorf("offline mode with no cached agent catalog")
	}

	agents, liveErr := c.live.GetAgents(ctx)
	if liveErr != nil {
		if found {
			log.Printf("agent catalog fetch failed, using stale cache: %v", liveErr)
			return cached, nil
		}
		return nil, liveErr
	}

	if err := c.cache.SaveAgents(ctx, agents); err != nil {
		log.Printf("failed to cache agent catalog: %v", err)
	}
	return agents, nil
}

// GetMaps returns the map catalog per the cache policy
func (c *CachedCatalogClient) GetMaps(ctx context.Context) ([]catalog.Map, error) {
	cached, syncedAt, found, err := c.cache.LoadMaps(ctx)
	if err != nil {
		return nil, err
	}
	if found && (c.Offline || time.Since(syncedAt) < c.ttl) {
		return cached, nil
	}
	if c.Offline {
		return nil, fmt.Errorf("offline mode with no cached map catalog")
	}

	maps, liveErr := c.live.GetMaps(ctx)
	if liveErr != nil {
		if found {
			log.Printf("map catalog fetch failed, using stale cache: %v", liveErr)
			return cached, nil
		}
		return nil, liveErr
	}

	if err := c.cache.SaveMaps(ctx, maps); err != nil {
		log.Printf("failed to cache map catalog: %v", err)
	}
	return maps, nil
}

// Refresh forces a live fetch of both catalogs and rewrites the cache
func (c *CachedCatalogClient) Refresh(ctx context.Context) (int, int, error) {
	agents, err := c.live.GetAgents(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to refresh agent catalog: %w", err)
	}
	maps, err := c.live.GetMaps(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to refresh map catalog: %w", err)
	}
	if err := c.cache.SaveAgents(ctx, agents); err != nil {
		return 0, 0, err
	}
	if err := c.cache.SaveMaps(ctx, maps); err != nil {
		return 0, 0, err
	}
	return len(agents), len(maps), nil
}
