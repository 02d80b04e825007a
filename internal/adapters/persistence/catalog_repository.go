package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/premiertools/planner/internal/domain/catalog"
)

const (
	syncKindAgents = "agents"
	syncKindMaps   = "maps"
)

// GormCatalogCache stores fetched agent and map catalogs so the planner
// can start without a network round-trip, or entirely offline.
type GormCatalogCache struct {
	db *gorm.DB
}

// NewGormCatalogCache creates a new GORM catalog cache
func NewGormCatalogCache(db *gorm.DB) *GormCatalogCache {
	return &GormCatalogCache{db: db}
}

// SaveAgents replaces the cached agent catalog
func (c *GormCatalogCache) SaveAgents(ctx context.Context, agents []catalog.Agent) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&CatalogAgentModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear agent cache: %w", err)
		}
		for i, a := range agents {
			model := CatalogAgentModel{
				ID:       a.ID,
				Name:     a.Name,
				Icon:     a.Icon,
				RoleName: a.Role.Name,
				RoleIcon: a.Role.Icon,
				Position: i,
			}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to cache agent %s: %w", a.ID, err)
			}
		}
		return c.touchSync(tx, syncKindAgents)
	})
}

// LoadAgents returns the cached agent catalog in its original order,
// with the time it was last synced. found=false means no cache yet.
func (c *GormCatalogCache) LoadAgents(ctx context.Context) ([]catalog.Agent, time.Time, bool, error) {
	syncedAt, found, err := c.syncedAt(ctx, syncKindAgents)
	if err != nil || !found {
		return nil, time.Time{}, false, err
	}

	var models []CatalogAgentModel
	if err := c.db.WithContext(ctx).Order("position").Find(&models).Error; err != nil {
		return nil, time.Time{}, false, fmt.Errorf("failed to load agent cache: %w", err)
	}

	agents := make([]catalog.Agent, len(models))
	for i, m := range models {
		agents[i] = catalog.Agent{
			ID:   m.ID,
			Name: m.Name,
			Icon: m.Icon,
			Role: catalog.Role{Name: m.RoleName, Icon: m.RoleIcon},
		}
	}
	return agents, syncedAt, true, nil
}

// SaveMaps replaces the cached map catalog
func (c *GormCatalogCache) SaveMaps(ctx context.Context, maps []catalog.Map) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&CatalogMapModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear map cache: %w", err)
		}
		for i, m := range maps {
			model := CatalogMapModel{ID: m.ID, Name: m.Name, Splash: m.Splash, Position: i}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to cache map %s: %w", m.ID, err)
			}
		}
		return c.touchSync(tx, syncKindMaps)
	})
}

// LoadMaps returns the cached map catalog in its original order
func (c *GormCatalogCache) LoadMaps(ctx context.Context) ([]catalog.Map, time.Time, bool, error) {
	syncedAt, found, err := c.syncedAt(ctx, syncKindMaps)
	if err != nil || !found {
		return nil, time.Time{}, false, err
	}

	var models []CatalogMapModel
	if err := c.db.WithContext(ctx).Order("position").Find(&models).Error; err != nil {
		return nil, time.Time{}, false, fmt.Errorf("failed to load map cache: %w", err)
	}

	maps := make([]catalog.Map, len(models))
	for i, m := range models {
		maps[i] = catalog.Map{ID: m.ID, Name: m.Name, Splash: m.Splash}
	}
	return maps, syncedAt, true, nil
}

func (c *GormCatalogCache) touchSync(tx *gorm.DB, kind string) error {
	var existing CatalogSyncModel
	err := tx.Where("kind = ?", kind).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.Create(&CatalogSyncModel{Kind: kind, SyncedAt: time.Now().UTC()}).Error; err != nil {
			return fmt.Errorf("failed to record %s sync: %w", kind, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s sync: %w", kind, err)
	}
	if err := tx.Model(&existing).Update("synced_at", time.Now().UTC()).Error; err != nil {
		return fmt.Errorf("failed to update %s sync: %w", kind, err)
	}
	return nil
}

func (c *GormCatalogCache) syncedAt(ctx context.Context, kind string) (time.Time, bool, error) {
	var sync CatalogSyncModel
	err := c.db.WithContext(ctx).Where("kind = ?", kind).First(&sync).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read %s sync: %w", kind, err)
	}
	return sync.SyncedAt, true, nil
}
