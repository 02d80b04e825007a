package persistence

import "time"

// StateSlotModel represents the state_slots table: one durable named slot
// per top-level piece of planner state, holding its JSON form.
type StateSlotModel struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (StateSlotModel) TableName() string {
	return "state_slots"
}

// CatalogAgentModel represents the catalog_agents cache table
type CatalogAgentModel struct {
	ID       string `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name;not null"`
	Icon     string `gorm:"column:icon"`
	RoleName string `gorm:"column:role_name"`
	RoleIcon string `gorm:"column:role_icon"`
	Position int    `gorm:"column:position;not null"` // preserves API order
}

func (CatalogAgentModel) TableName() string {
	return "catalog_agents"
}

// CatalogMapModel represents the catalog_maps cache table
type CatalogMapModel struct {
	ID       string `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name;not null"`
	Splash   string `gorm:"column:splash"`
	Position int    `gorm:"column:position;not null"`
}

func (CatalogMapModel) TableName() string {
	return "catalog_maps"
}

// CatalogSyncModel records when each catalog kind was last refreshed
type CatalogSyncModel struct {
	Kind     string    `gorm:"column:kind;primaryKey"` // "agents" or "maps"
	SyncedAt time.Time `gorm:"column:synced_at;not null"`
}

func (CatalogSyncModel) TableName() string {
	return "catalog_sync"
}
