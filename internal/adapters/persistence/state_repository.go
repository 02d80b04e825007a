package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/premiertools/planner/internal/domain/plan"
)

// Stable slot names. Renaming any of these would orphan previously saved
// state, so treat them as part of the storage format.
const (
	SlotTeamName   = "team_name"
	SlotRosterMain = "roster_main"
	SlotRosterSubs = "roster_subs"
	SlotMapComps   = "map_comps"
	SlotActiveMaps = "active_maps"
)

// GormStateRepository implements plan.StateRepository using GORM
type GormStateRepository struct {
	db *gorm.DB
}

// NewGormStateRepository creates a new GORM state repository
func NewGormStateRepository(db *gorm.DB) *GormStateRepository {
	return &GormStateRepository{db: db}
}

// LoadState reads every slot that exists into a partial snapshot. A
// completely empty table means no prior state: found=false, no error.
func (r *GormStateRepository) LoadState(ctx context.Context) (plan.Snapshot, bool, error) {
	var models []StateSlotModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return plan.Snapshot{}, false, fmt.Errorf("failed to load state slots: %w", err)
	}
	if len(models) == 0 {
		return plan.Snapshot{}, false, nil
	}

	var snap plan.Snapshot
	for _, m := range models {
		var err error
		switch m.Key {
		case SlotTeamName:
			err = unmarshalSlot(m, &snap.TeamName)
		case SlotRosterMain:
			err = unmarshalSlot(m, &snap.MainRoster)
		case SlotRosterSubs:
			err = unmarshalSlot(m, &snap.SubRoster)
		case SlotMapComps:
			err = unmarshalSlot(m, &snap.MapComps)
		case SlotActiveMaps:
			err = unmarshalSlot(m, &snap.ActiveMapIDs)
		}
		if err != nil {
			return plan.Snapshot{}, false, err
		}
	}
	return snap, true, nil
}

func unmarshalSlot[T any](m StateSlotModel, target **T) error {
	var v T
	if err := json.Unmarshal([]byte(m.Value), &v); err != nil {
		return fmt.Errorf("corrupt state slot %q: %w", m.Key, err)
	}
	*target = &v
	return nil
}

// SaveState writes all five slots in one transaction so a snapshot is
// stored or skipped as a whole.
func (r *GormStateRepository) SaveState(ctx context.Context, s plan.Snapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slots := []struct {
			key   string
			value interface{}
		}{
			{SlotTeamName, s.TeamName},
			{SlotRosterMain, s.MainRoster},
			{SlotRosterSubs, s.SubRoster},
			{SlotMapComps, s.MapComps},
			{SlotActiveMaps, s.ActiveMapIDs},
		}
		for _, slot := range slots {
			if isNilPointer(slot.value) {
				continue
			}
			data, err := json.Marshal(slot.value)
			if err != nil {
				return fmt.Errorf("failed to marshal slot %q: %w", slot.key, err)
			}
			if err := upsertSlot(tx, slot.key, string(data)); err != nil {
				return err
			}
		}
		return nil
	})
}

func isNilPointer(v interface{}) bool {
	switch p := v.(type) {
	case *string:
		return p == nil
	case *[]plan.PlayerDTO:
		return p == nil
	case *[]plan.MapCompDTO:
		return p == nil
	case *[]string:
		return p == nil
	}
	return v == nil
}

func upsertSlot(tx *gorm.DB, key, value string) error {
	var existing StateSlotModel
	err := tx.Where("key = ?", key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.Create(&StateSlotModel{Key: key, Value: value}).Error; err != nil {
			return fmt.Errorf("failed to create slot %q: %w", key, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	if err := tx.Model(&existing).Update("value", value).Error; err != nil {
		return fmt.Errorf("failed to update slot %q: %w", key, err)
	}
	return nil
}
