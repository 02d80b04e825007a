package rotation

import (
	"strings"

	"github.com/premiertools/planner/internal/domain/catalog"
)

// Rotation is the set of map ids currently in the competitive rotation.
// Insertion order is preserved for stable presentation.
type Rotation struct {
	ids []string
}

// New creates a rotation holding the given ids
func New(ids []string) *Rotation {
	r := &Rotation{}
	for _, id := range ids {
		if !r.Contains(id) {
			r.ids = append(r.ids, id)
		}
	}
	return r
}

// Contains reports whether the map is active
func (r *Rotation) Contains(mapID string) bool {
	for _, id := range r.ids {
		if id == mapID {
			return true
		}
	}
	return false
}

// Toggle flips a map's membership and reports whether it is now active.
// The set may grow to any size and may be emptied entirely.
func (r *Rotation) Toggle(mapID string) bool {
	for i, id := range r.ids {
		if id == mapID {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			return false
		}
	}
	r.ids = append(r.ids, mapID)
	return true
}

// Active returns the active map ids in insertion order
func (r *Rotation) Active() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Len returns the number of active maps
func (r *Rotation) Len() int {
	return len(r.ids)
}

// Prune drops ids not present in the known set, keeping the rotation a
// subset of the catalog.
func (r *Rotation) Prune(known map[string]bool) {
	kept := r.ids[:0]
	for _, id := range r.ids {
		if known[id] {
			kept = append(kept, id)
		}
	}
	r.ids = kept
}

// DefaultActive returns the catalog map ids whose display name matches a
// schedule entry, case-insensitively. When the schedule matches nothing
// (names drifted from the catalog), the entire catalog is active.
func DefaultActive(maps []catalog.Map, scheduleNames []string) []string {
	listed := make(map[string]bool, len(scheduleNames))
	for _, name := range scheduleNames {
		listed[strings.ToLower(name)] = true
	}

	var ids []string
	for _, m := range maps {
		if listed[strings.ToLower(m.Name)] {
			ids = append(ids, m.ID)
		}
	}
	if len(ids) > 0 {
		return ids
	}

	ids = make([]string, len(maps))
	for i, m := range maps {
		ids[i] = m.ID
	}
	return ids
}
