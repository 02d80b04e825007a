package composition

import (
	"fmt"

	"github.com/premiertools/planner/internal/domain/catalog"
)

// SlotCount is the number of positions in a map composition
const SlotCount = 5

// Slot assigns a player and an agent to one position. Either side may be
// empty.
type Slot struct {
	PlayerID string
	AgentID  string
}

// IsEmpty reports whether the slot has neither a player nor an agent
func (s Slot) IsEmpty() bool {
	return s.PlayerID == "" && s.AgentID == ""
}

// Composition is the five ordered slots planned for one map
type Composition struct {
	MapID string
	Slots [SlotCount]Slot
}

// Board holds the compositions for every planned map, in catalog order
type Board struct {
	comps []Composition
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// SeedDefaults pre-populates a composition for every map id with the given
// starters in position order and no agent assigned. Existing entries are
// discarded.
func (b *Board) SeedDefaults(mapIDs, starterIDs []string) {
	b.comps = make([]Composition, 0, len(mapIDs))
	for _, mapID := range mapIDs {
		b.comps = append(b.comps, defaultComposition(mapID, starterIDs))
	}
}

func defaultComposition(mapID string, starterIDs []string) Composition {
	c := Composition{MapID: mapID}
	for i := 0; i < SlotCount && i < len(starterIDs); i++ {
		c.Slots[i] = Slot{PlayerID: starterIDs[i]}
	}
	return c
}

func (b *Board) find(mapID string) *Composition {
	for i := range b.comps {
		if b.comps[i].MapID == mapID {
			return &b.comps[i]
		}
	}
	return nil
}

// Has reports whether a composition is recorded for the map
func (b *Board) Has(mapID string) bool {
	return b.find(mapID) != nil
}

// Slots returns the five slots for a map. Maps without a recorded
// composition yield five empty slots; reading never creates a record.
func (b *Board) Slots(mapID string) [SlotCount]Slot {
	if c := b.find(mapID); c != nil {
		return c.Slots
	}
	return [SlotCount]Slot{}
}

// UpdateSlot overwrites the slot at index for the map, creating the
// composition lazily with empty slots in the other positions.
func (b *Board) UpdateSlot(mapID string, index int, playerID, agentID string) error {
	if index < 0 || index >= SlotCount {
		return fmt.Errorf("slot index %d out of range [0,%d)", index, SlotCount)
	}
	c := b.find(mapID)
	if c == nil {
		b.comps = append(b.comps, Composition{MapID: mapID})
		c = &b.comps[len(b.comps)-1]
	}
	c.Slots[index] = Slot{PlayerID: playerID, AgentID: agentID}
	return nil
}

// ClearAgent removes the agent from every slot across all maps that pairs
// the given player with the given agent. Returns how many slots were
// cleared. This is the cascade behind pool removal: a slot may never
// reference an agent outside its player's pool.
func (b *Board) ClearAgent(playerID, agentID string) int {
	cleared := 0
	for i := range b.comps {
		for j := range b.comps[i].Slots {
			s := &b.comps[i].Slots[j]
			if s.PlayerID == playerID && s.AgentID == agentID {
				s.AgentID = ""
				cleared++
			}
		}
	}
	return cleared
}

// DuplicateAgents returns the agent ids assigned to more than one slot on
// the same map. Duplicates are a diagnostic, not an error.
func (b *Board) DuplicateAgents(mapID string) map[string]bool {
	counts := make(map[string]int)
	for _, s := range b.Slots(mapID) {
		if s.AgentID != "" {
			counts[s.AgentID]++
		}
	}
	dupes := make(map[string]bool)
	for id, n := range counts {
		if n > 1 {
			dupes[id] = true
		}
	}
	return dupes
}

// RoleCounts tallies how many of a map's slots resolve to an agent of each
// role category. Slots without an agent, or with an agent missing from the
// index, are not counted.
func (b *Board) RoleCounts(mapID string, agents map[string]catalog.Agent) map[string]int {
	counts := make(map[string]int)
	for _, s := range b.Slots(mapID) {
		if s.AgentID == "" {
			continue
		}
		if a, ok := agents[s.AgentID]; ok {
			counts[a.Role.Name]++
		}
	}
	return counts
}

// MergeWithCatalog reconciles the board against the authoritative catalog:
// compositions are reordered to catalog order, maps missing a composition
// get a defaulted one, and compositions for maps no longer in the catalog
// are dropped.
func (b *Board) MergeWithCatalog(mapIDs, starterIDs []string) {
	merged := make([]Composition, 0, len(mapIDs))
	for _, mapID := range mapIDs {
		if c := b.find(mapID); c != nil {
			merged = append(merged, *c)
		} else {
			merged = append(merged, defaultComposition(mapID, starterIDs))
		}
	}
	b.comps = merged
}

// Compositions returns a copy of every recorded composition in order
func (b *Board) Compositions() []Composition {
	out := make([]Composition, len(b.comps))
	copy(out, b.comps)
	return out
}

// Replace swaps the board contents with the given compositions
func (b *Board) Replace(comps []Composition) {
	b.comps = make([]Composition, len(comps))
	copy(b.comps, comps)
}
