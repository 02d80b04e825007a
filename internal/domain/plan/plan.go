package plan

import (
	"github.com/premiertools/planner/internal/domain/catalog"
	"github.com/premiertools/planner/internal/domain/composition"
	"github.com/premiertools/planner/internal/domain/roster"
	"github.com/premiertools/planner/internal/domain/rotation"
)

// DefaultTeamName is used until the organizer picks a name
const DefaultTeamName = "MY TEAM"

// Plan is the canonical planning state: team name, roster, per-map
// compositions and the active rotation. It is the single owner of these
// pieces; the persistence layer only ever sees serialized snapshots.
type Plan struct {
	TeamName string
	Roster   *roster.Roster
	Board    *composition.Board
	Rotation *rotation.Rotation
}

// New creates a default plan for the given catalog maps: five named
// starters, every map pre-populated with the starters in order, and the
// schedule-derived default rotation.
func New(maps []catalog.Map) *Plan {
	p := &Plan{
		TeamName: DefaultTeamName,
		Roster:   roster.New(),
		Board:    composition.NewBoard(),
		Rotation: rotation.New(rotation.DefaultActive(maps, catalog.DefaultSchedule())),
	}
	p.Board.SeedDefaults(mapIDs(maps), p.Roster.StarterIDs())
	return p
}

func mapIDs(maps []catalog.Map) []string {
	ids := make([]string, len(maps))
	for i, m := range maps {
		ids[i] = m.ID
	}
	return ids
}

// TogglePool flips an agent in a player's pool and, on removal, clears
// every composition slot across all maps referencing that (player, agent)
// pair. Returns (removed, clearedSlots, playerFound).
func (p *Plan) TogglePool(playerID, agentID string) (bool, int, bool) {
	removed, found := p.Roster.TogglePool(playerID, agentID)
	if !found {
		return false, 0, false
	}
	if !removed {
		return false, 0, true
	}
	return true, p.Board.ClearAgent(playerID, agentID), true
}

// Reconcile applies the catalog as the source of truth for which maps
// exist: the board gains defaults for new maps, loses orphans, and the
// rotation is trimmed to known ids.
func (p *Plan) Reconcile(maps []catalog.Map) {
	ids := mapIDs(maps)
	p.Board.MergeWithCatalog(ids, p.Roster.StarterIDs())

	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	p.Rotation.Prune(known)
}
