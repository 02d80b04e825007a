package composition

import "github.com/premiertools/planner/internal/domain/catalog"

// AvailableAgents returns the agents from a player's pool in presentation
// order: role category order, alphabetical within a role, and the currently
// selected agent (if any) moved to the front.
func AvailableAgents(pool []string, all []catalog.Agent, selectedID string) []catalog.Agent {
	inPool := make(map[string]bool, len(pool))
	for _, id := range pool {
		inPool[id] = true
	}

	agents := make([]catalog.Agent, 0, len(pool))
	for _, a := range all {
		if inPool[a.ID] {
			agents = append(agents, a)
		}
	}
	catalog.SortAgents(agents)

	if selectedID != "" {
		for i, a := range agents {
			if a.ID == selectedID {
				copy(agents[1:i+1], agents[:i])
				agents[0] = a
				break
			}
		}
	}
	return agents
}
