package catalog

import (
	"sort"
	"strings"
)

// roleRanks defines the fixed presentation order for role categories.
// Uncategorized roles sort after all known ones.
var roleRanks = map[string]int{
	"Duelist":    0,
	"Initiator":  1,
	"Controller": 2,
	"Sentinel":   3,
}

// RoleRank returns the sort rank of a role name. Unknown roles rank last.
func RoleRank(roleName string) int {
	if rank, ok := roleRanks[roleName]; ok {
		return rank
	}
	return len(roleRanks)
}

// DefaultSchedule returns the fixed act rotation used to pick the default
// active map set and the default map ordering.
func DefaultSchedule() []string {
	return []string{"Split", "Pearl", "Abyss", "Corrode", "Haven", "Breeze", "Bind"}
}

// SortAgents orders agents by role category first (Duelist, Initiator,
// Controller, Sentinel, then anything else) and alphabetically within a role.
func SortAgents(agents []Agent) {
	sort.SliceStable(agents, func(i, j int) bool {
		ri, rj := RoleRank(agents[i].Role.Name), RoleRank(agents[j].Role.Name)
		if ri != rj {
			return ri < rj
		}
		return agents[i].Name < agents[j].Name
	})
}

// SortMaps orders maps so that schedule-listed maps come first in schedule
// order, followed by unlisted maps alphabetically. Name matching is
// case-insensitive.
func SortMaps(maps []Map, schedule []string) {
	position := make(map[string]int, len(schedule))
	for i, name := range schedule {
		position[strings.ToLower(name)] = i
	}

	rank := func(m Map) int {
		if pos, ok := position[strings.ToLower(m.Name)]; ok {
			return pos
		}
		return len(schedule)
	}

	sort.SliceStable(maps, func(i, j int) bool {
		ri, rj := rank(maps[i]), rank(maps[j])
		if ri != rj {
			return ri < rj
		}
		return maps[i].Name < maps[j].Name
	})
}
