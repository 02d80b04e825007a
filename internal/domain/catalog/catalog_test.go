package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/premiertools/planner/internal/domain/catalog"
)

func TestSortAgents_RoleOrderThenName(t *testing.T) {
	agents := []catalog.Agent{
		{ID: "a1", Name: "Viper", Role: catalog.Role{Name: "Controller"}},
		{ID: "a2", Name: "Sage", Role: catalog.Role{Name: "Sentinel"}},
		{ID: "a3", Name: "Jett", Role: catalog.Role{Name: "Duelist"}},
		{ID: "a4", Name: "Brimstone", Role: catalog.Role{Name: "Controller"}},
		{ID: "a5", Name: "Sova", Role: catalog.Role{Name: "Initiator"}},
		{ID: "a6", Name: "Phoenix", Role: catalog.Role{Name: "Duelist"}},
	}

	catalog.SortAgents(agents)

	names := make([]string, len(agents))
	for i, a := range agents {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"Jett", "Phoenix", "Sova", "Brimstone", "Viper", "Sage"}, names)
}

func TestSortAgents_UnknownRoleSortsLast(t *testing.T) {
	agents := []catalog.Agent{
		{ID: "a1", Name: "Aaa", Role: catalog.Role{Name: "Flex"}},
		{ID: "a2", Name: "Sage", Role: catalog.Role{Name: "Sentinel"}},
	}

	catalog.SortAgents(agents)

	assert.Equal(t, "Sage", agents[0].Name)
	assert.Equal(t, "Aaa", agents[1].Name)
}

func TestSortMaps_ScheduleFirstThenAlphabetical(t *testing.T) {
	maps := []catalog.Map{
		{ID: "m1", Name: "Ascent"},
		{ID: "m2", Name: "Haven"},
		{ID: "m3", Name: "Split"},
		{ID: "m4", Name: "Icebox"},
		{ID: "m5", Name: "Pearl"},
	}

	catalog.SortMaps(maps, []string{"Split", "Pearl", "Haven"})

	names := make([]string, len(maps))
	for i, m := range maps {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"Split", "Pearl", "Haven", "Ascent", "Icebox"}, names)
}

func TestSortMaps_CaseInsensitive(t *testing.T) {
	maps := []catalog.Map{
		{ID: "m1", Name: "ascent"},
		{ID: "m2", Name: "HAVEN"},
	}

	catalog.SortMaps(maps, []string{"Haven"})

	assert.Equal(t, "HAVEN", maps[0].Name)
}
