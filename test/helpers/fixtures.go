package helpers

import "github.com/premiertools/planner/internal/domain/catalog"

// FixtureAgents returns a small agent catalog spanning all four roles.
// IDs are readable stand-ins for the API's UUIDs.
func FixtureAgents() []catalog.Agent {
	return []catalog.Agent{
		{ID: "agent-jett", Name: "Jett", Icon: "jett.png", Role: catalog.Role{Name: "Duelist", Icon: "duelist.png"}},
		{ID: "agent-raze", Name: "Raze", Icon: "raze.png", Role: catalog.Role{Name: "Duelist", Icon: "duelist.png"}},
		{ID: "agent-sova", Name: "Sova", Icon: "sova.png", Role: catalog.Role{Name: "Initiator", Icon: "initiator.png"}},
		{ID: "agent-omen", Name: "Omen", Icon: "omen.png", Role: catalog.Role{Name: "Controller", Icon: "controller.png"}},
		{ID: "agent-killjoy", Name: "Killjoy", Icon: "killjoy.png", Role: catalog.Role{Name: "Sentinel", Icon: "sentinel.png"}},
	}
}

// FixtureMaps returns a map catalog matching part of the default schedule
// plus one off-schedule map.
func FixtureMaps() []catalog.Map {
	return []catalog.Map{
		{ID: "map-split", Name: "Split", Splash: "split.png"},
		{ID: "map-pearl", Name: "Pearl", Splash: "pearl.png"},
		{ID: "map-haven", Name: "Haven", Splash: "haven.png"},
		{ID: "map-bind", Name: "Bind", Splash: "bind.png"},
		{ID: "map-icebox", Name: "Icebox", Splash: "icebox.png"},
	}
}
