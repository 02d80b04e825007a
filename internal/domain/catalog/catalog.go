package catalog

// Role is the tactical archetype an agent belongs to
type Role struct {
	Name string
	Icon string
}

// Agent represents a playable character from the reference catalog
type Agent struct {
	ID   string
	Name string
	Icon string
	Role Role
}

// Map represents a competitive map from the reference catalog
type Map struct {
	ID     string
	Name   string
	Splash string
}

// AgentIndex builds a lookup table keyed by agent id
func AgentIndex(agents []Agent) map[string]Agent {
	index := make(map[string]Agent, len(agents))
	for _, a := range agents {
		index[a.ID] = a
	}
	return index
}

// MapIndex builds a lookup table keyed by map id
func MapIndex(maps []Map) map[string]Map {
	index := make(map[string]Map, len(maps))
	for _, m := range maps {
		index[m.ID] = m
	}
	return index
}
