package roster

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	// StarterCount is the fixed number of starter players
	StarterCount = 5

	// MaxSubstitutes is the maximum number of substitute players
	MaxSubstitutes = 5
)

var ErrSubstituteLimit = errors.New("substitute limit reached")

// Kind distinguishes starter players from substitutes
type Kind string

const (
	KindStarter    Kind = "starter"
	KindSubstitute Kind = "substitute"
)

// Player is a roster member with the set of agents they can play.
// AgentPool preserves insertion order but membership is unique.
type Player struct {
	ID        string
	Name      string
	AgentPool []string
	Kind      Kind
}

// IsStarter reports whether the player occupies one of the five fixed slots
func (p *Player) IsStarter() bool {
	return p.Kind == KindStarter
}

// InPool reports whether the agent is in the player's pool
func (p *Player) InPool(agentID string) bool {
	for _, id := range p.AgentPool {
		if id == agentID {
			return true
		}
	}
	return false
}

// Roster holds the fixed five starters plus up to five substitutes.
// Starters can never be removed, only mutated in place.
type Roster struct {
	Starters    [StarterCount]Player
	Substitutes []Player
}

// StarterID returns the stable id of the starter at the given position
func StarterID(position int) string {
	return fmt.Sprintf("main-%d", position)
}

// NewSubstituteID generates a unique substitute id
func NewSubstituteID() string {
	return "sub-" + uuid.NewString()
}

// New creates a default roster: five named starters and two blank substitutes
func New() *Roster {
	r := &Roster{}
	for i := range r.Starters {
		r.Starters[i] = Player{
			ID:        StarterID(i),
			Name:      fmt.Sprintf("Player %d", i+1),
			AgentPool: []string{},
			Kind:      KindStarter,
		}
	}
	for i := 0; i < 2; i++ {
		r.Substitutes = append(r.Substitutes, Player{
			ID:        NewSubstituteID(),
			AgentPool: []string{},
			Kind:      KindSubstitute,
		})
	}
	return r
}

// Find locates a player by id in either list, or nil if absent
func (r *Roster) Find(id string) *Player {
	for i := range r.Starters {
		if r.Starters[i].ID == id {
			return &r.Starters[i]
		}
	}
	for i := range r.Substitutes {
		if r.Substitutes[i].ID == id {
			return &r.Substitutes[i]
		}
	}
	return nil
}

// All returns starters followed by substitutes
func (r *Roster) All() []Player {
	players := make([]Player, 0, StarterCount+len(r.Substitutes))
	players = append(players, r.Starters[:]...)
	players = append(players, r.Substitutes...)
	return players
}

// StarterIDs returns the five starter ids in position order
func (r *Roster) StarterIDs() []string {
	ids := make([]string, StarterCount)
	for i := range r.Starters {
		ids[i] = r.Starters[i].ID
	}
	return ids
}

// Rename replaces a player's display name. Returns false if the id is unknown.
func (r *Roster) Rename(id, name string) bool {
	p := r.Find(id)
	if p == nil {
		return false
	}
	p.Name = name
	return true
}

// TogglePool flips agent membership in the player's pool. The removal
// direction is decided before mutating so callers can cascade-clear
// composition slots only when an agent actually left the pool.
// Returns (removed, found).
func (r *Roster) TogglePool(playerID, agentID string) (bool, bool) {
	p := r.Find(playerID)
	if p == nil {
		return false, false
	}

	if p.InPool(agentID) {
		pool := p.AgentPool[:0]
		for _, id := range p.AgentPool {
			if id != agentID {
				pool = append(pool, id)
			}
		}
		p.AgentPool = pool
		return true, true
	}

	p.AgentPool = append(p.AgentPool, agentID)
	return false, true
}

// AddSubstitute appends a blank substitute. Fails once the limit is reached.
func (r *Roster) AddSubstitute() (*Player, error) {
	if len(r.Substitutes) >= MaxSubstitutes {
		return nil, ErrSubstituteLimit
	}
	r.Substitutes = append(r.Substitutes, Player{
		ID:        NewSubstituteID(),
		AgentPool: []string{},
		Kind:      KindSubstitute,
	})
	return &r.Substitutes[len(r.Substitutes)-1], nil
}

// RemoveSubstitute deletes a substitute by id. Starters are never removed;
// an unknown or starter id is a no-op returning false.
func (r *Roster) RemoveSubstitute(id string) bool {
	for i := range r.Substitutes {
		if r.Substitutes[i].ID == id {
			r.Substitutes = append(r.Substitutes[:i], r.Substitutes[i+1:]...)
			return true
		}
	}
	return false
}

// DisplayName returns the player's name, or a placeholder for blank names
func DisplayName(p Player) string {
	if p.Name != "" {
		return p.Name
	}
	suffix := p.ID
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return fmt.Sprintf("Unnamed Sub (%s)", suffix)
}
