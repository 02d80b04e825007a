package planner

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/premiertools/planner/internal/domain/catalog"
	"github.com/premiertools/planner/internal/domain/composition"
	"github.com/premiertools/planner/internal/domain/plan"
	"github.com/premiertools/planner/internal/domain/rotation"
	"github.com/premiertools/planner/internal/infrastructure/ports"
)

// Service is the orchestrator: it owns the canonical plan state, applies
// the cross-cutting invariants between roster and compositions, and
// decides when edits are persisted versus when a shared snapshot is only
// being viewed.
type Service struct {
	repo          plan.StateRepository
	catalogClient ports.CatalogClient

	agents     []catalog.Agent
	agentIndex map[string]catalog.Agent
	maps       []catalog.Map

	plan          *plan.Plan
	loading       bool
	viewingShared bool
}

// NewService creates an uninitialized planner service
func NewService(repo plan.StateRepository, catalogClient ports.CatalogClient) *Service {
	return &Service{
		repo:          repo,
		catalogClient: catalogClient,
	}
}

// Initialize runs the two-phase startup sequence. Phase one fetches the
// agent and map catalogs concurrently; if either fetch fails, startup
// fails as a unit. Phase two seeds the plan from exactly one of: the
// share fragment, the stored snapshot, or computed defaults.
//
// A share fragment that fails to decode is logged and ignored, not fatal.
// Viewing a decoded share never writes to durable storage; only an
// explicit import does.
func (s *Service) Initialize(ctx context.Context, shareFragment string) error {
	s.loading = true
	defer func() { s.loading = false }()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		agents, err := s.catalogClient.GetAgents(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch agent catalog: %w", err)
		}
		s.agents = agents
		return nil
	})
	g.Go(func() error {
		maps, err := s.catalogClient.GetMaps(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch map catalog: %w", err)
		}
		s.maps = maps
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.agentIndex = catalog.AgentIndex(s.agents)
	catalog.SortMaps(s.maps, catalog.DefaultSchedule())

	if shareFragment != "" {
		snap, err := plan.DecodeShare(shareFragment)
		if err == nil {
			s.plan = plan.New(s.maps)
			plan.Apply(s.plan, snap)
			s.plan.Reconcile(s.maps)
			s.viewingShared = true
			return nil
		}
		log.Printf("ignoring invalid share fragment: %v", err)
	}

	stored, found, err := s.repo.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stored state: %w", err)
	}
	if found {
		s.plan = plan.New(s.maps)
		plan.Apply(s.plan, stored)
		s.plan.Reconcile(s.maps)
		// An empty stored rotation means the schedule default was never
		// taken; recompute it rather than starting with nothing selected.
		if s.plan.Rotation.Len() == 0 {
			s.plan.Rotation = rotation.New(rotation.DefaultActive(s.maps, catalog.DefaultSchedule()))
		}
		return nil
	}

	s.plan = plan.New(s.maps)
	return nil
}

// persist saves a snapshot after a state-changing operation. Writes are
// suppressed while the initial load is still running and while a shared
// snapshot is being viewed, so a visitor can never clobber their own
// saved roster. Failures are logged, not surfaced.
func (s *Service) persist(ctx context.Context) {
	if s.loading || s.viewingShared {
		return
	}
	if err := s.repo.SaveState(ctx, plan.Take(s.plan)); err != nil {
		log.Printf("failed to persist plan state: %v", err)
	}
}

// Plan exposes the canonical state for queries
func (s *Service) Plan() *plan.Plan {
	return s.plan
}

// Agents returns the agent catalog
func (s *Service) Agents() []catalog.Agent {
	return s.agents
}

// AgentByID resolves an agent from the catalog
func (s *Service) AgentByID(id string) (catalog.Agent, bool) {
	a, ok := s.agentIndex[id]
	return a, ok
}

// Maps returns the map catalog in schedule order
func (s *Service) Maps() []catalog.Map {
	return s.maps
}

// ActiveMaps returns the catalog entries currently in rotation
func (s *Service) ActiveMaps() []catalog.Map {
	var active []catalog.Map
	for _, m := range s.maps {
		if s.plan.Rotation.Contains(m.ID) {
			active = append(active, m)
		}
	}
	return active
}

// ViewingShared reports whether a shared snapshot is being viewed
func (s *Service) ViewingShared() bool {
	return s.viewingShared
}

// SetTeamName replaces the team name
func (s *Service) SetTeamName(ctx context.Context, name string) {
	s.plan.TeamName = name
	s.persist(ctx)
}

// RenamePlayer replaces a player's display name; unknown ids are a no-op
func (s *Service) RenamePlayer(ctx context.Context, playerID, name string) bool {
	if !s.plan.Roster.Rename(playerID, name) {
		return false
	}
	s.persist(ctx)
	return true
}

// TogglePool flips an agent in a player's pool, cascading slot clears on
// removal. Returns (removed, clearedSlots, playerFound).
func (s *Service) TogglePool(ctx context.Context, playerID, agentID string) (bool, int, bool) {
	removed, cleared, found := s.plan.TogglePool(playerID, agentID)
	if !found {
		return false, 0, false
	}
	s.persist(ctx)
	return removed, cleared, true
}

// AddSubstitute appends a blank substitute, up to the limit
func (s *Service) AddSubstitute(ctx context.Context) (string, error) {
	sub, err := s.plan.Roster.AddSubstitute()
	if err != nil {
		return "", err
	}
	s.persist(ctx)
	return sub.ID, nil
}

// RemoveSubstitute deletes a substitute by id
func (s *Service) RemoveSubstitute(ctx context.Context, playerID string) bool {
	if !s.plan.Roster.RemoveSubstitute(playerID) {
		return false
	}
	s.persist(ctx)
	return true
}

// UpdateSlot overwrites one composition slot for a map
func (s *Service) UpdateSlot(ctx context.Context, mapID string, index int, playerID, agentID string) error {
	if err := s.plan.Board.UpdateSlot(mapID, index, playerID, agentID); err != nil {
		return err
	}
	s.persist(ctx)
	return nil
}

// ToggleMap flips a map's rotation membership
func (s *Service) ToggleMap(ctx context.Context, mapID string) bool {
	active := s.plan.Rotation.Toggle(mapID)
	s.persist(ctx)
	return active
}

// RoleCounts tallies the roles resolved by a map's slots
func (s *Service) RoleCounts(mapID string) map[string]int {
	return s.plan.Board.RoleCounts(mapID, s.agentIndex)
}

// DuplicateAgents flags agents picked more than once on a map
func (s *Service) DuplicateAgents(mapID string) map[string]bool {
	return s.plan.Board.DuplicateAgents(mapID)
}

// AvailableAgents lists a player's pool in presentation order for a slot,
// with the slot's current selection first.
func (s *Service) AvailableAgents(playerID, mapID string, index int) ([]catalog.Agent, error) {
	if index < 0 || index >= composition.SlotCount {
		return nil, fmt.Errorf("slot index %d out of range [0,%d)", index, composition.SlotCount)
	}
	p := s.plan.Roster.Find(playerID)
	if p == nil {
		return nil, fmt.Errorf("unknown player: %s", playerID)
	}
	selected := ""
	slots := s.plan.Board.Slots(mapID)
	if slots[index].PlayerID == playerID {
		selected = slots[index].AgentID
	}
	return composition.AvailableAgents(p.AgentPool, s.agents, selected), nil
}

// ExportSnapshot serializes the full state bundle and derives the export
// filename from the team name.
func (s *Service) ExportSnapshot() ([]byte, string, error) {
	data, err := plan.Marshal(plan.Take(s.plan))
	if err != nil {
		return nil, "", err
	}
	return data, plan.ExportFilename(s.plan.TeamName), nil
}

// ImportSnapshot applies an uploaded bundle. Malformed input returns an
// error with no state mutated. A successful import leaves viewing mode
// and persists, making the imported state the user's own.
func (s *Service) ImportSnapshot(ctx context.Context, data []byte) error {
	snap, err := plan.Parse(data)
	if err != nil {
		return err
	}
	plan.Apply(s.plan, snap)
	s.plan.Reconcile(s.maps)
	s.viewingShared = false
	s.persist(ctx)
	return nil
}

// EncodeShare renders the current state as a URL-fragment string
func (s *Service) EncodeShare() (string, error) {
	return plan.EncodeShare(plan.Take(s.plan))
}
