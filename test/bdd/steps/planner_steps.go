package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
	"gorm.io/gorm"

	"github.com/premiertools/planner/internal/adapters/persistence"
	"github.com/premiertools/planner/internal/application/planner"
	"github.com/premiertools/planner/internal/infrastructure/database"
	"github.com/premiertools/planner/test/helpers"
)

type plannerContext struct {
	db      *gorm.DB
	repo    *persistence.GormStateRepository
	client  *helpers.MockCatalogClient
	service *planner.Service

	// Result tracking
	lastCleared int
	lastErr     error
}

func (ctx *plannerContext) reset() {
	if ctx.db != nil {
		database.Close(ctx.db)
	}

	// Fresh in-memory database with REAL GORM repositories per scenario
	db, err := database.NewTestConnection()
	if err != nil {
		panic(fmt.Errorf("failed to create test database: %w", err))
	}
	ctx.db = db
	ctx.repo = persistence.NewGormStateRepository(db)
	ctx.client = helpers.NewMockCatalogClient()
	ctx.service = nil
	ctx.lastCleared = 0
	ctx.lastErr = nil
}

// Given steps

func (ctx *plannerContext) aFreshlyInitializedPlanner() error {
	ctx.service = planner.NewService(ctx.repo, ctx.client)
	return ctx.service.Initialize(context.Background(), "")
}

func (ctx *plannerContext) playerHasAgentInTheirPool(playerID, agentID string) error {
	removed, _, found := ctx.service.TogglePool(context.Background(), playerID, agentID)
	if !found {
		return fmt.Errorf("unknown player: %s", playerID)
	}
	if removed {
		return fmt.Errorf("agent %s was already pooled for %s", agentID, playerID)
	}
	return nil
}

func (ctx *plannerContext) slotIsAssigned(index int, mapID, playerID, agentID string) error {
	return ctx.service.UpdateSlot(context.Background(), mapID, index, playerID, agentID)
}

// When steps

func (ctx *plannerContext) iToggleAgentForPlayer(agentID, playerID string) error {
	_, cleared, found := ctx.service.TogglePool(context.Background(), playerID, agentID)
	if !found {
		return fmt.Errorf("unknown player: %s", playerID)
	}
	ctx.lastCleared = cleared
	return nil
}

func (ctx *plannerContext) iRenamePlayerTo(playerID, name string) error {
	if !ctx.service.RenamePlayer(context.Background(), playerID, name) {
		return fmt.Errorf("unknown player: %s", playerID)
	}
	return nil
}

func (ctx *plannerContext) iAddSubstitutes(count int) error {
	for i := 0; i < count; i++ {
		if _, err := ctx.service.AddSubstitute(context.Background()); err != nil {
			return err
		}
	}
	return nil
}

func (ctx *plannerContext) iAssignSlot(index int, mapID, playerID, agentID string) error {
	return ctx.service.UpdateSlot(context.Background(), mapID, index, playerID, agentID)
}

func (ctx *plannerContext) iAttemptToAssignSlot(index int, mapID, playerID, agentID string) error {
	ctx.lastErr = ctx.service.UpdateSlot(context.Background(), mapID, index, playerID, agentID)
	return nil
}

func (ctx *plannerContext) iToggleMap(mapID string) error {
	ctx.service.ToggleMap(context.Background(), mapID)
	return nil
}

func (ctx *plannerContext) thePlannerIsRestarted() error {
	// Same database, new service: loads the persisted snapshot
	ctx.service = planner.NewService(ctx.repo, ctx.client)
	return ctx.service.Initialize(context.Background(), "")
}

// Then steps

func (ctx *plannerContext) playerShouldHaveAgentInPool(playerID, agentID string) error {
	p := ctx.service.Plan().Roster.Find(playerID)
	if p == nil {
		return fmt.Errorf("unknown player: %s", playerID)
	}
	if !p.InPool(agentID) {
		return fmt.Errorf("agent %s not in pool %v", agentID, p.AgentPool)
	}
	return nil
}

func (ctx *plannerContext) playerShouldNotHaveAgentInPool(playerID, agentID string) error {
	p := ctx.service.Plan().Roster.Find(playerID)
	if p == nil {
		return fmt.Errorf("unknown player: %s", playerID)
	}
	if p.InPool(agentID) {
		return fmt.Errorf("agent %s unexpectedly in pool %v", agentID, p.AgentPool)
	}
	return nil
}

func (ctx *plannerContext) slotsShouldHaveBeenCleared(count int) error {
	if ctx.lastCleared != count {
		return fmt.Errorf("expected %d cleared slots, got %d", count, ctx.lastCleared)
	}
	return nil
}

func (ctx *plannerContext) slotShouldHoldNoAgent(index int, mapID string) error {
	slot := ctx.service.Plan().Board.Slots(mapID)[index]
	if slot.AgentID != "" {
		return fmt.Errorf("slot %d on %s holds agent %q", index, mapID, slot.AgentID)
	}
	return nil
}

func (ctx *plannerContext) slotShouldHoldAgent(index int, mapID, agentID string) error {
	slot := ctx.service.Plan().Board.Slots(mapID)[index]
	if slot.AgentID != agentID {
		return fmt.Errorf("slot %d on %s holds agent %q, expected %q", index, mapID, slot.AgentID, agentID)
	}
	return nil
}

func (ctx *plannerContext) playerShouldBeNamed(playerID, name string) error {
	p := ctx.service.Plan().Roster.Find(playerID)
	if p == nil {
		return fmt.Errorf("unknown player: %s", playerID)
	}
	if p.Name != name {
		return fmt.Errorf("player %s is named %q, expected %q", playerID, p.Name, name)
	}
	return nil
}

func (ctx *plannerContext) addingAnotherSubstituteShouldFail() error {
	if _, err := ctx.service.AddSubstitute(context.Background()); err == nil {
		return fmt.Errorf("expected the substitute limit to reject the add")
	}
	return nil
}

func (ctx *plannerContext) theOperationShouldFail() error {
	if ctx.lastErr == nil {
		return fmt.Errorf("expected an error, got none")
	}
	return nil
}

func (ctx *plannerContext) agentShouldBeFlaggedAsDuplicated(agentID, mapID string) error {
	if !ctx.service.DuplicateAgents(mapID)[agentID] {
		return fmt.Errorf("agent %s not flagged as duplicated on %s", agentID, mapID)
	}
	return nil
}

func (ctx *plannerContext) mapShouldCountAgentsInRole(mapID string, count int, role string) error {
	got := ctx.service.RoleCounts(mapID)[role]
	if got != count {
		return fmt.Errorf("map %s counts %d in role %s, expected %d", mapID, got, role, count)
	}
	return nil
}

func (ctx *plannerContext) mapShouldNotBeInTheRotation(mapID string) error {
	if ctx.service.Plan().Rotation.Contains(mapID) {
		return fmt.Errorf("map %s unexpectedly in rotation", mapID)
	}
	return nil
}

// InitializePlannerScenario registers all planner step definitions
func InitializePlannerScenario(sc *godog.ScenarioContext) {
	ctx := &plannerContext{}

	sc.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		ctx.reset()
		return c, nil
	})

	// Given
	sc.Step(`^a freshly initialized planner$`, ctx.aFreshlyInitializedPlanner)
	sc.Step(`^player "([^"]*)" has agent "([^"]*)" in their pool$`, ctx.playerHasAgentInTheirPool)
	sc.Step(`^slot (\d+) on map "([^"]*)" is assigned to player "([^"]*)" with agent "([^"]*)"$`, ctx.slotIsAssigned)

	// When
	sc.Step(`^I toggle agent "([^"]*)" for player "([^"]*)"$`, ctx.iToggleAgentForPlayer)
	sc.Step(`^I rename player "([^"]*)" to "([^"]*)"$`, ctx.iRenamePlayerTo)
	sc.Step(`^I add (\d+) substitutes$`, ctx.iAddSubstitutes)
	sc.Step(`^I assign slot (\d+) on map "([^"]*)" to player "([^"]*)" with agent "([^"]*)"$`, ctx.iAssignSlot)
	sc.Step(`^I attempt to assign slot (\d+) on map "([^"]*)" to player "([^"]*)" with agent "([^"]*)"$`, ctx.iAttemptToAssignSlot)
	sc.Step(`^I toggle map "([^"]*)"$`, ctx.iToggleMap)
	sc.Step(`^the planner is restarted$`, ctx.thePlannerIsRestarted)

	// Then
	sc.Step(`^player "([^"]*)" should have agent "([^"]*)" in their pool$`, ctx.playerShouldHaveAgentInPool)
	sc.Step(`^player "([^"]*)" should not have agent "([^"]*)" in their pool$`, ctx.playerShouldNotHaveAgentInPool)
	sc.Step(`^(\d+) composition slots should have been cleared$`, ctx.slotsShouldHaveBeenCleared)
	sc.Step(`^slot (\d+) on map "([^"]*)" should hold no agent$`, ctx.slotShouldHoldNoAgent)
	sc.Step(`^slot (\d+) on map "([^"]*)" should hold agent "([^"]*)"$`, ctx.slotShouldHoldAgent)
	sc.Step(`^player "([^"]*)" should be named "([^"]*)"$`, ctx.playerShouldBeNamed)
	sc.Step(`^adding another substitute should fail$`, ctx.addingAnotherSubstituteShouldFail)
	sc.Step(`^the operation should fail$`, ctx.theOperationShouldFail)
	sc.Step(`^agent "([^"]*)" should be flagged as duplicated on map "([^"]*)"$`, ctx.agentShouldBeFlaggedAsDuplicated)
	sc.Step(`^map "([^"]*)" should count (\d+) agents in role "([^"]*)"$`, ctx.mapShouldCountAgentsInRole)
	sc.Step(`^map "([^"]*)" should not be in the rotation$`, ctx.mapShouldNotBeInTheRotation)
}
