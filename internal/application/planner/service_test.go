package planner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiertools/planner/internal/application/planner"
	"github.com/premiertools/planner/internal/domain/plan"
	"github.com/premiertools/planner/test/helpers"
)

func newInitializedService(t *testing.T) (*planner.Service, *helpers.MemoryStateRepository, *helpers.MockCatalogClient) {
	repo := helpers.NewMemoryStateRepository()
	client := helpers.NewMockCatalogClient()
	service := planner.NewService(repo, client)
	require.NoError(t, service.Initialize(context.Background(), ""))
	return service, repo, client
}

func TestInitialize_SeedsDefaults(t *testing.T) {
	service, repo, _ := newInitializedService(t)

	p := service.Plan()
	assert.Equal(t, plan.DefaultTeamName, p.TeamName)
	assert.Equal(t, "Player 1", p.Roster.Starters[0].Name)
	assert.Len(t, p.Roster.Substitutes, 2)

	// Fixture catalog holds four schedule maps; the off-schedule map
	// starts outside the rotation.
	assert.ElementsMatch(t,
		[]string{"map-split", "map-pearl", "map-haven", "map-bind"},
		p.Rotation.Active())

	// Loading a fresh default state is not itself a save
	assert.Zero(t, repo.SaveCalls)
}

func TestInitialize_MapsInScheduleOrder(t *testing.T) {
	service, _, _ := newInitializedService(t)

	var names []string
	for _, m := range service.Maps() {
		names = append(names, m.Name)
	}
	// Schedule order first, off-schedule maps alphabetically after
	assert.Equal(t, []string{"Split", "Pearl", "Haven", "Bind", "Icebox"}, names)
}

func TestInitialize_CatalogFetchFailureFailsStartup(t *testing.T) {
	repo := helpers.NewMemoryStateRepository()
	client := helpers.NewMockCatalogClient()
	client.MapsErr = errors.New("api unreachable")

	service := planner.NewService(repo, client)
	err := service.Initialize(context.Background(), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "map catalog")
}

func TestInitialize_RestoresStoredState(t *testing.T) {
	repo := helpers.NewMemoryStateRepository()
	teamName := "STORED TEAM"
	active := []string{"map-haven"}
	mains := []plan.PlayerDTO{
		{ID: "main-0", Name: "alpha", AgentPool: []string{"agent-jett"}, IsMain: true},
	}
	repo.Seed(plan.Snapshot{TeamName: &teamName, MainRoster: &mains, ActiveMapIDs: &active})

	service := planner.NewService(repo, helpers.NewMockCatalogClient())
	require.NoError(t, service.Initialize(context.Background(), ""))

	p := service.Plan()
	assert.Equal(t, "STORED TEAM", p.TeamName)
	assert.Equal(t, "alpha", p.Roster.Starters[0].Name)
	assert.Equal(t, []string{"agent-jett"}, p.Roster.Starters[0].AgentPool)
	// Starters absent from the stored bundle keep their defaults
	assert.Equal(t, "Player 2", p.Roster.Starters[1].Name)
	assert.Equal(t, []string{"map-haven"}, p.Rotation.Active())
}

func TestInitialize_EmptyStoredRotationRecomputesDefault(t *testing.T) {
	repo := helpers.NewMemoryStateRepository()
	teamName := "STORED TEAM"
	empty := []string{}
	repo.Seed(plan.Snapshot{TeamName: &teamName, ActiveMapIDs: &empty})

	service := planner.NewService(repo, helpers.NewMockCatalogClient())
	require.NoError(t, service.Initialize(context.Background(), ""))

	assert.ElementsMatch(t,
		[]string{"map-split", "map-pearl", "map-haven", "map-bind"},
		service.Plan().Rotation.Active())
}

func TestInitialize_StoredStatePrunedAgainstCatalog(t *testing.T) {
	repo := helpers.NewMemoryStateRepository()
	active := []string{"map-haven", "map-retired"}
	comps := []plan.MapCompDTO{
		{MapID: "map-retired", Slots: []plan.SlotDTO{{}, {}, {}, {}, {}}},
	}
	repo.Seed(plan.Snapshot{ActiveMapIDs: &active, MapComps: &comps})

	service := planner.NewService(repo, helpers.NewMockCatalogClient())
	require.NoError(t, service.Initialize(context.Background(), ""))

	p := service.Plan()
	assert.Equal(t, []string{"map-haven"}, p.Rotation.Active())
	assert.False(t, p.Board.Has("map-retired"))
	// Every catalog map gets a composition after reconciliation
	assert.True(t, p.Board.Has("map-icebox"))
}

func TestInitialize_ShareFragmentEntersViewingMode(t *testing.T) {
	teamName := "SHARED TEAM"
	fragment, err := plan.EncodeShare(plan.Snapshot{TeamName: &teamName})
	require.NoError(t, err)

	repo := helpers.NewMemoryStateRepository()
	service := planner.NewService(repo, helpers.NewMockCatalogClient())
	require.NoError(t, service.Initialize(context.Background(), fragment))

	assert.True(t, service.ViewingShared())
	assert.Equal(t, "SHARED TEAM", service.Plan().TeamName)

	// Edits while viewing a share must never touch durable storage
	service.SetTeamName(context.Background(), "HIJACKED")
	assert.Zero(t, repo.SaveCalls)
	assert.False(t, repo.Stored())
}

func TestInitialize_InvalidShareFragmentFallsBack(t *testing.T) {
	repo := helpers.NewMemoryStateRepository()
	teamName := "MY SAVED TEAM"
	repo.Seed(plan.Snapshot{TeamName: &teamName})

	service := planner.NewService(repo, helpers.NewMockCatalogClient())
	require.NoError(t, service.Initialize(context.Background(), "%%%not-base64%%%"))

	assert.False(t, service.ViewingShared())
	assert.Equal(t, "MY SAVED TEAM", service.Plan().TeamName)
}

func TestMutations_Persist(t *testing.T) {
	service, repo, _ := newInitializedService(t)
	ctx := context.Background()

	service.SetTeamName(ctx, "FULL SEND")
	assert.Equal(t, 1, repo.SaveCalls)

	found := service.RenamePlayer(ctx, "main-0", "alpha")
	assert.True(t, found)
	assert.Equal(t, 2, repo.SaveCalls)

	// Unknown player is a no-op that does not save
	assert.False(t, service.RenamePlayer(ctx, "ghost", "x"))
	assert.Equal(t, 2, repo.SaveCalls)

	snap := repo.Snapshot()
	require.NotNil(t, snap.TeamName)
	assert.Equal(t, "FULL SEND", *snap.TeamName)
}

func TestTogglePool_CascadeClearsSlots(t *testing.T) {
	service, repo, _ := newInitializedService(t)
	ctx := context.Background()

	removed, _, found := service.TogglePool(ctx, "main-0", "agent-jett")
	require.True(t, found)
	assert.False(t, removed)

	require.NoError(t, service.UpdateSlot(ctx, "map-haven", 0, "main-0", "agent-jett"))
	require.NoError(t, service.UpdateSlot(ctx, "map-bind", 2, "main-0", "agent-jett"))
	savesBefore := repo.SaveCalls

	removed, cleared, found := service.TogglePool(ctx, "main-0", "agent-jett")
	require.True(t, found)
	assert.True(t, removed)
	assert.Equal(t, 2, cleared)
	assert.Equal(t, savesBefore+1, repo.SaveCalls)

	// The cascade clears the agent but keeps the player in the slot
	slots := service.Plan().Board.Slots("map-haven")
	assert.Empty(t, slots[0].AgentID)
	assert.Equal(t, "main-0", slots[0].PlayerID)
}

func TestAddSubstitute_Limit(t *testing.T) {
	service, _, _ := newInitializedService(t)
	ctx := context.Background()

	// Two defaults exist; three more fit
	for i := 0; i < 3; i++ {
		_, err := service.AddSubstitute(ctx)
		require.NoError(t, err)
	}
	_, err := service.AddSubstitute(ctx)
	assert.Error(t, err)
}

func TestAvailableAgents_SelectedFirst(t *testing.T) {
	service, _, _ := newInitializedService(t)
	ctx := context.Background()

	for _, agentID := range []string{"agent-jett", "agent-omen", "agent-sova"} {
		_, _, found := service.TogglePool(ctx, "main-0", agentID)
		require.True(t, found)
	}
	require.NoError(t, service.UpdateSlot(ctx, "map-haven", 1, "main-0", "agent-omen"))

	agents, err := service.AvailableAgents("main-0", "map-haven", 1)
	require.NoError(t, err)
	require.Len(t, agents, 3)
	// Current selection leads, the rest keep role-then-name order
	assert.Equal(t, "agent-omen", agents[0].ID)
	assert.Equal(t, "agent-jett", agents[1].ID)
	assert.Equal(t, "agent-sova", agents[2].ID)

	// A different player in the slot means no selection to front-load
	agents, err = service.AvailableAgents("main-0", "map-haven", 0)
	require.NoError(t, err)
	assert.Equal(t, "agent-jett", agents[0].ID)

	_, err = service.AvailableAgents("main-0", "map-haven", 9)
	assert.Error(t, err)
	_, err = service.AvailableAgents("ghost", "map-haven", 0)
	assert.Error(t, err)
}

func TestImportSnapshot_LeavesViewingMode(t *testing.T) {
	teamName := "SHARED TEAM"
	fragment, err := plan.EncodeShare(plan.Snapshot{TeamName: &teamName})
	require.NoError(t, err)

	repo := helpers.NewMemoryStateRepository()
	service := planner.NewService(repo, helpers.NewMockCatalogClient())
	require.NoError(t, service.Initialize(context.Background(), fragment))
	require.True(t, service.ViewingShared())

	imported := "ADOPTED TEAM"
	data, err := plan.Marshal(plan.Snapshot{TeamName: &imported})
	require.NoError(t, err)

	require.NoError(t, service.ImportSnapshot(context.Background(), data))

	assert.False(t, service.ViewingShared())
	assert.Equal(t, "ADOPTED TEAM", service.Plan().TeamName)
	assert.True(t, repo.Stored())
}

func TestImportSnapshot_MalformedInputMutatesNothing(t *testing.T) {
	service, repo, _ := newInitializedService(t)
	ctx := context.Background()
	service.SetTeamName(ctx, "BEFORE")
	savesBefore := repo.SaveCalls

	err := service.ImportSnapshot(ctx, []byte("{not json"))

	require.Error(t, err)
	assert.Equal(t, "BEFORE", service.Plan().TeamName)
	assert.Equal(t, savesBefore, repo.SaveCalls)
}

func TestExportSnapshot_FilenameFromTeamName(t *testing.T) {
	service, _, _ := newInitializedService(t)
	service.SetTeamName(context.Background(), "Full Send Squad")

	data, filename, err := service.ExportSnapshot()
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "Full_Send_Squad_roster.json", filename)
}

func TestEncodeShare_RoundTrip(t *testing.T) {
	service, _, _ := newInitializedService(t)
	ctx := context.Background()
	service.SetTeamName(ctx, "ROUND TRIP")
	_, _, found := service.TogglePool(ctx, "main-1", "agent-raze")
	require.True(t, found)

	fragment, err := service.EncodeShare()
	require.NoError(t, err)

	decoded, err := plan.DecodeShare(fragment)
	require.NoError(t, err)
	require.NotNil(t, decoded.TeamName)
	assert.Equal(t, "ROUND TRIP", *decoded.TeamName)
	require.NotNil(t, decoded.MainRoster)
	assert.Equal(t, []string{"agent-raze"}, (*decoded.MainRoster)[1].AgentPool)
}

func TestToggleMap_Persists(t *testing.T) {
	service, repo, _ := newInitializedService(t)
	ctx := context.Background()

	active := service.ToggleMap(ctx, "map-icebox")
	assert.True(t, active)
	assert.Equal(t, 1, repo.SaveCalls)

	active = service.ToggleMap(ctx, "map-icebox")
	assert.False(t, active)

	var names []string
	for _, m := range service.ActiveMaps() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Split", "Pearl", "Haven", "Bind"}, names)
}
