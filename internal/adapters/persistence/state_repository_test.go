package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiertools/planner/internal/adapters/persistence"
	"github.com/premiertools/planner/internal/domain/plan"
	"github.com/premiertools/planner/test/helpers"
)

func TestStateRepository_EmptyDatabase(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)

	_, found, err := repo.LoadState(context.Background())

	require.NoError(t, err)
	assert.False(t, found)
}

func TestStateRepository_SaveAndLoad(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)

	teamName := "FULL SEND"
	mains := []plan.PlayerDTO{
		{ID: "main-0", Name: "alpha", AgentPool: []string{"agent-jett"}, IsMain: true},
		{ID: "main-1", Name: "bravo", AgentPool: []string{}, IsMain: true},
	}
	subs := []plan.PlayerDTO{
		{ID: "sub-1", Name: "", AgentPool: []string{"agent-omen"}},
	}
	comps := []plan.MapCompDTO{
		{MapID: "map-haven", Slots: []plan.SlotDTO{
			{PlayerID: "main-0", AgentID: "agent-jett"},
			{}, {}, {}, {},
		}},
	}
	active := []string{"map-haven", "map-split"}

	err := repo.SaveState(context.Background(), plan.Snapshot{
		TeamName:     &teamName,
		MainRoster:   &mains,
		SubRoster:    &subs,
		MapComps:     &comps,
		ActiveMapIDs: &active,
	})
	require.NoError(t, err)

	loaded, found, err := repo.LoadState(context.Background())
	require.NoError(t, err)
	require.True(t, found)

	require.NotNil(t, loaded.TeamName)
	assert.Equal(t, "FULL SEND", *loaded.TeamName)
	require.NotNil(t, loaded.MainRoster)
	assert.Equal(t, mains, *loaded.MainRoster)
	require.NotNil(t, loaded.SubRoster)
	assert.Equal(t, subs, *loaded.SubRoster)
	require.NotNil(t, loaded.MapComps)
	assert.Equal(t, comps, *loaded.MapComps)
	require.NotNil(t, loaded.ActiveMapIDs)
	assert.Equal(t, active, *loaded.ActiveMapIDs)
}

func TestStateRepository_NilFieldsLeaveSlotsUntouched(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)

	teamName := "ORIGINAL"
	active := []string{"map-bind"}
	require.NoError(t, repo.SaveState(context.Background(), plan.Snapshot{
		TeamName:     &teamName,
		ActiveMapIDs: &active,
	}))

	// A save carrying only the team name must not clear the active maps
	renamed := "RENAMED"
	require.NoError(t, repo.SaveState(context.Background(), plan.Snapshot{
		TeamName: &renamed,
	}))

	loaded, found, err := repo.LoadState(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, loaded.TeamName)
	assert.Equal(t, "RENAMED", *loaded.TeamName)
	require.NotNil(t, loaded.ActiveMapIDs)
	assert.Equal(t, []string{"map-bind"}, *loaded.ActiveMapIDs)
}

func TestStateRepository_OverwritesExistingSlot(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)

	first := []string{"map-split", "map-pearl"}
	require.NoError(t, repo.SaveState(context.Background(), plan.Snapshot{ActiveMapIDs: &first}))

	second := []string{"map-haven"}
	require.NoError(t, repo.SaveState(context.Background(), plan.Snapshot{ActiveMapIDs: &second}))

	loaded, found, err := repo.LoadState(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, loaded.ActiveMapIDs)
	assert.Equal(t, []string{"map-haven"}, *loaded.ActiveMapIDs)
}

func TestStateRepository_EmptySliceIsStoredNotDropped(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)

	// An explicitly empty rotation is a real state, distinct from absent
	empty := []string{}
	require.NoError(t, repo.SaveState(context.Background(), plan.Snapshot{ActiveMapIDs: &empty}))

	loaded, found, err := repo.LoadState(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, loaded.ActiveMapIDs)
	assert.Empty(t, *loaded.ActiveMapIDs)
}
