package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiertools/planner/internal/adapters/persistence"
	"github.com/premiertools/planner/test/helpers"
)

func TestCatalogCache_EmptyCache(t *testing.T) {
	db := helpers.NewTestDB(t)
	cache := persistence.NewGormCatalogCache(db)

	_, _, found, err := cache.LoadAgents(context.Background())
	require.NoError(t, err)
	assert.False(t, found)

	_, _, found, err = cache.LoadMaps(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCatalogCache_AgentsRoundTripPreservesOrder(t *testing.T) {
	db := helpers.NewTestDB(t)
	cache := persistence.NewGormCatalogCache(db)
	agents := helpers.FixtureAgents()

	require.NoError(t, cache.SaveAgents(context.Background(), agents))

	loaded, syncedAt, found, err := cache.LoadAgents(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, agents, loaded)
	assert.WithinDuration(t, time.Now(), syncedAt, time.Minute)
}

func TestCatalogCache_SaveReplacesPreviousEntries(t *testing.T) {
	db := helpers.NewTestDB(t)
	cache := persistence.NewGormCatalogCache(db)

	require.NoError(t, cache.SaveMaps(context.Background(), helpers.FixtureMaps()))
	require.NoError(t, cache.SaveMaps(context.Background(), helpers.FixtureMaps()[:2]))

	loaded, _, found, err := cache.LoadMaps(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, helpers.FixtureMaps()[:2], loaded)
}
