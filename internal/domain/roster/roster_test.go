package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiertools/planner/internal/domain/roster"
)

func TestNew_DefaultShape(t *testing.T) {
	r := roster.New()

	assert.Len(t, r.Starters, 5)
	assert.Len(t, r.Substitutes, 2)
	assert.Equal(t, "main-0", r.Starters[0].ID)
	assert.Equal(t, "Player 1", r.Starters[0].Name)
	assert.Equal(t, "Player 5", r.Starters[4].Name)
	for _, p := range r.Starters {
		assert.Equal(t, roster.KindStarter, p.Kind)
	}
	for _, p := range r.Substitutes {
		assert.Equal(t, roster.KindSubstitute, p.Kind)
		assert.Empty(t, p.Name)
	}
}

func TestTogglePool_Involution(t *testing.T) {
	r := roster.New()

	removed, found := r.TogglePool("main-2", "agent-jett")
	require.True(t, found)
	assert.False(t, removed)
	assert.Equal(t, []string{"agent-jett"}, r.Find("main-2").AgentPool)

	removed, found = r.TogglePool("main-2", "agent-jett")
	require.True(t, found)
	assert.True(t, removed)
	assert.Empty(t, r.Find("main-2").AgentPool)
}

func TestTogglePool_PreservesInsertionOrder(t *testing.T) {
	r := roster.New()

	r.TogglePool("main-0", "c")
	r.TogglePool("main-0", "a")
	r.TogglePool("main-0", "b")
	r.TogglePool("main-0", "a")

	assert.Equal(t, []string{"c", "b"}, r.Find("main-0").AgentPool)
}

func TestTogglePool_UnknownPlayer(t *testing.T) {
	r := roster.New()

	_, found := r.TogglePool("main-99", "agent-jett")
	assert.False(t, found)
}

func TestRename(t *testing.T) {
	r := roster.New()

	assert.True(t, r.Rename("main-0", "TenZ"))
	assert.Equal(t, "TenZ", r.Starters[0].Name)

	// Unknown id is a no-op
	assert.False(t, r.Rename("nope", "x"))
}

func TestAddSubstitute_Limit(t *testing.T) {
	r := roster.New()

	// Default roster already has 2 substitutes
	for i := 0; i < 3; i++ {
		_, err := r.AddSubstitute()
		require.NoError(t, err)
	}
	assert.Len(t, r.Substitutes, 5)

	_, err := r.AddSubstitute()
	assert.ErrorIs(t, err, roster.ErrSubstituteLimit)
	assert.Len(t, r.Substitutes, 5)
	assert.Len(t, r.Starters, 5)
}

func TestRemoveSubstitute(t *testing.T) {
	r := roster.New()
	sub, err := r.AddSubstitute()
	require.NoError(t, err)
	id := sub.ID

	assert.True(t, r.RemoveSubstitute(id))
	assert.Nil(t, r.Find(id))

	// Starters cannot be removed through this path
	assert.False(t, r.RemoveSubstitute("main-0"))
	assert.Len(t, r.Starters, 5)
}

func TestDisplayName(t *testing.T) {
	named := roster.Player{ID: "sub-abcd1234", Name: "coach"}
	assert.Equal(t, "coach", roster.DisplayName(named))

	blank := roster.Player{ID: "sub-abcd1234"}
	assert.Equal(t, "Unnamed Sub (1234)", roster.DisplayName(blank))
}
