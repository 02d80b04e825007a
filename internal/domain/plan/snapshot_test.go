package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiertools/planner/internal/domain/catalog"
	"github.com/premiertools/planner/internal/domain/plan"
)

func testMaps() []catalog.Map {
	return []catalog.Map{
		{ID: "m-haven", Name: "Haven"},
		{ID: "m-bind", Name: "Bind"},
		{ID: "m-ascent", Name: "Ascent"},
	}
}

func TestTakeApply_RoundTrip(t *testing.T) {
	p := plan.New(testMaps())
	p.TeamName = "FULL SEND"
	p.Roster.Rename("main-0", "TenZ")
	p.Roster.TogglePool("main-0", "agent-jett")
	require.NoError(t, p.Board.UpdateSlot("m-haven", 0, "main-0", "agent-jett"))
	p.Rotation.Toggle("m-ascent")

	snap := plan.Take(p)
	data, err := plan.Marshal(snap)
	require.NoError(t, err)

	parsed, err := plan.Parse(data)
	require.NoError(t, err)

	restored := plan.New(testMaps())
	plan.Apply(restored, parsed)

	assert.Equal(t, p.TeamName, restored.TeamName)
	assert.Equal(t, p.Roster.Starters, restored.Roster.Starters)
	assert.Equal(t, p.Roster.Substitutes, restored.Roster.Substitutes)
	assert.Equal(t, p.Board.Compositions(), restored.Board.Compositions())
	assert.Equal(t, p.Rotation.Active(), restored.Rotation.Active())
}

func TestApply_PartialLeavesAbsentFieldsAlone(t *testing.T) {
	p := plan.New(testMaps())
	p.TeamName = "KEEP ME"
	p.Roster.TogglePool("main-1", "agent-sova")

	name := "NEW NAME"
	plan.Apply(p, plan.Snapshot{TeamName: &name})

	assert.Equal(t, "NEW NAME", p.TeamName)
	// Roster untouched by a bundle missing roster fields
	assert.Equal(t, []string{"agent-sova"}, p.Roster.Find("main-1").AgentPool)
}

func TestApply_PresentEmptyActiveSet(t *testing.T) {
	p := plan.New(testMaps())
	empty := []string{}

	plan.Apply(p, plan.Snapshot{ActiveMapIDs: &empty})

	assert.Empty(t, p.Rotation.Active())
}

func TestParse_MalformedInput(t *testing.T) {
	_, err := plan.Parse([]byte("{not json"))
	assert.Error(t, err)
}

func TestApply_ExcessSubstitutesAreBounded(t *testing.T) {
	p := plan.New(testMaps())

	subs := make([]plan.PlayerDTO, 7)
	for i := range subs {
		subs[i] = plan.PlayerDTO{ID: "sub-" + string(rune('a'+i)), AgentPool: []string{}}
	}
	plan.Apply(p, plan.Snapshot{SubRoster: &subs})

	assert.Len(t, p.Roster.Substitutes, 5)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "FULL_SEND_roster.json", plan.ExportFilename("FULL SEND"))
	assert.Equal(t, "A_B_C_roster.json", plan.ExportFilename("  A  B\tC "))
	assert.Equal(t, "team_roster.json", plan.ExportFilename("   "))
}

func TestReconcile(t *testing.T) {
	// Restore from a bundle mentioning a map the catalog no longer has
	comps := []plan.MapCompDTO{{MapID: "m-gone", Slots: make([]plan.SlotDTO, 5)}}
	active := []string{"m-haven", "m-gone"}
	restored := plan.New(testMaps())
	plan.Apply(restored, plan.Snapshot{MapComps: &comps, ActiveMapIDs: &active})

	restored.Reconcile(testMaps())

	assert.True(t, restored.Board.Has("m-haven"))
	assert.False(t, restored.Board.Has("m-gone"))
	assert.Equal(t, []string{"m-haven"}, restored.Rotation.Active())
	assert.Len(t, restored.Board.Compositions(), 3)
}
