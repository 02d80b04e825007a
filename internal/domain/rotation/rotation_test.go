package rotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/premiertools/planner/internal/domain/catalog"
	"github.com/premiertools/planner/internal/domain/rotation"
)

func TestToggle(t *testing.T) {
	r := rotation.New(nil)

	assert.True(t, r.Toggle("haven"))
	assert.True(t, r.Contains("haven"))

	assert.False(t, r.Toggle("haven"))
	assert.False(t, r.Contains("haven"))
	assert.Equal(t, 0, r.Len())
}

func TestToggle_CanEmptyTheSet(t *testing.T) {
	r := rotation.New([]string{"haven", "bind"})

	r.Toggle("haven")
	r.Toggle("bind")

	assert.Empty(t, r.Active())
}

func TestDefaultActive_MatchingSubset(t *testing.T) {
	maps := []catalog.Map{
		{ID: "m1", Name: "Haven"},
		{ID: "m2", Name: "Ascent"},
		{ID: "m3", Name: "Split"},
	}

	ids := rotation.DefaultActive(maps, []string{"split", "HAVEN"})

	assert.Equal(t, []string{"m1", "m3"}, ids)
}

func TestDefaultActive_FallbackToFullCatalog(t *testing.T) {
	maps := []catalog.Map{
		{ID: "m1", Name: "Haven"},
		{ID: "m2", Name: "Ascent"},
	}

	ids := rotation.DefaultActive(maps, []string{"Fracture", "Pearl"})

	assert.Equal(t, []string{"m1", "m2"}, ids)
}

func TestPrune(t *testing.T) {
	r := rotation.New([]string{"m1", "m2", "m3"})

	r.Prune(map[string]bool{"m1": true, "m3": true})

	assert.Equal(t, []string{"m1", "m3"}, r.Active())
}
