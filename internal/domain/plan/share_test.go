package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiertools/planner/internal/domain/plan"
)

func TestShare_RoundTrip(t *testing.T) {
	p := plan.New(testMaps())
	p.TeamName = "FULL SEND"
	p.Roster.TogglePool("main-0", "agent-jett")
	require.NoError(t, p.Board.UpdateSlot("m-haven", 2, "main-0", "agent-jett"))

	snap := plan.Take(p)
	fragment, err := plan.EncodeShare(snap)
	require.NoError(t, err)

	decoded, err := plan.DecodeShare(fragment)
	require.NoError(t, err)

	assert.Equal(t, snap, decoded)
}

func TestShare_NonASCIITeamName(t *testing.T) {
	p := plan.New(testMaps())
	p.TeamName = "Tsunami 津波 ⚡"

	fragment, err := plan.EncodeShare(plan.Take(p))
	require.NoError(t, err)

	decoded, err := plan.DecodeShare(fragment)
	require.NoError(t, err)
	require.NotNil(t, decoded.TeamName)
	assert.Equal(t, "Tsunami 津波 ⚡", *decoded.TeamName)
}

func TestShare_FragmentIsURLSafe(t *testing.T) {
	p := plan.New(testMaps())
	p.TeamName = "Name with spaces & symbols?"

	fragment, err := plan.EncodeShare(plan.Take(p))
	require.NoError(t, err)

	assert.NotContains(t, fragment, "+")
	assert.NotContains(t, fragment, "/")
	assert.NotContains(t, fragment, "=")
}

func TestDecodeShare_ToleratesLeadingHash(t *testing.T) {
	snap := plan.Take(plan.New(testMaps()))
	fragment, err := plan.EncodeShare(snap)
	require.NoError(t, err)

	decoded, err := plan.DecodeShare("#" + fragment)
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)
}

func TestDecodeShare_CorruptInput(t *testing.T) {
	cases := []struct {
		name     string
		fragment string
	}{
		{"empty", ""},
		{"not base64", "%%%not-base64%%%"},
		{"base64 but not json", "bm90LWpzb24"},
		{"truncated", "eyJ0IjoiRlVMTCBTRU5EIi"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := plan.DecodeShare(tc.fragment)
			assert.Error(t, err)
		})
	}
}
