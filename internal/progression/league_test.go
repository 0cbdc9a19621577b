package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiersAreContiguous(t *testing.T) {
	require.NotEmpty(t, Tiers)
	assert.Equal(t, 0, Tiers[0].MinXP)
	assert.Equal(t, -1, Tiers[len(Tiers)-1].MaxXP)

	for i := 1; i < len(Tiers); i++ {
		assert.Equal(t, Tiers[i-1].MaxXP+1, Tiers[i].MinXP,
			"gap between %s and %s", Tiers[i-1].ID, Tiers[i].ID)
	}
}

func TestTierFor(t *testing.T) {
	cases := []struct {
		totalXP int
		want    string
	}{
		{0, "bronze"},
		{499, "bronze"},
		{500, "silver"},
		{1499, "silver"},
		{1500, "gold"},
		{2999, "gold"},
		{3000, "diamond"},
		{5999, "diamond"},
		{6000, "master"},
		{1000000, "master"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TierFor(c.totalXP), "totalXP=%d", c.totalXP)
	}
}

func TestNextTierMin(t *testing.T) {
	min, ok, err := NextTierMin("bronze")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 500, min)

	min, ok, err = NextTierMin("diamond")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 6000, min)

	_, ok, err = NextTierMin("master")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = NextTierMin("platinum")
	assert.ErrorIs(t, err, ErrUnknownTier)
}
