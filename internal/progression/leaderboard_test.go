package progression

import (
	"context"
	"testing"

	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLeaderboard(t *testing.T) (*Service, context.Context) {
	t.Helper()
	svc, _, dir, _ := newTestService(nil)
	ctx := context.Background()

	dir.Put(&model.UserProfile{
		Email:    "ana@test.io",
		Username: "ana",
		Avatar:   "https://cdn.test.io/ana.jpg",
		Badges:   []string{"streak_5"},
	})
	dir.Put(&model.UserProfile{Email: "bob@test.io", Username: "bob"})
	// carol n'a pas de profil : repli sur la partie locale de l'email

	_, err := svc.Award(ctx, "bob@test.io", 80, "manual")
	require.NoError(t, err)
	_, err = svc.Award(ctx, "ana@test.io", 700, "manual")
	require.NoError(t, err)
	_, err = svc.Award(ctx, "carol@test.io", 150, "manual")
	require.NoError(t, err)

	return svc, ctx
}

func TestLeaderboardOrdersByWeeklyXP(t *testing.T) {
	svc, ctx := seedLeaderboard(t)

	entries, err := svc.Leaderboard(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "ana@test.io", entries[0].Email)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "carol@test.io", entries[1].Email)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "bob@test.io", entries[2].Email)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestLeaderboardJoinsProfiles(t *testing.T) {
	svc, ctx := seedLeaderboard(t)

	entries, err := svc.Leaderboard(ctx, 0)
	require.NoError(t, err)

	assert.Equal(t, "ana", entries[0].UserName)
	assert.Equal(t, "https://cdn.test.io/ana.jpg", entries[0].Avatar)
	assert.Equal(t, []string{"streak_5"}, entries[0].Badges)

	// Pas de profil pour carol : nom dérivé de l'email
	assert.Equal(t, "carol", entries[1].UserName)
	assert.Empty(t, entries[1].Avatar)
}

func TestLeaderboardLimit(t *testing.T) {
	svc, ctx := seedLeaderboard(t)

	entries, err := svc.Leaderboard(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "ana@test.io", entries[0].Email)
}

func TestLeaderboardStableTies(t *testing.T) {
	svc, _, _, _ := newTestService(nil)
	ctx := context.Background()

	_, err := svc.Award(ctx, "first@test.io", 100, "manual")
	require.NoError(t, err)
	_, err = svc.Award(ctx, "second@test.io", 100, "manual")
	require.NoError(t, err)

	entries, err := svc.Leaderboard(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Ex-aequo : l'ordre d'insertion du stockage est conservé
	assert.Equal(t, "first@test.io", entries[0].Email)
	assert.Equal(t, "second@test.io", entries[1].Email)
}

func TestRankOf(t *testing.T) {
	svc, ctx := seedLeaderboard(t)

	rank, err := svc.RankOf(ctx, "carol@test.io")
	require.NoError(t, err)

	assert.Equal(t, 2, rank.Rank)
	assert.Equal(t, 150, rank.WeeklyXP)
	assert.Equal(t, 3, rank.TotalUsers)
	assert.InDelta(t, 66.67, rank.Percentile, 0.01)
}

func TestRankOfUnknownUser(t *testing.T) {
	svc, ctx := seedLeaderboard(t)

	rank, err := svc.RankOf(ctx, "ghost@test.io")
	require.NoError(t, err)

	assert.Equal(t, 0, rank.Rank)
	assert.Equal(t, 3, rank.TotalUsers)
	assert.Equal(t, float64(100), rank.Percentile)
}

func TestFilteredByTier(t *testing.T) {
	svc, ctx := seedLeaderboard(t)

	bronze, err := svc.FilteredByTier(ctx, "bronze")
	require.NoError(t, err)
	require.Len(t, bronze, 2)
	assert.Equal(t, "carol@test.io", bronze[0].Email)
	assert.Equal(t, "bob@test.io", bronze[1].Email)

	silver, err := svc.FilteredByTier(ctx, "silver")
	require.NoError(t, err)
	require.Len(t, silver, 1)
	assert.Equal(t, "ana@test.io", silver[0].Email)
}

func TestFilteredByUnknownTier(t *testing.T) {
	svc, ctx := seedLeaderboard(t)

	_, err := svc.FilteredByTier(ctx, "platinum")
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestLeagueTable(t *testing.T) {
	svc, _, _, _ := newTestService(nil)

	table := svc.LeagueTable()
	require.Len(t, table, len(Tiers))
	assert.Equal(t, "bronze", table[0].ID)
	assert.Equal(t, "master", table[len(table)-1].ID)

	// Copie défensive : modifier la table retournée ne touche pas l'originale
	table[0].ID = "mutated"
	assert.Equal(t, "bronze", Tiers[0].ID)
}

func TestLeaderboardReflectsNewAwards(t *testing.T) {
	svc, ctx := seedLeaderboard(t)

	_, err := svc.Leaderboard(ctx, 0)
	require.NoError(t, err)

	// bob dépasse carol : le cache périmé doit être redérivé
	_, err = svc.Award(ctx, "bob@test.io", 200, "manual")
	require.NoError(t, err)

	entries, err := svc.Leaderboard(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "bob@test.io", entries[1].Email)
	assert.Equal(t, 280, entries[1].WeeklyXP)
}
