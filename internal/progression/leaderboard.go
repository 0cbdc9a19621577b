package progression

import (
	"context"
	"sort"
	"strings"

	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
)

// rebuildLocked redérive le classement quand il est marqué périmé :
// jointure de chaque enregistrement avec le profil de son propriétaire et
// sa ligue, tri décroissant sur l'XP hebdomadaire. Le tri est stable ;
// l'ordre des ex-aequo suit l'ordre d'itération du stockage.
func (s *Service) rebuildLocked(ctx context.Context) error {
	if !s.stale && s.cache != nil {
		return nil
	}

	recs, err := s.store.Records()
	if err != nil {
		return err
	}

	emails := make([]string, 0, len(recs))
	for _, r := range recs {
		emails = append(emails, r.Email)
	}
	members, err := s.dir.Members(ctx, emails)
	if err != nil {
		return err
	}

	entries := make([]model.LeaderboardEntry, 0, len(recs))
	for _, r := range recs {
		entry := model.LeaderboardEntry{
			Email:      r.Email,
			WeeklyXP:   r.WeeklyXP,
			TotalXP:    r.TotalXP,
			Tier:       TierFor(r.TotalXP),
			StreakDays: r.StreakDays,
		}
		if m := members[r.Email]; m != nil {
			entry.UserName = m.DisplayName()
			entry.Avatar = m.Avatar
			entry.Badges = m.Badges
		} else {
			// Profil introuvable : partie locale de l'email
			entry.UserName = localPart(r.Email)
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].WeeklyXP > entries[j].WeeklyXP
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	s.cache = entries
	s.stale = false
	return nil
}

// Leaderboard retourne les n premières entrées du classement hebdomadaire
// (toutes si n <= 0)
func (s *Service) Leaderboard(ctx context.Context, n int) ([]model.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.rebuildLocked(ctx); err != nil {
		return nil, err
	}

	entries := s.cache
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	out := make([]model.LeaderboardEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// RankOf retourne la position 1-based d'un utilisateur sur le classement
// complet, avec le nombre total de participants. Rank vaut 0 si
// l'utilisateur n'a aucun enregistrement.
func (s *Service) RankOf(ctx context.Context, email string) (*model.UserRank, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.rebuildLocked(ctx); err != nil {
		return nil, err
	}

	rank := &model.UserRank{
		Email:      email,
		TotalUsers: len(s.cache),
		Percentile: 100,
	}
	for _, e := range s.cache {
		if e.Email == email {
			rank.Rank = e.Rank
			rank.WeeklyXP = e.WeeklyXP
			break
		}
	}
	if rank.Rank > 0 && rank.TotalUsers > 0 {
		rank.Percentile = float64(rank.Rank) / float64(rank.TotalUsers) * 100
	}
	return rank, nil
}

// FilteredByTier retourne les entrées dont la ligue dérivée correspond à
// tierID, dans l'ordre du classement global
func (s *Service) FilteredByTier(ctx context.Context, tierID string) ([]model.LeaderboardEntry, error) {
	if !validTier(tierID) {
		return nil, ErrUnknownTier
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.rebuildLocked(ctx); err != nil {
		return nil, err
	}

	out := []model.LeaderboardEntry{}
	for _, e := range s.cache {
		if e.Tier == tierID {
			out = append(out, e)
		}
	}
	return out, nil
}

// LeagueTable retourne la table statique des ligues
func (s *Service) LeagueTable() []model.LeagueTier {
	out := make([]model.LeagueTier, len(Tiers))
	copy(out, Tiers)
	return out
}

func localPart(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
