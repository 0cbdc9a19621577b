package progression

import (
	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
)

// Tiers est la table des ligues : plages d'XP total contiguës et exhaustives
// sur les entiers positifs, jamais modifiée à l'exécution.
// MaxXP = -1 marque le palier ouvert le plus haut.
var Tiers = []model.LeagueTier{
	{ID: "bronze", Name: "Bronze League", MinXP: 0, MaxXP: 499, Icon: "🥉"},
	{ID: "silver", Name: "Silver League", MinXP: 500, MaxXP: 1499, Icon: "🥈"},
	{ID: "gold", Name: "Gold League", MinXP: 1500, MaxXP: 2999, Icon: "🥇"},
	{ID: "diamond", Name: "Diamond League", MinXP: 3000, MaxXP: 5999, Icon: "💎"},
	{ID: "master", Name: "Master League", MinXP: 6000, MaxXP: -1, Icon: "👑"},
}

// TierFor retourne l'identifiant de ligue correspondant à un XP total.
// Les paliers sont testés du plus bas au plus haut, le premier qui
// contient la valeur gagne ; au-delà du dernier maximum fini, c'est le
// palier ouvert.
func TierFor(totalXP int) string {
	for _, t := range Tiers {
		if t.MaxXP < 0 || totalXP <= t.MaxXP {
			return t.ID
		}
	}
	return Tiers[len(Tiers)-1].ID
}

// NextTierMin retourne le seuil d'XP du palier supérieur, pour afficher
// "XP restant avant promotion". Retourne (0, false) pour le palier le plus
// haut, ErrUnknownTier si l'identifiant n'existe pas.
func NextTierMin(tierID string) (int, bool, error) {
	for i, t := range Tiers {
		if t.ID != tierID {
			continue
		}
		if i == len(Tiers)-1 {
			return 0, false, nil
		}
		return Tiers[i+1].MinXP, true, nil
	}
	return 0, false, ErrUnknownTier
}

// validTier vérifie qu'un identifiant de ligue existe dans la table
func validTier(tierID string) bool {
	for _, t := range Tiers {
		if t.ID == tierID {
			return true
		}
	}
	return false
}
