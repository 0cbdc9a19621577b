package model

// LeagueTier est un palier fixe de la table des ligues.
// MaxXP vaut -1 pour le palier ouvert le plus haut.
type LeagueTier struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	MinXP int    `json:"minXp"`
	MaxXP int    `json:"maxXp"`
	Icon  string `json:"icon,omitempty"`
}

type LeaderboardEntry struct {
	Email      string   `json:"email"`
	UserName   string   `json:"userName"`
	Avatar     string   `json:"avatar,omitempty"`
	Rank       int      `json:"rank"`
	WeeklyXP   int      `json:"weeklyXp"`
	TotalXP    int      `json:"totalXp"`
	Tier       string   `json:"tier"`
	StreakDays int      `json:"streakDays"`
	Badges     []string `json:"badges,omitempty"`
}

type UserRank struct {
	Email      string  `json:"email"`
	Rank       int     `json:"rank"`
	WeeklyXP   int     `json:"weeklyXp"`
	TotalUsers int     `json:"totalUsers"`
	Percentile float64 `json:"percentile"` // Top X%
}
