package model

import (
	"time"
)

// ProgressionRecord est le registre de progression d'un utilisateur,
// identifié par son email
type ProgressionRecord struct {
	Email      string    `json:"email"`
	TotalXP    int       `json:"totalXp"`
	WeeklyXP   int       `json:"weeklyXp"`
	StreakDays int       `json:"streakDays"`
	LastActive time.Time `json:"lastActive"`
}

// QuizAttempt suit les tentatives d'un utilisateur sur un quiz de leçon.
// Le compteur attempts est incrémenté à chaque soumission, réussie ou non.
type QuizAttempt struct {
	Email       string    `json:"email"`
	LessonID    int       `json:"lessonId"`
	Completed   bool      `json:"completed"`
	Score       int       `json:"score"`
	Attempts    int       `json:"attempts"`
	LastAttempt time.Time `json:"lastAttempt"`
}

// XPTransaction journalise chaque gain d'XP (leçon, quiz, bonus manuel...)
type XPTransaction struct {
	ID        string    `json:"id,omitempty"`
	Email     string    `json:"email"`
	Amount    int       `json:"amount"`
	Source    string    `json:"source"` // quiz, manual, streak...
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProgressionStats est la vue "mes statistiques" renvoyée par l'API
type ProgressionStats struct {
	Email        string `json:"email"`
	TotalXP      int    `json:"totalXp"`
	WeeklyXP     int    `json:"weeklyXp"`
	StreakDays   int    `json:"streakDays"`
	Tier         string `json:"tier"`
	NextTierXP   *int   `json:"nextTierXp,omitempty"` // XP total requis pour la promotion
	Rank         int    `json:"rank,omitempty"`       // position sur le classement, 0 si absent
	LastActive   string `json:"lastActive,omitempty"`
	BadgesEarned int    `json:"badgesEarned"`
}
