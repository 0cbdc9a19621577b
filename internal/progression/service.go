package progression

import (
	"context"
	"sync"
	"time"

	"github.com/LingoLeap/LingoLeap-backend/internal/logger"
	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
)

// Store persiste les enregistrements de progression et les tentatives de
// quiz. Les deux variantes (mémoire et Postgres) implémentent cette
// interface ; le moteur ne connaît pas le choix de stockage.
type Store interface {
	Record(email string) (*model.ProgressionRecord, bool, error)
	SaveRecord(rec *model.ProgressionRecord) error
	Records() ([]*model.ProgressionRecord, error)
	Attempt(email string, lessonID int) (*model.QuizAttempt, bool, error)
	SaveAttempt(att *model.QuizAttempt) error
	TrackedWeek() (string, error)
	SetTrackedWeek(week string) error
	ResetWeeklyXP() error
}

// Directory résout les profils des utilisateurs du classement
// (nom affiché, avatar, badges)
type Directory interface {
	Members(ctx context.Context, emails []string) (map[string]*model.UserProfile, error)
}

// LessonSource expose le corpus de leçons en lecture seule
type LessonSource interface {
	LessonByID(id int) (*model.Lesson, bool)
}

// XPJournal journalise les transactions d'XP. Facultatif : un échec de
// journalisation ne fait jamais échouer l'attribution.
type XPJournal interface {
	LogXP(ctx context.Context, tx *model.XPTransaction) error
}

// Paliers de streak qui débloquent un badge
var streakMilestones = map[int]string{
	5:   "streak_5",
	10:  "streak_10",
	30:  "streak_30",
	100: "streak_100",
}

// AwardResult est le résultat d'une attribution d'XP
type AwardResult struct {
	Record   model.ProgressionRecord `json:"record"`
	NewBadge string                  `json:"newBadge,omitempty"`
}

// Service est le propriétaire unique du registre de progression et du
// classement pour le processus. Un seul mutex protège les enregistrements,
// la semaine suivie et le cache du classement : le rollover hebdomadaire
// est un effet global et doit rester exactement-une-fois.
type Service struct {
	mu      sync.Mutex
	store   Store
	dir     Directory
	lessons LessonSource
	journal XPJournal
	clock   Clock

	cache []model.LeaderboardEntry
	stale bool
}

// NewService construit le service de progression. journal peut être nil.
func NewService(store Store, dir Directory, lessons LessonSource, journal XPJournal, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{
		store:   store,
		dir:     dir,
		lessons: lessons,
		journal: journal,
		clock:   clock,
		stale:   true,
	}
}

// Award attribue un montant d'XP positif à un utilisateur : rollover
// hebdomadaire éventuel, cumul total + hebdomadaire, mise à jour du streak.
// Le plafond du point d'entrée manuel (≤ 100) est une politique du caller,
// pas du moteur.
func (s *Service) Award(ctx context.Context, email string, amount int, source string, tags ...string) (AwardResult, error) {
	if amount <= 0 {
		return AwardResult{}, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.awardLocked(email, amount)
	if err != nil {
		return AwardResult{}, err
	}

	if s.journal != nil {
		tx := &model.XPTransaction{
			Email:     email,
			Amount:    amount,
			Source:    source,
			Tags:      tags,
			CreatedAt: s.clock.Now(),
		}
		if err := s.journal.LogXP(ctx, tx); err != nil {
			logger.Warning("could not journal xp transaction for %s: %v", email, err)
		}
	}

	return res, nil
}

// awardLocked exécute l'attribution sous le mutex du service
func (s *Service) awardLocked(email string, amount int) (AwardResult, error) {
	now := s.clock.Now()

	// Rollover avant lecture : un enregistrement relu après la remise à
	// zéro hebdomadaire ne doit pas réintroduire l'ancien compteur
	if err := s.rolloverLocked(now); err != nil {
		return AwardResult{}, err
	}

	rec, err := s.recordLocked(email, now)
	if err != nil {
		return AwardResult{}, err
	}

	rec.TotalXP += amount
	rec.WeeklyXP += amount

	// Streak : +1 sur un jour consécutif, retour à 1 après un trou de
	// plus d'un jour, inchangé le même jour. Jamais 0 une fois actif.
	newBadge := ""
	gap := s.clock.DayGap(rec.LastActive, now)
	switch {
	case gap == 1:
		rec.StreakDays++
		if badge, ok := streakMilestones[rec.StreakDays]; ok {
			newBadge = badge
		}
	case gap > 1:
		rec.StreakDays = 1
	}
	rec.LastActive = now

	if err := s.store.SaveRecord(rec); err != nil {
		return AwardResult{}, err
	}
	s.stale = true

	return AwardResult{Record: *rec, NewBadge: newBadge}, nil
}

// recordLocked retourne l'enregistrement d'un utilisateur, créé à la volée
// avec les valeurs par défaut lors du premier accès
func (s *Service) recordLocked(email string, now time.Time) (*model.ProgressionRecord, error) {
	rec, ok, err := s.store.Record(email)
	if err != nil {
		return nil, err
	}
	if ok {
		return rec, nil
	}
	rec = &model.ProgressionRecord{
		Email:      email,
		TotalXP:    0,
		WeeklyXP:   0,
		StreakDays: 1,
		LastActive: now,
	}
	if err := s.store.SaveRecord(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// rolloverLocked compare la semaine ISO courante à la semaine suivie et,
// au changement, remet l'XP hebdomadaire de tous les utilisateurs à zéro.
// Effet global déclenché par n'importe quelle attribution : tous les
// compteurs hebdomadaires partagent la même époque de classement.
func (s *Service) rolloverLocked(now time.Time) error {
	week := s.clock.WeekTag(now)
	tracked, err := s.store.TrackedWeek()
	if err != nil {
		return err
	}
	if tracked == week {
		return nil
	}
	if tracked != "" {
		if err := s.store.ResetWeeklyXP(); err != nil {
			return err
		}
		logger.Info("weekly leaderboard rollover: %s -> %s", tracked, week)
	}
	if err := s.store.SetTrackedWeek(week); err != nil {
		return err
	}
	s.stale = true
	return nil
}

// Stats retourne la vue "mes statistiques" d'un utilisateur. Une identité
// jamais active reçoit un état zéro, pas une erreur : un nouvel
// utilisateur doit pouvoir ouvrir l'écran de classement.
func (s *Service) Stats(ctx context.Context, email string) (*model.ProgressionStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &model.ProgressionStats{
		Email: email,
		Tier:  TierFor(0),
	}

	rec, ok, err := s.store.Record(email)
	if err != nil {
		return nil, err
	}
	if ok {
		stats.TotalXP = rec.TotalXP
		stats.WeeklyXP = rec.WeeklyXP
		stats.StreakDays = rec.StreakDays
		stats.Tier = TierFor(rec.TotalXP)
		stats.LastActive = rec.LastActive.Format(time.RFC3339)
	}

	if min, ok, err := NextTierMin(stats.Tier); err == nil && ok {
		stats.NextTierXP = &min
	}

	if err := s.rebuildLocked(ctx); err != nil {
		return nil, err
	}
	for _, e := range s.cache {
		if e.Email == email {
			stats.Rank = e.Rank
			break
		}
	}

	return stats, nil
}
