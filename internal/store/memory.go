package store

import (
	"context"
	"fmt"

	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
)

// MemoryProgression est la variante en mémoire du stockage de progression.
// La synchronisation est assurée par le mutex du service de progression :
// le store lui-même reste de simples maps.
type MemoryProgression struct {
	records  map[string]*model.ProgressionRecord
	order    []string // ordre d'insertion, itération déterministe
	attempts map[string]*model.QuizAttempt
	week     string
}

func NewMemoryProgression() *MemoryProgression {
	return &MemoryProgression{
		records:  make(map[string]*model.ProgressionRecord),
		attempts: make(map[string]*model.QuizAttempt),
	}
}

func (m *MemoryProgression) Record(email string) (*model.ProgressionRecord, bool, error) {
	rec, ok := m.records[email]
	if !ok {
		return nil, false, nil
	}
	cp := *rec
	return &cp, true, nil
}

func (m *MemoryProgression) SaveRecord(rec *model.ProgressionRecord) error {
	if _, ok := m.records[rec.Email]; !ok {
		m.order = append(m.order, rec.Email)
	}
	cp := *rec
	m.records[rec.Email] = &cp
	return nil
}

func (m *MemoryProgression) Records() ([]*model.ProgressionRecord, error) {
	out := make([]*model.ProgressionRecord, 0, len(m.order))
	for _, email := range m.order {
		cp := *m.records[email]
		out = append(out, &cp)
	}
	return out, nil
}

func attemptKey(email string, lessonID int) string {
	return fmt.Sprintf("%s#%d", email, lessonID)
}

func (m *MemoryProgression) Attempt(email string, lessonID int) (*model.QuizAttempt, bool, error) {
	att, ok := m.attempts[attemptKey(email, lessonID)]
	if !ok {
		return nil, false, nil
	}
	cp := *att
	return &cp, true, nil
}

func (m *MemoryProgression) SaveAttempt(att *model.QuizAttempt) error {
	cp := *att
	m.attempts[attemptKey(att.Email, att.LessonID)] = &cp
	return nil
}

func (m *MemoryProgression) TrackedWeek() (string, error) {
	return m.week, nil
}

func (m *MemoryProgression) SetTrackedWeek(week string) error {
	m.week = week
	return nil
}

func (m *MemoryProgression) ResetWeeklyXP() error {
	for _, rec := range m.records {
		rec.WeeklyXP = 0
	}
	return nil
}

// MemoryDirectory résout les profils depuis une map en mémoire.
// Utilisé par les tests et par le mode sans base de données.
type MemoryDirectory struct {
	users map[string]*model.UserProfile
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{users: make(map[string]*model.UserProfile)}
}

func (d *MemoryDirectory) Put(user *model.UserProfile) {
	cp := *user
	d.users[user.Email] = &cp
}

func (d *MemoryDirectory) Members(_ context.Context, emails []string) (map[string]*model.UserProfile, error) {
	out := make(map[string]*model.UserProfile, len(emails))
	for _, email := range emails {
		if u, ok := d.users[email]; ok {
			cp := *u
			out[email] = &cp
		}
	}
	return out, nil
}
