package lessons

import (
	"sort"
	"sync"

	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
)

// Registry indexe le corpus statique de leçons. Les paquets de langue
// s'enregistrent dans leur init ; après le démarrage le corpus est en
// lecture seule.
type Registry struct {
	mu        sync.RWMutex
	byID      map[int]*model.Lesson
	languages map[string][]int
}

// Default est le registre global alimenté par les paquets de langue
var Default = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		byID:      make(map[int]*model.Lesson),
		languages: make(map[string][]int),
	}
}

// Register ajoute les leçons d'une langue au registre. Panique sur un
// identifiant dupliqué : le corpus est une donnée de build, pas une
// entrée utilisateur.
func (r *Registry) Register(language string, lessons []model.Lesson) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range lessons {
		lesson := lessons[i]
		lesson.Language = language
		if _, exists := r.byID[lesson.ID]; exists {
			panic("duplicate lesson id")
		}
		r.byID[lesson.ID] = &lesson
		r.languages[language] = append(r.languages[language], lesson.ID)
	}
	sort.Ints(r.languages[language])
}

// LessonByID retourne une leçon par identifiant
func (r *Registry) LessonByID(id int) (*model.Lesson, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lesson, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	cp := *lesson
	return &cp, true
}

// ByLanguage retourne les leçons d'une langue, triées par identifiant
func (r *Registry) ByLanguage(language string) []model.Lesson {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.languages[language]
	out := make([]model.Lesson, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.byID[id])
	}
	return out
}

// Languages retourne les langues disponibles, triées
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.languages))
	for lang := range r.languages {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Register alimente le registre global
func Register(language string, lessons []model.Lesson) {
	Default.Register(language, lessons)
}
