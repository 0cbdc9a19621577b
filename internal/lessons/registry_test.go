package lessons

import (
	"testing"

	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRegistry() *Registry {
	r := NewRegistry()
	r.Register("spanish", []model.Lesson{
		{ID: 2, Title: "Números"},
		{ID: 1, Title: "Saludos"},
	})
	r.Register("french", []model.Lesson{
		{ID: 10, Title: "Salutations"},
	})
	return r
}

func TestLessonByID(t *testing.T) {
	r := seedRegistry()

	lesson, ok := r.LessonByID(1)
	require.True(t, ok)
	assert.Equal(t, "Saludos", lesson.Title)
	assert.Equal(t, "spanish", lesson.Language)

	_, ok = r.LessonByID(404)
	assert.False(t, ok)
}

func TestLessonByIDReturnsCopy(t *testing.T) {
	r := seedRegistry()

	lesson, ok := r.LessonByID(1)
	require.True(t, ok)
	lesson.Title = "mutated"

	again, _ := r.LessonByID(1)
	assert.Equal(t, "Saludos", again.Title)
}

func TestByLanguageSortedByID(t *testing.T) {
	r := seedRegistry()

	lessons := r.ByLanguage("spanish")
	require.Len(t, lessons, 2)
	assert.Equal(t, 1, lessons[0].ID)
	assert.Equal(t, 2, lessons[1].ID)

	assert.Empty(t, r.ByLanguage("klingon"))
}

func TestLanguagesSorted(t *testing.T) {
	r := seedRegistry()
	assert.Equal(t, []string{"french", "spanish"}, r.Languages())
}

func TestRegisterPanicsOnDuplicateID(t *testing.T) {
	r := seedRegistry()
	assert.Panics(t, func() {
		r.Register("italian", []model.Lesson{{ID: 1, Title: "Saluti"}})
	})
}
