package spanish_test

import (
	"testing"

	"github.com/LingoLeap/LingoLeap-backend/internal/lessons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/LingoLeap/LingoLeap-backend/internal/lessons/spanish"
)

func TestCorpusRegisteredInDefault(t *testing.T) {
	assert.Contains(t, lessons.Default.Languages(), "spanish")

	all := lessons.Default.ByLanguage("spanish")
	require.NotEmpty(t, all)

	for _, lesson := range all {
		assert.Equal(t, "spanish", lesson.Language)
		seen := map[int]bool{}
		for _, q := range lesson.Questions {
			assert.NotEmpty(t, q.Answer, "lesson %d question %d", lesson.ID, q.ID)
			assert.False(t, seen[q.ID], "duplicate question id in lesson %d", lesson.ID)
			seen[q.ID] = true
		}
	}
}
