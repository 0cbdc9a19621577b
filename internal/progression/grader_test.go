package progression

import (
	"context"
	"testing"

	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quizLessons() stubLessons {
	return stubLessons{
		1: {
			ID:       1,
			Language: "spanish",
			Title:    "Saludos",
			Questions: []model.Question{
				{ID: 1, Prompt: "Traduire « bonjour »", Answer: "hola"},
				{ID: 2, Prompt: "Traduire « merci »", Answer: "gracias"},
				{ID: 3, Prompt: "Traduire « au revoir »", Answer: "adiós"},
			},
		},
		2: {
			ID:       2,
			Language: "spanish",
			Title:    "Nombres",
			Questions: []model.Question{
				{ID: 10, Prompt: "1", Answer: "uno"},
				{ID: 11, Prompt: "2", Answer: "dos"},
				{ID: 12, Prompt: "3", Answer: "tres"},
				{ID: 13, Prompt: "4", Answer: "cuatro"},
			},
		},
		3: {ID: 3, Language: "spanish", Title: "Lecture seule"},
	}
}

func TestGradePerfectFirstTry(t *testing.T) {
	svc, _, _, _ := newTestService(quizLessons())

	res, err := svc.Grade(context.Background(), "ana@test.io", 1, []model.QuizAnswer{
		{QuestionID: 1, Answer: "hola"},
		{QuestionID: 2, Answer: "gracias"},
		{QuestionID: 3, Answer: "adiós"},
	})
	require.NoError(t, err)

	assert.Equal(t, 100, res.Score)
	assert.True(t, res.Passed)
	assert.Equal(t, 3, res.CorrectCount)
	assert.Equal(t, 1, res.Attempts)
	// 50 de base + 25 score parfait + 25 première tentative
	assert.Equal(t, 100, res.XPEarned)
	assert.Equal(t, 100, res.TotalXP)
	assert.Equal(t, "bronze", res.Tier)
	assert.Equal(t, 1, res.StreakDays)
	assert.Len(t, res.Breakdown, 3)
}

func TestGradeBelowThresholdFails(t *testing.T) {
	svc, _, _, _ := newTestService(quizLessons())

	res, err := svc.Grade(context.Background(), "ana@test.io", 1, []model.QuizAnswer{
		{QuestionID: 1, Answer: "hola"},
		{QuestionID: 2, Answer: "gracias"},
		{QuestionID: 3, Answer: "hasta luego"},
	})
	require.NoError(t, err)

	assert.Equal(t, 66, res.Score)
	assert.False(t, res.Passed)
	assert.Equal(t, 0, res.XPEarned)
	assert.Equal(t, 0, res.TotalXP)
	assert.Equal(t, 1, res.Attempts)
}

func TestGradePassWithoutPerfectScore(t *testing.T) {
	svc, _, _, _ := newTestService(quizLessons())

	res, err := svc.Grade(context.Background(), "ana@test.io", 2, []model.QuizAnswer{
		{QuestionID: 10, Answer: "uno"},
		{QuestionID: 11, Answer: "dos"},
		{QuestionID: 12, Answer: "tres"},
		{QuestionID: 13, Answer: "cinco"},
	})
	require.NoError(t, err)

	assert.Equal(t, 75, res.Score)
	assert.True(t, res.Passed)
	// 50 de base + 25 première tentative, pas de bonus parfait
	assert.Equal(t, 75, res.XPEarned)
}

func TestGradeSecondTryLosesFirstTryBonus(t *testing.T) {
	svc, _, _, _ := newTestService(quizLessons())
	ctx := context.Background()

	_, err := svc.Grade(ctx, "ana@test.io", 1, nil)
	require.NoError(t, err)

	res, err := svc.Grade(ctx, "ana@test.io", 1, []model.QuizAnswer{
		{QuestionID: 1, Answer: "hola"},
		{QuestionID: 2, Answer: "gracias"},
		{QuestionID: 3, Answer: "adiós"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Attempts)
	// 50 de base + 25 score parfait, bonus première tentative perdu
	assert.Equal(t, 75, res.XPEarned)
}

func TestGradeOmittedQuestionsCountAgainst(t *testing.T) {
	svc, _, _, _ := newTestService(quizLessons())

	res, err := svc.Grade(context.Background(), "ana@test.io", 1, []model.QuizAnswer{
		{QuestionID: 1, Answer: "hola"},
	})
	require.NoError(t, err)

	assert.Equal(t, 33, res.Score)
	assert.False(t, res.Passed)
	assert.Equal(t, 1, res.CorrectCount)
	assert.Equal(t, 3, res.TotalQuestions)
}

func TestGradeIgnoresUnknownQuestionIDs(t *testing.T) {
	svc, _, _, _ := newTestService(quizLessons())

	res, err := svc.Grade(context.Background(), "ana@test.io", 1, []model.QuizAnswer{
		{QuestionID: 1, Answer: "hola"},
		{QuestionID: 2, Answer: "gracias"},
		{QuestionID: 3, Answer: "adiós"},
		{QuestionID: 99, Answer: "hola"},
	})
	require.NoError(t, err)

	assert.Equal(t, 100, res.Score)
	assert.Equal(t, 3, res.CorrectCount)
}

func TestGradeMatchingIsCaseAndSpaceInsensitive(t *testing.T) {
	svc, _, _, _ := newTestService(quizLessons())

	res, err := svc.Grade(context.Background(), "ana@test.io", 1, []model.QuizAnswer{
		{QuestionID: 1, Answer: "  HOLA  "},
		{QuestionID: 2, Answer: "Gracias"},
		{QuestionID: 3, Answer: " adiós"},
	})
	require.NoError(t, err)

	assert.Equal(t, 100, res.Score)
	assert.True(t, res.Passed)
}

func TestGradeLastAnswerWinsPerQuestion(t *testing.T) {
	svc, _, _, _ := newTestService(quizLessons())

	res, err := svc.Grade(context.Background(), "ana@test.io", 1, []model.QuizAnswer{
		{QuestionID: 1, Answer: "adiós"},
		{QuestionID: 1, Answer: "hola"},
		{QuestionID: 2, Answer: "gracias"},
		{QuestionID: 3, Answer: "adiós"},
	})
	require.NoError(t, err)

	assert.Equal(t, 100, res.Score)
}

func TestGradeUnknownLesson(t *testing.T) {
	svc, _, _, _ := newTestService(quizLessons())

	_, err := svc.Grade(context.Background(), "ana@test.io", 404, nil)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestGradeLessonWithoutQuestions(t *testing.T) {
	svc, _, _, _ := newTestService(quizLessons())

	_, err := svc.Grade(context.Background(), "ana@test.io", 3, nil)
	assert.ErrorIs(t, err, ErrNoQuizForLesson)
}

func TestGradeAttemptsAccumulate(t *testing.T) {
	svc, st, _, _ := newTestService(quizLessons())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Grade(ctx, "ana@test.io", 1, nil)
		require.NoError(t, err)
	}

	att, ok, err := st.Attempt("ana@test.io", 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, att.Attempts)
	assert.False(t, att.Completed)
	assert.Equal(t, 0, att.Score)
}

func TestGradeFeedsStreak(t *testing.T) {
	svc, _, _, clock := newTestService(quizLessons())
	ctx := context.Background()

	perfect := []model.QuizAnswer{
		{QuestionID: 1, Answer: "hola"},
		{QuestionID: 2, Answer: "gracias"},
		{QuestionID: 3, Answer: "adiós"},
	}

	_, err := svc.Grade(ctx, "ana@test.io", 1, perfect)
	require.NoError(t, err)

	clock.advanceDays(1)
	res, err := svc.Grade(ctx, "ana@test.io", 1, perfect)
	require.NoError(t, err)
	assert.Equal(t, 2, res.StreakDays)
}

func TestGradeFailedQuizDoesNotTouchProgression(t *testing.T) {
	svc, st, _, _ := newTestService(quizLessons())

	_, err := svc.Grade(context.Background(), "ana@test.io", 1, nil)
	require.NoError(t, err)

	_, ok, err := st.Record("ana@test.io")
	require.NoError(t, err)
	assert.False(t, ok)
}
