package progression

import (
	"context"
	"strings"

	"github.com/LingoLeap/LingoLeap-backend/internal/logger"
	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
)

// Récompenses d'XP du quiz
const (
	quizPassXP        = 50 // score >= passingScore
	quizPerfectBonus  = 25 // score == 100
	quizFirstTryBonus = 25 // toute première tentative sur la leçon
	passingScore      = 70
)

// Grade corrige une soumission de quiz contre la leçon de référence, met à
// jour la tentative de l'utilisateur et attribue l'XP en cas de réussite.
//
// Les réponses portant un identifiant de question inconnu sont ignorées
// sans erreur (ni correctes ni incorrectes). Le score est calculé sur le
// nombre total de questions de la leçon : les questions omises pèsent
// comme des réponses fausses.
func (s *Service) Grade(ctx context.Context, email string, lessonID int, answers []model.QuizAnswer) (*model.QuizResult, error) {
	lesson, ok := s.lessons.LessonByID(lessonID)
	if !ok {
		return nil, ErrLessonNotFound
	}
	if len(lesson.Questions) == 0 {
		return nil, ErrNoQuizForLesson
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Dernière réponse soumise par question ; les identifiants inconnus
	// sont écartés ici
	submitted := make(map[int]string, len(answers))
	for _, a := range answers {
		submitted[a.QuestionID] = a.Answer
	}

	correct := 0
	breakdown := make([]model.QuestionResult, 0, len(lesson.Questions))
	for _, q := range lesson.Questions {
		answer, answered := submitted[q.ID]
		isCorrect := answered && answerMatches(answer, q.Answer)
		if isCorrect {
			correct++
		}
		breakdown = append(breakdown, model.QuestionResult{
			QuestionID:    q.ID,
			Prompt:        q.Prompt,
			Submitted:     answer,
			CorrectAnswer: q.Answer,
			IsCorrect:     isCorrect,
		})
	}

	total := len(lesson.Questions)
	score := correct * 100 / total
	passed := score >= passingScore

	att, err := s.attemptLocked(email, lessonID)
	if err != nil {
		return nil, err
	}
	att.Attempts++
	att.Completed = passed
	att.Score = score
	att.LastAttempt = s.clock.Now()
	if err := s.store.SaveAttempt(att); err != nil {
		return nil, err
	}

	result := &model.QuizResult{
		LessonID:       lessonID,
		Score:          score,
		Passed:         passed,
		CorrectCount:   correct,
		TotalQuestions: total,
		Attempts:       att.Attempts,
		Breakdown:      breakdown,
	}

	if passed {
		reward := quizPassXP
		if score == 100 {
			reward += quizPerfectBonus
		}
		if att.Attempts == 1 {
			reward += quizFirstTryBonus
		}
		if reward > 0 {
			award, err := s.awardLocked(email, reward)
			if err != nil {
				return nil, err
			}
			result.XPEarned = reward
			result.NewBadge = award.NewBadge
			if s.journal != nil {
				tx := &model.XPTransaction{
					Email:     email,
					Amount:    reward,
					Source:    "quiz",
					CreatedAt: s.clock.Now(),
				}
				if err := s.journal.LogXP(ctx, tx); err != nil {
					logger.Warning("could not journal xp transaction for %s: %v", email, err)
				}
			}
		}
	}

	// Relecture du registre pour la réponse : XP total, ligue, streak
	if rec, ok, err := s.store.Record(email); err != nil {
		return nil, err
	} else if ok {
		result.TotalXP = rec.TotalXP
		result.StreakDays = rec.StreakDays
	}
	result.Tier = TierFor(result.TotalXP)

	return result, nil
}

// attemptLocked retourne la tentative (utilisateur, leçon), créée à vide
// au premier accès
func (s *Service) attemptLocked(email string, lessonID int) (*model.QuizAttempt, error) {
	att, ok, err := s.store.Attempt(email, lessonID)
	if err != nil {
		return nil, err
	}
	if ok {
		return att, nil
	}
	return &model.QuizAttempt{Email: email, LessonID: lessonID}, nil
}

// answerMatches compare une réponse soumise à la réponse de référence,
// sans tenir compte de la casse ni des espaces en bordure
func answerMatches(submitted, reference string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(reference))
}
