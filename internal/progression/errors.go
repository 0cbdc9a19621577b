package progression

import "errors"

var (
	// ErrLessonNotFound : aucune leçon ne porte cet identifiant
	ErrLessonNotFound = errors.New("lesson not found")

	// ErrNoQuizForLesson : la leçon existe mais n'a aucune question
	ErrNoQuizForLesson = errors.New("lesson has no quiz")

	// ErrInvalidAmount : montant d'XP nul ou négatif
	ErrInvalidAmount = errors.New("xp amount must be positive")

	// ErrUnknownTier : identifiant de ligue absent de la table
	ErrUnknownTier = errors.New("unknown league tier")
)
