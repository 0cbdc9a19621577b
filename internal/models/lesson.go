package model

// Question est une question de quiz avec sa réponse de référence.
// Options est vide pour les questions à réponse libre.
type Question struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Answer  string   `json:"-"` // jamais exposée au client
	Options []string `json:"options,omitempty"`
}

// Lesson est une leçon statique du corpus, en lecture seule
type Lesson struct {
	ID        int        `json:"id"`
	Language  string     `json:"language"`
	Level     string     `json:"level"`
	Title     string     `json:"title"`
	Content   string     `json:"content,omitempty"`
	Questions []Question `json:"questions,omitempty"`
}

// QuizAnswer est une réponse soumise pour une question donnée
type QuizAnswer struct {
	QuestionID int    `json:"questionId"`
	Answer     string `json:"answer"`
}

// QuestionResult détaille la correction d'une question
type QuestionResult struct {
	QuestionID    int    `json:"questionId"`
	Prompt        string `json:"prompt"`
	Submitted     string `json:"submitted"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// QuizResult est le résultat complet d'une correction de quiz
type QuizResult struct {
	LessonID       int              `json:"lessonId"`
	Score          int              `json:"score"`
	Passed         bool             `json:"passed"`
	CorrectCount   int              `json:"correctCount"`
	TotalQuestions int              `json:"totalQuestions"`
	Attempts       int              `json:"attempts"`
	XPEarned       int              `json:"xpEarned"`
	TotalXP        int              `json:"totalXp"`
	Tier           string           `json:"tier"`
	StreakDays     int              `json:"streakDays"`
	NewBadge       string           `json:"newBadge,omitempty"`
	Breakdown      []QuestionResult `json:"breakdown"`
}
