// Package generator encapsule l'appel au modèle de génération de texte :
// le reste du système lui passe un prompt structuré et reçoit une chaîne.
package generator

import "context"

// StoryPrompt décrit une histoire à générer pour un apprenant
type StoryPrompt struct {
	TargetLanguage string
	NativeLanguage string
	Level          string // beginner, intermediate, advanced
	Topic          string
}

// ChatPrompt décrit un tour de conversation d'entraînement
type ChatPrompt struct {
	TargetLanguage string
	Level          string
	History        []ChatTurn
	Message        string
}

type ChatTurn struct {
	Role    string `json:"role"` // user ou assistant
	Content string `json:"content"`
}

// WordPrompt décrit un mot à expliquer dans son contexte
type WordPrompt struct {
	Word           string
	Context        string
	TargetLanguage string
	NativeLanguage string
}

// Generator produit du texte à partir d'un prompt structuré
type Generator interface {
	GenerateStory(ctx context.Context, p StoryPrompt) (string, error)
	Practice(ctx context.Context, p ChatPrompt) (string, error)
	ExplainWord(ctx context.Context, p WordPrompt) (string, error)
}
