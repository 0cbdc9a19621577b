package handler

import (
	"net/http"

	"github.com/LingoLeap/LingoLeap-backend/internal/utils"
)

// Root affiche toutes les routes disponibles de l'API
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "LingoLeap API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/login", "description": "Connexion utilisateur"},
				{"method": "POST", "path": "/auth/logout", "description": "Déconnexion utilisateur"},
				{"method": "POST", "path": "/auth/signup", "description": "Inscription utilisateur"},
				{"method": "POST", "path": "/auth/register", "description": "Inscription utilisateur (alias)"},
				{"method": "POST", "path": "/auth/google", "description": "Authentification Google OAuth"},
				{"method": "POST", "path": "/auth/apple", "description": "Authentification Apple Sign In"},
			},
			"users": []map[string]string{
				{"method": "GET", "path": "/users/me", "description": "Profil de l'utilisateur connecté"},
				{"method": "PUT", "path": "/users/me", "description": "Mettre à jour le profil"},
				{"method": "POST", "path": "/users/me/avatar", "description": "Upload avatar utilisateur"},
				{"method": "GET", "path": "/users/{email}", "description": "Profil public par email"},
			},
			"lessons": []map[string]string{
				{"method": "GET", "path": "/lessons", "description": "Leçons disponibles (param: language)"},
				{"method": "GET", "path": "/lessons/{id}", "description": "Récupérer une leçon par ID"},
				{"method": "POST", "path": "/lessons/{id}/quiz", "description": "Soumettre les réponses d'un quiz"},
			},
			"progression": []map[string]string{
				{"method": "GET", "path": "/progression/stats", "description": "Statistiques de progression (XP, streak, ligue, rang)"},
				{"method": "POST", "path": "/progression/xp", "description": "Créditer de l'XP pour une activité hors quiz"},
				{"method": "GET", "path": "/progression/leagues", "description": "Table des ligues"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard", "description": "Classement hebdomadaire (param: limit)"},
				{"method": "GET", "path": "/leaderboard/tier/{tierId}", "description": "Classement d'une ligue"},
				{"method": "GET", "path": "/leaderboard/users/{email}", "description": "Rang d'un utilisateur"},
			},
			"ai": []map[string]string{
				{"method": "POST", "path": "/ai/story", "description": "Générer une histoire dans la langue cible"},
				{"method": "POST", "path": "/ai/chat", "description": "Conversation d'entraînement"},
				{"method": "POST", "path": "/ai/explain", "description": "Expliquer un mot en contexte"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour LingoLeap - Application d'apprentissage des langues",
			"contact":     "support@lingoleap.app",
		},
	}

	utils.Success(w, routes)
}
