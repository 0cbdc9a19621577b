package api

import (
	"net/http"

	"github.com/LingoLeap/LingoLeap-backend/internal/handler"
	"github.com/LingoLeap/LingoLeap-backend/internal/logger"
	"github.com/LingoLeap/LingoLeap-backend/internal/middleware"
	"github.com/gorilla/mux"
)

func SetupRouter(h *handler.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", h.Root).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	r.HandleFunc("/auth/signup", h.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/google", h.GoogleAuth).Methods(http.MethodPost)
	r.HandleFunc("/auth/apple", h.AppleAuth).Methods(http.MethodPost)

	// Users
	authenticatedRoutes.HandleFunc("/users/me", h.GetMe).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/me", h.UpdateUser).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/users/me/avatar", h.UploadAvatar).Methods(http.MethodPost)
	r.HandleFunc("/users/{email}", h.GetUser).Methods(http.MethodGet)

	// Lessons & quiz
	r.HandleFunc("/lessons", h.GetLessons).Methods(http.MethodGet)
	r.HandleFunc("/lessons/{id}", h.GetLesson).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/lessons/{id}/quiz", h.SubmitQuiz).Methods(http.MethodPost)

	// Progression
	authenticatedRoutes.HandleFunc("/progression/stats", h.GetMyStats).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/progression/xp", h.AddXP).Methods(http.MethodPost)
	r.HandleFunc("/progression/leagues", h.GetLeagueTable).Methods(http.MethodGet)

	// Leaderboard
	r.HandleFunc("/leaderboard", h.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/tier/{tierId}", h.GetLeaderboardByTier).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/users/{email}", h.GetUserRank).Methods(http.MethodGet)

	// AI
	authenticatedRoutes.HandleFunc("/ai/story", h.GenerateStory).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/ai/chat", h.PracticeChat).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/ai/explain", h.ExplainWord).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("404 Not Found: %s %s", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
