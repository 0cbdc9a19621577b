package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/LingoLeap/LingoLeap-backend/internal/logger"
	"github.com/LingoLeap/LingoLeap-backend/internal/middleware"
	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
	"github.com/LingoLeap/LingoLeap-backend/internal/progression"
	"github.com/LingoLeap/LingoLeap-backend/internal/utils"
	"github.com/gorilla/mux"
)

type QuizSubmission struct {
	Answers []model.QuizAnswer `json:"answers"`
}

// SubmitQuiz corrige une soumission de quiz pour l'utilisateur connecté
func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	vars := mux.Vars(r)
	lessonID, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	var req QuizSubmission
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.Progression.Grade(r.Context(), user.Email, lessonID, req.Answers)
	if errors.Is(err, progression.ErrLessonNotFound) {
		utils.Error(w, http.StatusNotFound, "lesson not found")
		return
	}
	if errors.Is(err, progression.ErrNoQuizForLesson) {
		utils.Error(w, http.StatusBadRequest, "lesson has no quiz")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not grade quiz: "+err.Error())
		return
	}

	if result.NewBadge != "" {
		if err := h.Users.AddBadge(r.Context(), user.Email, result.NewBadge); err != nil {
			logger.Warning("could not persist badge %s for %s: %v", result.NewBadge, user.Email, err)
		}
	}

	utils.Success(w, result)
}
