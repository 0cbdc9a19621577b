package handler

import (
	"net/http"
	"strconv"

	"github.com/LingoLeap/LingoLeap-backend/internal/utils"
	"github.com/gorilla/mux"
)

// GetLessons liste les leçons, filtrées par langue si ?language= est fourni
func (h *Handler) GetLessons(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	if language != "" {
		utils.Success(w, h.Lessons.ByLanguage(language))
		return
	}

	all := map[string]interface{}{}
	for _, lang := range h.Lessons.Languages() {
		all[lang] = h.Lessons.ByLanguage(lang)
	}
	utils.Success(w, all)
}

// GetLesson retourne une leçon par identifiant
func (h *Handler) GetLesson(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	lesson, ok := h.Lessons.LessonByID(id)
	if !ok {
		utils.Error(w, http.StatusNotFound, "lesson not found")
		return
	}

	utils.Success(w, lesson)
}
