package handler

import (
	"net/http"

	"github.com/LingoLeap/LingoLeap-backend/internal/generator"
	"github.com/LingoLeap/LingoLeap-backend/internal/middleware"
	"github.com/LingoLeap/LingoLeap-backend/internal/utils"
)

type StoryRequest struct {
	Topic string `json:"topic"`
	Level string `json:"level,omitempty"`
}

type ChatRequest struct {
	Message string               `json:"message"`
	History []generator.ChatTurn `json:"history,omitempty"`
}

type ExplainRequest struct {
	Word    string `json:"word"`
	Context string `json:"context,omitempty"`
}

// GenerateStory génère une courte histoire dans la langue cible de l'utilisateur
func (h *Handler) GenerateStory(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if h.Generator == nil {
		utils.Error(w, http.StatusServiceUnavailable, "text generation is not configured")
		return
	}

	var req StoryRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Topic == "" {
		utils.Error(w, http.StatusBadRequest, "topic is required")
		return
	}

	level := req.Level
	if level == "" {
		level = user.Level
	}

	story, err := h.Generator.GenerateStory(r.Context(), generator.StoryPrompt{
		TargetLanguage: user.TargetLanguage,
		NativeLanguage: user.NativeLanguage,
		Level:          level,
		Topic:          req.Topic,
	})
	if err != nil {
		utils.Error(w, http.StatusBadGateway, "story generation failed: "+err.Error())
		return
	}

	utils.Success(w, map[string]string{"story": story})
}

// PracticeChat fait avancer une conversation d'entraînement
func (h *Handler) PracticeChat(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if h.Generator == nil {
		utils.Error(w, http.StatusServiceUnavailable, "text generation is not configured")
		return
	}

	var req ChatRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Message == "" {
		utils.Error(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.Generator.Practice(r.Context(), generator.ChatPrompt{
		TargetLanguage: user.TargetLanguage,
		Level:          user.Level,
		History:        req.History,
		Message:        req.Message,
	})
	if err != nil {
		utils.Error(w, http.StatusBadGateway, "chat generation failed: "+err.Error())
		return
	}

	utils.Success(w, map[string]string{"reply": reply})
}

// ExplainWord explique un mot de la langue cible dans la langue maternelle
func (h *Handler) ExplainWord(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if h.Generator == nil {
		utils.Error(w, http.StatusServiceUnavailable, "text generation is not configured")
		return
	}

	var req ExplainRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Word == "" {
		utils.Error(w, http.StatusBadRequest, "word is required")
		return
	}

	explanation, err := h.Generator.ExplainWord(r.Context(), generator.WordPrompt{
		Word:           req.Word,
		Context:        req.Context,
		TargetLanguage: user.TargetLanguage,
		NativeLanguage: user.NativeLanguage,
	})
	if err != nil {
		utils.Error(w, http.StatusBadGateway, "explanation failed: "+err.Error())
		return
	}

	utils.Success(w, map[string]string{"explanation": explanation})
}
