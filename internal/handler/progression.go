package handler

import (
	"errors"
	"net/http"

	"github.com/LingoLeap/LingoLeap-backend/internal/logger"
	"github.com/LingoLeap/LingoLeap-backend/internal/middleware"
	"github.com/LingoLeap/LingoLeap-backend/internal/progression"
	"github.com/LingoLeap/LingoLeap-backend/internal/utils"
)

// Plafond du point d'entrée manuel : politique du transport, le moteur
// accepte tout montant positif
const maxManualXP = 100

type AddXPRequest struct {
	Amount   int    `json:"amount"`
	Activity string `json:"activity"`
}

// AddXP attribue un bonus d'XP manuel à l'utilisateur connecté
// (lecture terminée, session de conversation...)
func (h *Handler) AddXP(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req AddXPRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Amount <= 0 || req.Amount > maxManualXP {
		utils.Error(w, http.StatusBadRequest, "amount must be between 1 and 100")
		return
	}

	var tags []string
	if req.Activity != "" {
		tags = []string{req.Activity}
	}

	result, err := h.Progression.Award(r.Context(), user.Email, req.Amount, "manual", tags...)
	if errors.Is(err, progression.ErrInvalidAmount) {
		utils.Error(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not award xp: "+err.Error())
		return
	}

	if result.NewBadge != "" {
		if err := h.Users.AddBadge(r.Context(), user.Email, result.NewBadge); err != nil {
			logger.Warning("could not persist badge %s for %s: %v", result.NewBadge, user.Email, err)
		}
	}

	utils.Success(w, result)
}

// GetMyStats retourne la progression de l'utilisateur connecté. Une
// identité sans activité reçoit un état zéro, jamais une erreur.
func (h *Handler) GetMyStats(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	stats, err := h.Progression.Stats(r.Context(), user.Email)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch stats: "+err.Error())
		return
	}
	stats.BadgesEarned = len(user.Badges)

	utils.Success(w, stats)
}
