package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/LingoLeap/LingoLeap-backend/internal/progression"
	"github.com/LingoLeap/LingoLeap-backend/internal/utils"
	"github.com/gorilla/mux"
)

// GetLeaderboard retourne le classement hebdomadaire (param: limit)
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	entries, err := h.Progression.Leaderboard(r.Context(), limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not build leaderboard: "+err.Error())
		return
	}

	utils.Success(w, entries)
}

// GetLeaderboardByTier retourne le classement d'une seule ligue
func (h *Handler) GetLeaderboardByTier(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tierID := vars["tierId"]

	entries, err := h.Progression.FilteredByTier(r.Context(), tierID)
	if errors.Is(err, progression.ErrUnknownTier) {
		utils.Error(w, http.StatusNotFound, "unknown league tier")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not build leaderboard: "+err.Error())
		return
	}

	utils.Success(w, entries)
}

// GetUserRank retourne le rang d'un utilisateur dans le classement
func (h *Handler) GetUserRank(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	email := vars["email"]

	rank, err := h.Progression.RankOf(r.Context(), email)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch user rank: "+err.Error())
		return
	}

	utils.Success(w, rank)
}

// GetLeagueTable retourne la table statique des ligues
func (h *Handler) GetLeagueTable(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, h.Progression.LeagueTable())
}
