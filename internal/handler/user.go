package handler

import (
	"errors"
	"net/http"

	"github.com/LingoLeap/LingoLeap-backend/internal/middleware"
	"github.com/LingoLeap/LingoLeap-backend/internal/store"
	"github.com/LingoLeap/LingoLeap-backend/internal/utils"
	"github.com/gorilla/mux"
)

type UpdateUserRequest struct {
	Username       string `json:"username,omitempty"`
	NativeLanguage string `json:"nativeLanguage,omitempty"`
	TargetLanguage string `json:"targetLanguage,omitempty"`
	Level          string `json:"level,omitempty"`
}

// GetMe retourne le profil de l'utilisateur connecté
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	utils.Success(w, user)
}

// GetUser retourne un profil public par email
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	email := vars["email"]

	user, err := h.Users.ByEmail(r.Context(), email)
	if errors.Is(err, store.ErrUserNotFound) {
		utils.Error(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch user: "+err.Error())
		return
	}

	utils.Success(w, user)
}

// UpdateUser modifie le profil de l'utilisateur connecté
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req UpdateUserRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Username != "" && req.Username != user.Username {
		taken, err := h.Users.UsernameTaken(r.Context(), req.Username)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not check username: "+err.Error())
			return
		}
		if taken {
			utils.Error(w, http.StatusConflict, "username already taken")
			return
		}
		user.Username = req.Username
	}
	if req.NativeLanguage != "" {
		user.NativeLanguage = req.NativeLanguage
	}
	if req.TargetLanguage != "" {
		user.TargetLanguage = req.TargetLanguage
	}
	if req.Level != "" {
		user.Level = req.Level
	}

	if err := h.Users.Update(r.Context(), &user); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update user: "+err.Error())
		return
	}

	utils.MessageData(w, "profile updated", user)
}

// UploadAvatar téléverse un avatar vers Cloudinary et l'associe au profil
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if h.Cloudinary == nil {
		utils.Error(w, http.StatusServiceUnavailable, "avatar storage is not configured")
		return
	}

	// 5 Mo max
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer file.Close()

	url, err := h.Cloudinary.UploadAvatar(r.Context(), file, user.ID)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, "avatar upload failed: "+err.Error())
		return
	}

	if err := h.Users.SetAvatar(r.Context(), user.Email, url); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save avatar: "+err.Error())
		return
	}

	user.Avatar = url
	utils.MessageData(w, "avatar updated", map[string]string{"avatar": url})
}
