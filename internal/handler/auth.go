package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/LingoLeap/LingoLeap-backend/internal/identity"
	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
	"github.com/LingoLeap/LingoLeap-backend/internal/store"
	"github.com/LingoLeap/LingoLeap-backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email          string `json:"email"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	NativeLanguage string `json:"nativeLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	Level          string `json:"level"`
}

type OAuthRequest struct {
	Token string `json:"token"`
	Name  string `json:"name"` // Apple : fourni par le client au premier login
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, hashedPassword, err := h.Users.ByEmailWithPassword(r.Context(), req.Email)
	if err != nil || hashedPassword == "" {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	h.respondWithSession(w, r, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token, err := utils.GetToken(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing token")
		return
	}

	if err := utils.InvalidateSession(r.Context(), token); err != nil {
		utils.Error(w, http.StatusNotFound, "session not found or already logged out")
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}

// Register (alias de Signup pour correspondre à l'API du client)
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	h.Signup(w, r)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	if _, err := h.Users.ByEmail(r.Context(), req.Email); err == nil {
		utils.Error(w, http.StatusConflict, "email already registered")
		return
	}

	if req.Username != "" {
		taken, err := h.Users.UsernameTaken(r.Context(), req.Username)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not check username: "+err.Error())
			return
		}
		if taken {
			utils.Error(w, http.StatusConflict, "username already taken")
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password")
		return
	}

	profile := &model.UserProfile{
		Email:          req.Email,
		Username:       req.Username,
		NativeLanguage: req.NativeLanguage,
		TargetLanguage: req.TargetLanguage,
		Level:          req.Level,
		Provider:       "email",
	}
	profile.Avatar = utils.DefaultAvatarURL(profile.DisplayName())

	user, err := h.Users.Create(r.Context(), profile, string(hashed))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create user: "+err.Error())
		return
	}

	h.respondWithSession(w, r, user)
}

// GoogleAuth authentifie via un ID token Google
func (h *Handler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	h.oauthLogin(w, r, h.Google)
}

// AppleAuth authentifie via un identity token Apple Sign In
func (h *Handler) AppleAuth(w http.ResponseWriter, r *http.Request) {
	h.oauthLogin(w, r, h.Apple)
}

func (h *Handler) oauthLogin(w http.ResponseWriter, r *http.Request, verifier identity.Verifier) {
	var req OAuthRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := verifier.Verify(r.Context(), req.Token)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "could not verify identity token")
		return
	}
	if id.Name == "" {
		id.Name = req.Name
	}

	user, err := h.findOrCreateOAuthUser(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not sign in: "+err.Error())
		return
	}

	h.respondWithSession(w, r, user)
}

// findOrCreateOAuthUser retrouve un compte par couple (provider, subject),
// puis par email, et le crée sinon
func (h *Handler) findOrCreateOAuthUser(ctx context.Context, id *identity.Identity) (*model.UserProfile, error) {
	user, err := h.Users.ByOAuth(ctx, id.Provider, id.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return nil, err
	}

	user, err = h.Users.ByEmail(ctx, id.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return nil, err
	}

	username, err := store.SuggestUsername(ctx, h.Users, usernameBase(id))
	if err != nil {
		return nil, err
	}

	profile := &model.UserProfile{
		Email:        id.Email,
		Username:     username,
		Provider:     id.Provider,
		OAuthSubject: id.Subject,
	}
	profile.Avatar = utils.DefaultAvatarURL(profile.DisplayName())

	return h.Users.Create(ctx, profile, "")
}

func usernameBase(id *identity.Identity) string {
	if id.Name != "" {
		return strings.ReplaceAll(strings.ToLower(id.Name), " ", "")
	}
	if at := strings.IndexByte(id.Email, '@'); at > 0 {
		return id.Email[:at]
	}
	return id.Email
}

// respondWithSession crée la session et renvoie user + token
func (h *Handler) respondWithSession(w http.ResponseWriter, r *http.Request, user *model.UserProfile) {
	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(r.Context(), user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}
