package handler

import (
	"net/http"

	"github.com/LingoLeap/LingoLeap-backend/internal/generator"
	"github.com/LingoLeap/LingoLeap-backend/internal/identity"
	"github.com/LingoLeap/LingoLeap-backend/internal/lessons"
	"github.com/LingoLeap/LingoLeap-backend/internal/progression"
	"github.com/LingoLeap/LingoLeap-backend/internal/services"
	"github.com/LingoLeap/LingoLeap-backend/internal/store"
	"github.com/LingoLeap/LingoLeap-backend/internal/utils"
)

// Handler porte les dépendances injectées une fois au démarrage :
// service de progression, magasin d'identités, corpus, générateur,
// vérificateurs OAuth, hébergement d'avatars
type Handler struct {
	Progression *progression.Service
	Users       store.Users
	Lessons     *lessons.Registry
	Generator   generator.Generator
	Google      identity.Verifier
	Apple       identity.Verifier
	Cloudinary  *services.CloudinaryService
}

func New(
	svc *progression.Service,
	users store.Users,
	registry *lessons.Registry,
	gen generator.Generator,
	google, apple identity.Verifier,
	cloudinary *services.CloudinaryService,
) *Handler {
	return &Handler{
		Progression: svc,
		Users:       users,
		Lessons:     registry,
		Generator:   gen,
		Google:      google,
		Apple:       apple,
		Cloudinary:  cloudinary,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
