package main

import (
	"context"
	"net/http"
	"os"

	"github.com/LingoLeap/LingoLeap-backend/internal/api"
	"github.com/LingoLeap/LingoLeap-backend/internal/config"
	"github.com/LingoLeap/LingoLeap-backend/internal/database"
	"github.com/LingoLeap/LingoLeap-backend/internal/generator"
	"github.com/LingoLeap/LingoLeap-backend/internal/handler"
	"github.com/LingoLeap/LingoLeap-backend/internal/identity"
	"github.com/LingoLeap/LingoLeap-backend/internal/lessons"
	"github.com/LingoLeap/LingoLeap-backend/internal/logger"
	"github.com/LingoLeap/LingoLeap-backend/internal/middleware"
	"github.com/LingoLeap/LingoLeap-backend/internal/progression"
	"github.com/LingoLeap/LingoLeap-backend/internal/services"
	"github.com/LingoLeap/LingoLeap-backend/internal/store"

	// Corpus de leçons embarqué : chaque langue s'enregistre via init()
	_ "github.com/LingoLeap/LingoLeap-backend/internal/lessons/french"
	_ "github.com/LingoLeap/LingoLeap-backend/internal/lessons/spanish"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.InitSchema(context.Background()); err != nil {
		logger.Error("Schema initialization failed: %v", err)
		os.Exit(1)
	}

	// Progression engine backed by Postgres
	svc := progression.NewService(
		store.NewPostgresProgression(),
		store.NewPostgresDirectory(),
		lessons.Default,
		store.NewPostgresJournal(),
		nil,
	)

	users := store.NewPostgresUsers()

	// Text generation: absent key means the AI routes answer 503
	var gen generator.Generator
	if cfg.OpenAIKey != "" {
		gen = generator.NewOpenAIGenerator(cfg.OpenAIKey, cfg.OpenAIModel)
	} else {
		logger.Warning("OPENAI_API_KEY not set, AI routes disabled")
	}

	// Avatar hosting: optional as well
	cloudinary, err := services.NewCloudinaryService(cfg)
	if err != nil {
		logger.Warning("Cloudinary disabled: %v", err)
		cloudinary = nil
	}

	h := handler.New(
		svc,
		users,
		lessons.Default,
		gen,
		identity.NewGoogleVerifier(cfg.GoogleClientID),
		identity.NewAppleVerifier(),
		cloudinary,
	)

	// Initialize routes
	router := api.SetupRouter(h)

	// Wrap router with CORS middleware
	srv := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
