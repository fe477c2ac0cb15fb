package main

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/Hira-Iftikhar-123/SociaLite/internal/router"
	"github.com/Hira-Iftikhar-123/SociaLite/pkg/config"
	"github.com/Hira-Iftikhar-123/SociaLite/pkg/firebase"
	"github.com/Hira-Iftikhar-123/SociaLite/pkg/openai"
	"github.com/Hira-Iftikhar-123/SociaLite/validators"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	defer config.Logger.Sync()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		config.Logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.CloseDB()

	// Initialize Firebase when credentials are configured
	var firebaseAuthClient *auth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			config.Logger.Fatal("Failed to initialize Firebase", zap.Error(err))
		}
		firebaseAuthClient = firebaseApp.AuthClient
	}

	// Completion API client for captions
	aiClient := openai.NewClient(cfg.OpenAIAPIKey)
	defer aiClient.Close()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Mongo.Database(cfg.MongoDatabase), firebaseAuthClient, aiClient)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
