package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/Hira-Iftikhar-123/SociaLite/internal/handlers"
	"github.com/Hira-Iftikhar-123/SociaLite/internal/middleware"
	"github.com/Hira-Iftikhar-123/SociaLite/internal/repositories"
	"github.com/Hira-Iftikhar-123/SociaLite/pkg/config"
	"github.com/Hira-Iftikhar-123/SociaLite/pkg/metrics"
	"github.com/Hira-Iftikhar-123/SociaLite/pkg/openai"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(metrics.Middleware())
	config.Logger.Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// firebaseAuthClient may be nil; the firebase-login endpoint then reports
// itself unavailable.
func SetupRoutes(e *echo.Echo, db *mongo.Database, firebaseAuthClient *auth.Client, aiClient *openai.Client) {
	// Always-accessible probes
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	config.Logger.Info("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())

	postHandler := handlers.NewPostHandler(postRepo, userRepo)
	postHandler.RegisterPostRoutes(api)
	config.Logger.Info("Post routes configured.")

	userHandler := handlers.NewUserHandler(userRepo, postRepo)
	userHandler.RegisterUserRoutes(api)
	config.Logger.Info("User routes configured.")

	captionHandler := handlers.NewCaptionHandler(aiClient)
	captionHandler.RegisterCaptionRoutes(api)
	config.Logger.Info("Caption routes configured.")

	config.Logger.Info("All routes configured.")
}
