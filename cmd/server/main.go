// @title Design Ladder Backend API
// @version 1.0
// @description Design maturity diagnosis API - eleven-question survey scoring, challenge research intake and admin reporting

// @contact.name Design Ladder
// @contact.email hello@designladder.io

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

// Package main is the entry point for the Design Ladder API server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/designladder/designladder_backend/internal/auth"
	"github.com/designladder/designladder_backend/internal/config"
	"github.com/designladder/designladder_backend/internal/database"
	"github.com/designladder/designladder_backend/internal/handlers"
	"github.com/designladder/designladder_backend/internal/middleware"
	"github.com/designladder/designladder_backend/internal/repository"
	"github.com/designladder/designladder_backend/internal/scoring"
	"github.com/designladder/designladder_backend/internal/services"

	// Swagger docs
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/designladder/designladder_backend/docs"
)

// Build-time variables (set via ldflags)
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
	GitBranch = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database connection
	ctx := context.Background()
	dbCfg := database.Config{
		URI:                    cfg.DatabaseURI,
		Database:               cfg.DatabaseName,
		MaxPoolSize:            100,
		MinPoolSize:            10,
		MaxConnIdleTime:        30 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 10 * time.Second,
	}

	dbClient, err := database.NewClient(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize JWT service early (before defer) to avoid exitAfterDefer issue
	jwtCfg := auth.JWTConfig{
		PrivateKeyPath:     cfg.JWTPrivateKeyPath,
		PublicKeyPath:      cfg.JWTPublicKeyPath,
		AccessTokenExpiry:  cfg.AccessTokenExpiry,
		RefreshTokenExpiry: cfg.RefreshTokenExpiry,
		Issuer:             "designladder-backend",
	}

	jwtService, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		if closeErr := dbClient.Close(ctx); closeErr != nil {
			log.Printf("Error closing database connection: %v", closeErr)
		}
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}

	defer func() {
		if closeErr := dbClient.Close(ctx); closeErr != nil {
			log.Printf("Error closing database connection: %v", closeErr)
		}
	}()

	// Ensure indexes
	log.Println("Creating database indexes...")
	if indexErr := dbClient.EnsureIndexes(ctx); indexErr != nil {
		log.Printf("Warning: Failed to create indexes: %v", indexErr)
	}

	// Initialize repositories
	diagnosisRepo := repository.NewDiagnosisRepository(dbClient)
	challengeRepo := repository.NewChallengeRepository(dbClient)
	analyticsRepo := repository.NewAnalyticsRepository(dbClient)
	userRepo := repository.NewUserRepository(dbClient)

	// Initialize notification service
	// #IMPLEMENTATION_DECISION: A nil notifier disables mail without branching
	// in the challenge service
	var notifier services.NotificationService
	if cfg.MailEnabled() {
		notifier = services.NewHTTPNotificationService(services.NotificationConfig{
			BaseURL:     cfg.MailServiceURL,
			APIKey:      cfg.MailAPIKey,
			SenderName:  cfg.MailSenderName,
			NotifyEmail: cfg.NotifyEmail,
		})
	} else {
		log.Println("Mail service not configured, challenge notifications disabled")
	}

	// Initialize services
	diagnosisService := services.NewDiagnosisService(diagnosisRepo)
	challengeService := services.NewChallengeService(challengeRepo, notifier)
	analyticsService := services.NewAnalyticsService(analyticsRepo)
	authService := services.NewAuthService(userRepo, jwtService)
	exportService := services.NewExportService(diagnosisRepo, challengeRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(dbClient, Version, cfg.MailEnabled())
	diagnosisHandler := handlers.NewDiagnosisHandler(diagnosisService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(diagnosisService, challengeService, exportService)

	// Create Gin router
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.SecureHeaders())
	router.Use(middleware.Locale(scoring.Languages(), cfg.DefaultLanguage))

	// Register health routes (not under /api/v1)
	healthHandler.RegisterRoutes(router)

	// Register Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create API v1 group
	apiV1 := router.Group("/api/v1")

	// Rate limit the anonymous write endpoints
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	apiV1.Use(rateLimiter.RateLimit())

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Register routes
	diagnosisHandler.RegisterRoutes(apiV1)
	challengeHandler.RegisterRoutes(apiV1)
	analyticsHandler.RegisterRoutes(apiV1)
	authHandler.RegisterRoutes(apiV1, authMiddleware)
	adminHandler.RegisterRoutes(apiV1, authMiddleware)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting Design Ladder API server v%s on port %s", Version, cfg.ServerPort)
		log.Printf("Build: %s | Commit: %s | Branch: %s", BuildTime, GitCommit, GitBranch)
		log.Printf("Environment: %s", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server shutdown complete")
}
