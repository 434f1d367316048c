package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-travel-planner/internal/api"
	"ai-travel-planner/internal/api/handlers"
	"ai-travel-planner/internal/models"
	"ai-travel-planner/internal/repository"
	"ai-travel-planner/internal/service"
	"ai-travel-planner/pkg/auth"
	"ai-travel-planner/pkg/config"
	"ai-travel-planner/pkg/logger"
	"ai-travel-planner/pkg/postgres"
	"ai-travel-planner/pkg/supabase"

	"go.uber.org/zap"
)

// @title AI Travel Planner API
// @version 1.0
// @description Trip planning service that turns traveler preferences into AI-generated itineraries with weather forecasts
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@ai-travel-planner.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting AI Travel Planner service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize Supabase client
	supabaseClient, err := supabase.NewClient(&cfg.Supabase, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize Supabase client", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	tripRepo := repository.NewTripRepository(db, appLogger)
	activityRepo := repository.NewActivityRepository(db, appLogger)

	// Initialize token verifier
	verifier := auth.NewTokenVerifier(cfg.Supabase.JWTSecret)

	// Initialize services
	authProvider := service.NewSupabaseAuthProvider(supabaseClient, appLogger)
	authService := service.NewAuthService(authProvider, appLogger)

	suggestionService, err := service.NewSuggestionService(&cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize suggestion service", zap.Error(err))
	}
	defer suggestionService.Close()

	weatherService := service.NewWeatherService(&cfg.Weather, appLogger)

	tripService := service.NewTripService(userRepo, suggestionService, weatherService, tripRepo, activityRepo, appLogger)

	unsubscribe := authService.Subscribe(func(event service.AuthEvent, session *models.Session) {
		fields := []zap.Field{zap.String("event", string(event))}
		if session != nil {
			fields = append(fields, zap.String("user_id", session.User.ID.String()))
		}
		appLogger.Info("Auth state changed", fields...)
	})
	defer unsubscribe()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	tripHandler := handlers.NewTripHandler(tripService, appLogger)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup router
	app := api.SetupRouter(authHandler, tripHandler, healthHandler, verifier, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
