package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"siteseekers-backend/config"
	_ "siteseekers-backend/docs" // Important for Swagger
	v1 "siteseekers-backend/internal/delivery/http/v1"
	"siteseekers-backend/internal/repository/postgres"
	"siteseekers-backend/internal/usecase"
	"siteseekers-backend/pkg/auth"
	"siteseekers-backend/pkg/database"
	"siteseekers-backend/pkg/logger"
	"siteseekers-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           SiteSeekers Backend API
// @version         1.0
// @description     Job marketplace backend: listings, applications, premium subscriptions and contractor profiles.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting siteseekers backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting will use in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	premiumRepo := postgres.NewPremiumRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	premiumUC := usecase.NewPremiumUsecase(premiumRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		PremiumUC:     premiumUC,
		ProfileUC:     profileUC,
		Tokens:        tokens,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
