package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hirerevops-backend/config"
	_ "hirerevops-backend/docs"
	"hirerevops-backend/internal/ai"
	v1 "hirerevops-backend/internal/delivery/http/v1"
	"hirerevops-backend/internal/repository/postgres"
	"hirerevops-backend/internal/repository/redisstore"
	"hirerevops-backend/internal/usecase"
	"hirerevops-backend/pkg/auth"
	"hirerevops-backend/pkg/database"
	"hirerevops-backend/pkg/logger"
	redisclient "hirerevops-backend/pkg/redis"
	"hirerevops-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           HireRevOps Backend API
// @version         1.0
// @description     Multi-tenant job board backend with plan-based entitlements.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting hirerevops backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresPool(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Log.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)
	sessionRepo := redisstore.NewSessionRepository(redisClient)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	generator := ai.NewGenerator(cfg.GeminiAPIKey)

	validate := validator.New()
	validation.RegisterValidators(validate)

	authUC := usecase.NewAuthUsecase(userRepo, companyRepo, sessionRepo, tokens, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, userRepo, generator, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, userRepo)
	candidateUC := usecase.NewCandidateUsecase(userRepo, jobRepo, validate)
	talentUC := usecase.NewTalentUsecase(userRepo, companyRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo, userRepo, validate)
	subscriptionUC := usecase.NewSubscriptionUsecase(companyRepo, jobRepo)
	adminUC := usecase.NewAdminUsecase(adminRepo, userRepo, jobRepo, validate)
	healthUC := usecase.NewHealthUsecase(dbPool, redisClient)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		JobUC:          jobUC,
		ApplicationUC:  applicationUC,
		CandidateUC:    candidateUC,
		TalentUC:       talentUC,
		CompanyUC:      companyUC,
		SubscriptionUC: subscriptionUC,
		AdminUC:        adminUC,
		HealthUC:       healthUC,
		Tokens:         tokens,
		SessionRepo:    sessionRepo,
		FrontendURL:    cfg.FrontendURL,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Forced shutdown", "error", err)
	}
	logger.Log.Info("Server stopped")
}
