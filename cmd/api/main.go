package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-resume-builder/config"
	_ "go-resume-builder/docs" // Important for Swagger
	"go-resume-builder/internal/authz"
	v1 "go-resume-builder/internal/delivery/http/v1"
	"go-resume-builder/internal/repository/postgres"
	"go-resume-builder/internal/usecase"
	"go-resume-builder/pkg/database"
	"go-resume-builder/pkg/logger"
	"go-resume-builder/pkg/metrics"
	"go-resume-builder/pkg/redis"
	"go-resume-builder/pkg/token"

	"github.com/go-playground/validator/v10"
)

// @title           Resume Builder API
// @version         1.0
// @description     REST API for building and managing resumes using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume builder backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (rate limiting falls back to in-memory counters without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	sessionRepo := postgres.NewSessionRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	certificationRepo := postgres.NewCertificationRepository(dbPool)

	// Expired session rows are dead weight; prune them hourly.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := sessionRepo.DeleteExpired(context.Background()); err != nil {
				logger.Log.Warn("Session pruning failed", "error", err)
			}
		}
	}()

	// 6. Setup UseCases
	validate := validator.New()
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	gate := authz.NewResumeGate()

	authUC := usecase.NewAuthUsecase(userRepo, sessionRepo, tokens, validate)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, experienceRepo, projectRepo, skillRepo, educationRepo, certificationRepo, gate, validate)
	experienceUC := usecase.NewExperienceUsecase(experienceRepo, resumeRepo, gate, validate)
	projectUC := usecase.NewProjectUsecase(projectRepo, resumeRepo, gate, validate)
	skillUC := usecase.NewSkillUsecase(skillRepo, resumeRepo, gate, validate)
	educationUC := usecase.NewEducationUsecase(educationRepo, resumeRepo, gate, validate)
	certificationUC := usecase.NewCertificationUsecase(certificationRepo, resumeRepo, gate, validate)

	// 7. Setup Metrics
	collector := metrics.NewCollector()

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:          authUC,
		ResumeUC:        resumeUC,
		ExperienceUC:    experienceUC,
		ProjectUC:       projectUC,
		SkillUC:         skillUC,
		EducationUC:     educationUC,
		CertificationUC: certificationUC,
		SessionRepo:     sessionRepo,
		Tokens:          tokens,
		Collector:       collector,
		Config:          cfg,
	})

	// 9. Start Server
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
