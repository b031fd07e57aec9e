package v1

import (
	"net/http"
	"time"

	"go-resume-builder/config"
	"go-resume-builder/internal/delivery/http/middleware"
	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/metrics"
	"go-resume-builder/pkg/token"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC          domain.AuthUsecase
	ResumeUC        domain.ResumeUsecase
	ExperienceUC    domain.ExperienceUsecase
	ProjectUC       domain.ProjectUsecase
	SkillUC         domain.SkillUsecase
	EducationUC     domain.EducationUsecase
	CertificationUC domain.CertificationUsecase
	SessionRepo     domain.SessionRepository
	Tokens          *token.Manager
	Collector       *metrics.Collector
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must be first so error responses carry the headers too.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.Metrics(deps.Collector))
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", gin.WrapH(deps.Collector.Handler()))

	v1 := r.Group("/v1")

	// Health check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes
	NewConfigHandler(v1, deps.Config)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Login attempts are throttled per client IP.
	loginLimit := middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitLoginThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:login:",
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.SessionRepo))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, loginLimit)
		NewResumeHandler(protected, deps.ResumeUC)
		NewExperienceHandler(protected, deps.ExperienceUC)
		NewProjectHandler(protected, deps.ProjectUC)
		NewSkillHandler(protected, deps.SkillUC)
		NewEducationHandler(protected, deps.EducationUC)
		NewCertificationHandler(protected, deps.CertificationUC)
	}

	return r
}
