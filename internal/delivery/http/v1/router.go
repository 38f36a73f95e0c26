package v1

import (
	"net/http"

	"hirerevops-backend/internal/delivery/http/middleware"
	"hirerevops-backend/internal/delivery/http/response"
	"hirerevops-backend/internal/domain"
	"hirerevops-backend/internal/usecase"
	"hirerevops-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	JobUC          domain.JobUsecase
	ApplicationUC  domain.ApplicationUsecase
	CandidateUC    domain.CandidateUsecase
	TalentUC       domain.TalentUsecase
	CompanyUC      domain.CompanyUsecase
	SubscriptionUC domain.SubscriptionUsecase
	AdminUC        domain.AdminUsecase
	HealthUC       usecase.HealthUsecase
	Tokens         *auth.TokenManager
	SessionRepo    domain.SessionRepository
	FrontendURL    string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.CORSMiddleware(deps.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.SessionRepo, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewCandidateHandler(protected, deps.CandidateUC)
		NewTalentHandler(protected, deps.TalentUC)
		NewCompanyHandler(v1, protected, deps.CompanyUC)
		NewSubscriptionHandler(v1, protected, deps.SubscriptionUC)
		NewAdminHandler(protected, deps.AdminUC)
	}

	return r
}
