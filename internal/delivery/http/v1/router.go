package v1

import (
	"net/http"

	"siteseekers-backend/config"
	"siteseekers-backend/internal/delivery/http/middleware"
	"siteseekers-backend/internal/domain"
	"siteseekers-backend/pkg/auth"
	"siteseekers-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	PremiumUC     domain.PremiumUsecase
	ProfileUC     domain.ProfileUsecase
	Tokens        *auth.TokenIssuer
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must run first so error responses carry the
	// headers too.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.Identity(deps.Tokens))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitRequests, deps.Config.RateLimitWindow,
	)))

	// Health check. Redis being down is reported but not a failure: the
	// limiter falls back to memory and everything else keeps working.
	api.GET("/health", func(c *gin.Context) {
		body := gin.H{"status": "ok"}
		if redis.Client() != nil {
			body["redis"] = "ok"
			if err := redis.HealthCheck(c.Request.Context()); err != nil {
				body["redis"] = "unavailable"
			}
		}
		c.JSON(http.StatusOK, body)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Login/register get a tighter per-IP budget than the rest of the API
	authGroup := api.Group("")
	authGroup.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(
		deps.Config.AuthRateLimitRequests, deps.Config.AuthRateLimitWindow,
	)))
	NewAuthHandler(authGroup, deps.AuthUC)

	NewListingHandler(api, deps.JobUC, deps.ApplicationUC)
	NewPremiumHandler(api, deps.PremiumUC)
	NewProfileHandler(api, deps.ProfileUC, deps.JobUC)

	return r
}
