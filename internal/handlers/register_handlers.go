package handlers

import (
	"github.com/SscSPs/wallet_ledger_backend/cmd/docs"
	portssvc "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger_backend/internal/middleware"
	"github.com/SscSPs/wallet_ledger_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// Limiters holds the per-surface rate limiters. A nil limiter disables limiting for its surface.
type Limiters struct {
	Webhook *limiter.Limiter
	Admin   *limiter.Limiter
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiters Limiters,
) {
	// CORS sits on the engine so that preflight requests, which match no route, are answered too.
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", getHealth)

	// Provider webhooks authenticate every batch by signature, not by JWT.
	webhooks := r.Group("")
	if limiters.Webhook != nil {
		webhooks.Use(middleware.RateLimit(limiters.Webhook))
	}
	RegisterSeamlessRoutes(webhooks, services.Seamless)

	setupAPIV1Routes(r, cfg, services, limiters.Admin)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	adminLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")
	if adminLimiter != nil {
		v1.Use(middleware.RateLimit(adminLimiter))
	}
	v1.Use(middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	RegisterAccountRoutes(v1, service.Account)
	RegisterLedgerRoutes(v1, service.Ledger, service.Account, service.Idempotency)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
