package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ledgerline/ledger_backend/cmd/docs"
	portsrepo "github.com/ledgerline/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerline/ledger_backend/internal/core/ports/services"
	"github.com/ledgerline/ledger_backend/internal/middleware"
	"github.com/ledgerline/ledger_backend/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	keyRepo portsrepo.TenantKeyRepository,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes behind authentication
	setupAPIV1Routes(r, cfg, services, keyRepo)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	keyRepo portsrepo.TenantKeyRepository,
) {
	// API keys are tried first; requests without one fall through to the
	// bearer-token middleware.
	v1 := r.Group("/api/v1",
		middleware.APIKeyAuthMiddleware(keyRepo),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)

	// All data routes are nested under a company, which fixes the caller's
	// tenant+company scope for the whole request.
	company := v1.Group("/companies/:companyID", middleware.ScopeMiddleware())
	{
		registerAccountRoutes(company, services.Account)
		registerEntryRoutes(company, services.Posting)
		registerReportingRoutes(company, services.Reporting)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
