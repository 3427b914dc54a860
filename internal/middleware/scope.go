package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerline/ledger_backend/internal/core/domain"
)

// ScopeMiddleware builds the explicit tenant+company scope for company-nested
// routes. The tenant comes from the authenticated identity; the company from
// the URL. Handlers never infer scope from ambient state beyond this value.
func ScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tenantID, ok := GetTenantIDFromCtx(c.Request.Context())
		if !ok {
			logger.Error("Tenant ID missing from authenticated request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		companyID := c.Param("companyID")
		if companyID == "" {
			logger.Warn("Company ID missing from route")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Company ID required"})
			return
		}

		scope := domain.Scope{TenantID: tenantID, CompanyID: companyID}
		ctx := context.WithValue(c.Request.Context(), scopeKey, scope)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
